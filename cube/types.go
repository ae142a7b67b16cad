// Package cube - core types and sentinel errors.
package cube

import "errors"

// MaxN bounds the cube dimension. The vertex universe is enumerated as all
// 2^n bit vectors at construction time, so dimensions beyond 30 are refused
// rather than silently exhausting memory.
const MaxN = 30

// Sentinel errors for cube construction and vertex parsing.
var (
	// ErrInvalidN indicates n < 1 or n > MaxN at construction.
	ErrInvalidN = errors.New("cube: n must be a positive integer not exceeding MaxN")
	// ErrInvalidS indicates s < 2 at construction.
	ErrInvalidS = errors.New("cube: s must be an integer greater than 1")
	// ErrBadBitString indicates a vertex literal that is empty, too long,
	// or contains characters other than '0' and '1'.
	ErrBadBitString = errors.New("cube: bit string must consist of '0' and '1' characters only")
)

// Vertex is an n-bit vector packed into an unsigned word. Bit i of the word
// holds character n-1-i of the conventional string form, so "110" parses to
// 0b110 and the most significant character comes first, matching the usual
// binary literal reading order.
//
// A Vertex does not carry its own length; the owning Cube (or the caller)
// supplies n when formatting.
type Vertex uint32

// ParseVertex converts a bit-string literal such as "0101" into a Vertex.
// The literal's length is the vertex dimension; callers validate it against
// their cube's n. Returns ErrBadBitString for empty, oversized, or
// non-binary input.
func ParseVertex(s string) (Vertex, error) {
	if len(s) == 0 || len(s) > MaxN {
		return 0, ErrBadBitString
	}
	var v Vertex
	for i := 0; i < len(s); i++ {
		v <<= 1
		switch s[i] {
		case '1':
			v |= 1
		case '0':
			// bit already zero
		default:
			return 0, ErrBadBitString
		}
	}
	return v, nil
}

// FormatVertex renders v as an n-character bit string, most significant
// character first. It is the inverse of ParseVertex for inputs of length n.
func FormatVertex(v Vertex, n int) string {
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		if v&1 == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
		v >>= 1
	}
	return string(buf)
}
