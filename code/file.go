// Package code - newline-delimited code file ingestion and emission.
package code

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/LeGenAI/lucas-cubes/cube"
)

// Load reads a newline-delimited list of bit strings from path. Blank lines
// are skipped; every remaining line must be exactly n characters of '0' and
// '1'. Malformed lines yield cube.ErrBadBitString or ErrLengthMismatch,
// wrapped with the offending line number.
func Load(path string, n int) ([]cube.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []cube.Vertex
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if len(text) != n {
			return nil, fmt.Errorf("%w: line %d", ErrLengthMismatch, line)
		}
		v, perr := cube.ParseVertex(text)
		if perr != nil {
			return nil, fmt.Errorf("%w: line %d", perr, line)
		}
		words = append(words, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Save writes words to path as newline-delimited n-character bit strings,
// one codeword per line.
func Save(path string, words []cube.Vertex, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, v := range words {
		if _, err = w.WriteString(cube.FormatVertex(v, n) + "\n"); err != nil {
			f.Close()
			return err
		}
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
