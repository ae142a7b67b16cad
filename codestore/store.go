package codestore

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/LeGenAI/lucas-cubes/code"
	"github.com/LeGenAI/lucas-cubes/cube"
)

// Sentinel errors for the catalog.
var (
	// ErrNotFound indicates that no code is stored under the given (n, s).
	ErrNotFound = errors.New("codestore: no code stored for the given parameters")
	// ErrBadParams indicates parameters outside the storable range.
	ErrBadParams = errors.New("codestore: n must lie in [1, MaxN] and s must be at least 2")
	// ErrEmptyCode indicates an attempt to store an empty code.
	ErrEmptyCode = errors.New("codestore: code must not be empty")
)

// keyPrefix namespaces catalog entries so future record kinds can share
// the database.
const keyPrefix = "code/"

// Params identifies a stored code by its cube parameters.
type Params struct {
	N, S int
}

// Store is a Badger-backed catalog of perfect codes keyed by (n, s).
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the catalog at dir. An empty dir
// yields a transient in-memory catalog, which the tests and the dry-run
// CLI mode rely on.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	opts.DetectConflicts = false // single-key writes only
	opts.MetricsEnabled = false
	if dir == "" {
		opts.InMemory = true
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "codestore: open")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database. The Store must not be used after
// Close returns.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "codestore: close")
}

// Put stores words as the code for Λ_n(1^s), replacing any previous entry.
// The value is the newline-delimited bit-string form, so the stored bytes
// round-trip through code.Load/Save unchanged.
func (s *Store) Put(n, sVal int, words []cube.Vertex) error {
	if n < 1 || n > cube.MaxN || sVal < 2 {
		return ErrBadParams
	}
	if len(words) == 0 {
		return ErrEmptyCode
	}

	var buf bytes.Buffer
	for _, w := range words {
		buf.WriteString(cube.FormatVertex(w, n))
		buf.WriteByte('\n')
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storeKey(n, sVal), buf.Bytes())
	})
	return errors.Wrapf(err, "codestore: put (%d,%d)", n, sVal)
}

// Get returns the code stored for Λ_n(1^s), or ErrNotFound.
func (s *Store) Get(n, sVal int) ([]cube.Vertex, error) {
	if n < 1 || n > cube.MaxN || sVal < 2 {
		return nil, ErrBadParams
	}

	var words []cube.Vertex
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(n, sVal))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var derr error
			words, derr = decodeValue(val, n)
			return derr
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "codestore: get (%d,%d)", n, sVal)
	}
	return words, nil
}

// Has reports whether a code is stored for Λ_n(1^s).
func (s *Store) Has(n, sVal int) (bool, error) {
	if n < 1 || n > cube.MaxN || sVal < 2 {
		return false, ErrBadParams
	}

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(storeKey(n, sVal))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "codestore: has (%d,%d)", n, sVal)
	}
	return true, nil
}

// Keys enumerates the (n, s) pairs present in the catalog, in key order.
func (s *Store) Keys() ([]Params, error) {
	var out []Params
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(keyPrefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			p, perr := parseKey(it.Item().Key())
			if perr != nil {
				return perr
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "codestore: keys")
	}
	return out, nil
}

func storeKey(n, s int) []byte {
	return []byte(fmt.Sprintf("%s%d/%d", keyPrefix, n, s))
}

func parseKey(key []byte) (Params, error) {
	var p Params
	_, err := fmt.Sscanf(string(key), keyPrefix+"%d/%d", &p.N, &p.S)
	if err != nil {
		return Params{}, errors.Wrapf(err, "codestore: malformed key %q", key)
	}
	return p, nil
}

// decodeValue parses the newline-delimited bit-string value format.
func decodeValue(val []byte, n int) ([]cube.Vertex, error) {
	var words []cube.Vertex
	for _, line := range strings.Split(string(val), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) != n {
			return nil, code.ErrLengthMismatch
		}
		v, err := cube.ParseVertex(line)
		if err != nil {
			return nil, err
		}
		words = append(words, v)
	}
	return words, nil
}
