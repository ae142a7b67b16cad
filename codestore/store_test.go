package codestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeGenAI/lucas-cubes/codestore"
	"github.com/LeGenAI/lucas-cubes/cube"
)

func openStore(t *testing.T, dir string) *codestore.Store {
	t.Helper()
	st, err := codestore.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func v(t *testing.T, s string) cube.Vertex {
	t.Helper()
	w, err := cube.ParseVertex(s)
	require.NoError(t, err)
	return w
}

// TestStore_RoundTrip stores a code and reads it back in order.
func TestStore_RoundTrip(t *testing.T) {
	st := openStore(t, t.TempDir())

	want := []cube.Vertex{v(t, "010"), v(t, "101")}
	require.NoError(t, st.Put(3, 3, want))

	got, err := st.Get(3, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ok, err := st.Has(3, 3)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestStore_InMemory exercises the transient catalog used by dry runs.
func TestStore_InMemory(t *testing.T) {
	st := openStore(t, "")

	require.NoError(t, st.Put(3, 4, []cube.Vertex{v(t, "000"), v(t, "111")}))
	got, err := st.Get(3, 4)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// TestStore_NotFound distinguishes a missing entry from an error.
func TestStore_NotFound(t *testing.T) {
	st := openStore(t, "")

	_, err := st.Get(7, 4)
	assert.ErrorIs(t, err, codestore.ErrNotFound)

	ok, err := st.Has(7, 4)
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestStore_Overwrite replaces an existing entry in place.
func TestStore_Overwrite(t *testing.T) {
	st := openStore(t, "")

	require.NoError(t, st.Put(3, 3, []cube.Vertex{v(t, "010"), v(t, "101")}))
	require.NoError(t, st.Put(3, 3, []cube.Vertex{v(t, "001"), v(t, "110")}))

	got, err := st.Get(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []cube.Vertex{v(t, "001"), v(t, "110")}, got)
}

// TestStore_Keys lists stored parameter pairs in key order.
func TestStore_Keys(t *testing.T) {
	st := openStore(t, "")

	require.NoError(t, st.Put(3, 3, []cube.Vertex{v(t, "010"), v(t, "101")}))
	require.NoError(t, st.Put(3, 4, []cube.Vertex{v(t, "000"), v(t, "111")}))

	keys, err := st.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]codestore.Params{{N: 3, S: 3}, {N: 3, S: 4}}, keys)
}

// TestStore_BadParams walks the argument guards.
func TestStore_BadParams(t *testing.T) {
	st := openStore(t, "")

	err := st.Put(0, 3, []cube.Vertex{0})
	assert.ErrorIs(t, err, codestore.ErrBadParams)

	err = st.Put(3, 1, []cube.Vertex{0})
	assert.ErrorIs(t, err, codestore.ErrBadParams)

	err = st.Put(3, 3, nil)
	assert.ErrorIs(t, err, codestore.ErrEmptyCode)

	_, err = st.Get(cube.MaxN+1, 3)
	assert.ErrorIs(t, err, codestore.ErrBadParams)

	_, err = st.Has(-1, 3)
	assert.ErrorIs(t, err, codestore.ErrBadParams)
}

// TestStore_Persistence reopens an on-disk catalog and finds prior entries.
func TestStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	st, err := codestore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, st.Put(3, 3, []cube.Vertex{v(t, "100"), v(t, "011")}))
	require.NoError(t, st.Close())

	st = openStore(t, dir)
	got, err := st.Get(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []cube.Vertex{v(t, "100"), v(t, "011")}, got)
}
