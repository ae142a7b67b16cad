package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeGenAI/lucas-cubes/code"
	"github.com/LeGenAI/lucas-cubes/construct"
	"github.com/LeGenAI/lucas-cubes/cube"
)

func mustCube(t *testing.T, n, s int) *cube.Cube {
	t.Helper()
	c, err := cube.New(n, s)
	require.NoError(t, err)
	return c
}

func v(t *testing.T, s string) cube.Vertex {
	t.Helper()
	w, err := cube.ParseVertex(s)
	require.NoError(t, err)
	return w
}

//----------------------------------------------------------------------------//
// ShiftSearch
//----------------------------------------------------------------------------//

// TestShiftSearch_FindsLucas33 verifies the coset route into Λ_3(1^3):
// shifting the repetition code Ham(2,2) = {000, 111} by any weight-1 vector
// lands a perfect code; the enumerator reaches 100 first.
func TestShiftSearch_FindsLucas33(t *testing.T) {
	c := mustCube(t, 3, 3)
	base, err := code.Hamming(2)
	require.NoError(t, err)

	res, err := construct.ShiftSearch(c, base, 1)
	require.NoError(t, err)

	require.True(t, res.Found)
	assert.Equal(t, "100", cube.FormatVertex(res.Shift, 3))
	assert.Equal(t, 2, res.Checked, "zero shift fails the membership pre-check, 100 verifies")
	assert.ElementsMatch(t, []cube.Vertex{v(t, "100"), v(t, "011")}, res.Code)
}

// TestShiftSearch_WeightZeroOnly verifies the unshifted coset alone does not
// survive the membership pre-check (111 is not a vertex of Λ_3(1^3)).
func TestShiftSearch_WeightZeroOnly(t *testing.T) {
	c := mustCube(t, 3, 3)
	base, err := code.Hamming(2)
	require.NoError(t, err)

	res, err := construct.ShiftSearch(c, base, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Checked)
	assert.Nil(t, res.Code)
}

// TestShiftSearch_Errors walks the argument guards.
func TestShiftSearch_Errors(t *testing.T) {
	c := mustCube(t, 3, 3)
	base := []cube.Vertex{v(t, "000")}

	_, err := construct.ShiftSearch(nil, base, 1)
	assert.ErrorIs(t, err, construct.ErrNilCube)

	_, err = construct.ShiftSearch(c, nil, 1)
	assert.ErrorIs(t, err, construct.ErrEmptyBaseCode)

	_, err = construct.ShiftSearch(c, base, -1)
	assert.ErrorIs(t, err, construct.ErrBadWeight)
	_, err = construct.ShiftSearch(c, base, 4)
	assert.ErrorIs(t, err, construct.ErrBadWeight)

	_, err = construct.ShiftSearch(c, []cube.Vertex{v(t, "1000")}, 1)
	assert.ErrorIs(t, err, code.ErrLengthMismatch)
}

//----------------------------------------------------------------------------//
// RepairFromBase
//----------------------------------------------------------------------------//

// TestRepairFromBase_NoDamage ports a code between identical cubes: nothing
// is removed and the code stays perfect.
func TestRepairFromBase_NoDamage(t *testing.T) {
	q3 := mustCube(t, 3, 4)
	baseCode := []cube.Vertex{v(t, "000"), v(t, "111")}

	res, err := construct.RepairFromBase(q3, q3, baseCode)
	require.NoError(t, err)
	assert.Zero(t, res.Removed)
	assert.Zero(t, res.Added)
	assert.True(t, res.Covered)
	assert.True(t, res.Perfect)
	assert.Equal(t, baseCode, res.Code)
}

// TestRepairFromBase_PuncturedQ3 ports the Q_3 repetition code into
// Λ_3(1^3), where 111 is forbidden. The greedy patch plugs every hole but
// the patched code overlaps around 000, so verification must reject it —
// completed coverage is not a success claim.
func TestRepairFromBase_PuncturedQ3(t *testing.T) {
	target := mustCube(t, 3, 3)
	base := mustCube(t, 3, 4)
	baseCode := []cube.Vertex{v(t, "000"), v(t, "111")}

	res, err := construct.RepairFromBase(target, base, baseCode)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Removed, "111 is forbidden in the target")
	assert.Equal(t, 3, res.Added)
	assert.True(t, res.Covered, "greedy patching plugs all three holes")
	assert.False(t, res.Perfect, "patched code overlaps; verifier must reject")
	assert.Len(t, res.Code, 4)
}

// TestRepairFromBase_Errors walks the argument guards.
func TestRepairFromBase_Errors(t *testing.T) {
	c3 := mustCube(t, 3, 3)
	c4 := mustCube(t, 4, 3)

	_, err := construct.RepairFromBase(nil, c3, []cube.Vertex{0})
	assert.ErrorIs(t, err, construct.ErrNilCube)

	_, err = construct.RepairFromBase(c3, c4, []cube.Vertex{0})
	assert.ErrorIs(t, err, construct.ErrCubeMismatch)

	_, err = construct.RepairFromBase(c3, c3, nil)
	assert.ErrorIs(t, err, construct.ErrEmptyBaseCode)
}

//----------------------------------------------------------------------------//
// PartitionSplice
//----------------------------------------------------------------------------//

// TestPartitionSplice_Q3 splices the unshifted repetition code across the
// weight partition of Q_3: the low part contributes 000, the high part 111,
// and the splice is already perfect.
func TestPartitionSplice_Q3(t *testing.T) {
	q3 := mustCube(t, 3, 4)
	base := []cube.Vertex{v(t, "000"), v(t, "111")}

	res, err := construct.PartitionSplice(q3, base, 2, 0)
	require.NoError(t, err)

	assert.True(t, res.Perfect)
	assert.Equal(t, 1, res.CoverageLow)
	assert.Equal(t, 1, res.CoverageHigh)
	assert.ElementsMatch(t, base, res.Code)
}

// TestPartitionSplice_Lucas33 verifies the honest-failure path: on Λ_3(1^3)
// the weight-limited splice stalls at two codewords that overlap, and the
// result says so.
func TestPartitionSplice_Lucas33(t *testing.T) {
	c := mustCube(t, 3, 3)
	base, err := code.Hamming(2)
	require.NoError(t, err)

	res, err := construct.PartitionSplice(c, base, 2, 1)
	require.NoError(t, err)

	assert.False(t, res.Perfect)
	assert.Equal(t, 1, res.CoverageLow)
	assert.Equal(t, 1, res.CoverageHigh)
	assert.Len(t, res.Code, 2)
}
