package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOK(t *testing.T, x Index, dimSize int64) (int64, func(int64) int64) {
	t.Helper()
	size, lookup, _, err := x.resolve(dimSize)
	require.NoError(t, err)
	return size, lookup
}

func TestAllKeepsDimension(t *testing.T) {
	size, lookup := resolveOK(t, All(), 7)
	assert.Equal(t, int64(7), size)
	assert.Nil(t, lookup, "All should map coordinates identically")
}

func TestAtCollapsesDimension(t *testing.T) {
	size, lookup, collapsed, err := At(3).resolve(5)
	require.NoError(t, err)
	assert.True(t, collapsed)
	assert.Equal(t, int64(0), size)
	assert.Equal(t, int64(3), lookup(0))
}

func TestAtOutOfBounds(t *testing.T) {
	_, _, _, err := At(5).resolve(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, _, _, err = At(-1).resolve(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRangeVariants(t *testing.T) {
	tests := []struct {
		name  string
		index Index
		size  int64
		first int64
		last  int64
	}{
		{"closed", Range(2, 5), 3, 2, 4},
		{"from", From(4), 6, 4, 9},
		{"to", To(4), 4, 0, 3},
		{"empty", Range(3, 3), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, lookup := resolveOK(t, tt.index, 10)
			assert.Equal(t, tt.size, size)
			if size > 0 {
				assert.Equal(t, tt.first, lookup(0))
				assert.Equal(t, tt.last, lookup(size-1))
			}
		})
	}
}

func TestRangeBoundsValidation(t *testing.T) {
	for _, x := range []Index{Range(-1, 3), Range(4, 2), Range(0, 11), From(11), To(-1)} {
		_, _, _, err := x.resolve(10)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}

	// The full dimension span is a valid half-open interval.
	size, _ := resolveOK(t, Range(0, 10), 10)
	assert.Equal(t, int64(10), size)
}

func TestSeqPermutesAndRepeats(t *testing.T) {
	size, lookup := resolveOK(t, Seq(4, 0, 4, 2), 5)
	require.Equal(t, int64(4), size)
	assert.Equal(t, int64(4), lookup(0))
	assert.Equal(t, int64(0), lookup(1))
	assert.Equal(t, int64(4), lookup(2))
	assert.Equal(t, int64(2), lookup(3))
}

func TestSeqValidatesEveryPosition(t *testing.T) {
	_, _, _, err := Seq(0, 5).resolve(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEvenOdd(t *testing.T) {
	size, lookup := resolveOK(t, Even(), 5)
	assert.Equal(t, int64(3), size)
	assert.Equal(t, int64(0), lookup(0))
	assert.Equal(t, int64(4), lookup(2))

	size, lookup = resolveOK(t, Odd(), 5)
	assert.Equal(t, int64(2), size)
	assert.Equal(t, int64(1), lookup(0))
	assert.Equal(t, int64(3), lookup(1))

	size, _ = resolveOK(t, Even(), 6)
	assert.Equal(t, int64(3), size)
	size, _ = resolveOK(t, Odd(), 6)
	assert.Equal(t, int64(3), size)
}

func TestFlipReverses(t *testing.T) {
	size, lookup := resolveOK(t, Flip(), 4)
	assert.Equal(t, int64(4), size)
	for i := int64(0); i < 4; i++ {
		assert.Equal(t, 3-i, lookup(i))
	}
}

func TestAtValueOfResolvesEagerly(t *testing.T) {
	pos := ScalarOf[int64](2)
	x, err := AtValueOf(pos)
	require.NoError(t, err)

	// Mutating the source after building the index must not matter.
	require.NoError(t, pos.SetValue(4))

	_, lookup, collapsed, err := x.resolve(3)
	require.NoError(t, err)
	assert.True(t, collapsed)
	assert.Equal(t, int64(2), lookup(0))
}

func TestAtValueOfRequiresScalar(t *testing.T) {
	_, err := AtValueOf(Vector[int64](1, 2))
	assert.ErrorIs(t, err, ErrRankMismatch)
}
