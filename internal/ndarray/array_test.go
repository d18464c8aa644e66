package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndkit/internal/buffer"
)

func mustShape(t *testing.T, dims ...int64) Shape {
	t.Helper()
	s, err := MakeShape(dims...)
	require.NoError(t, err)
	return s
}

// iota2D returns a [3 5] array written from the linear values 0..14.
func iota2D(t *testing.T) *Array[int32] {
	t.Helper()
	a := New[int32](mustShape(t, 3, 5))
	src := make([]int32, 15)
	for i := range src {
		src[i] = int32(i)
	}
	require.NoError(t, a.Write(src))
	return a
}

func TestGetAfterSet(t *testing.T) {
	a := New[float64](mustShape(t, 2, 3))
	require.NoError(t, a.SetValue(3.5, 1, 2))

	v, err := a.GetValue(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	// Unrelated coordinates stay zero.
	v, err = a.GetValue(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestValueAccessRankValidation(t *testing.T) {
	a := New[int32](mustShape(t, 2, 3))

	_, err := a.GetValue(1)
	assert.ErrorIs(t, err, ErrRankMismatch)
	_, err = a.GetValue(1, 2, 0)
	assert.ErrorIs(t, err, ErrRankMismatch)
	assert.ErrorIs(t, a.SetValue(7, 1), ErrRankMismatch)

	_, err = a.GetValue(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.GetValue(0, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGetReturnsAliasingView(t *testing.T) {
	a := iota2D(t)

	row, err := a.Get(1)
	require.NoError(t, err)
	require.Equal(t, 1, row.Rank())
	assert.Equal(t, int64(5), row.Shape().Dim(0))

	v, err := row.GetValue(0)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v)

	// Writing through the view is visible in the source and vice versa.
	require.NoError(t, row.SetValue(-1, 2))
	v, err = a.GetValue(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)

	require.NoError(t, a.SetValue(-2, 1, 3))
	v, err = row.GetValue(3)
	require.NoError(t, err)
	assert.Equal(t, int32(-2), v)

	_, err = a.Get(0, 0, 0)
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestGetFullCoordinatesYieldsScalarView(t *testing.T) {
	a := iota2D(t)

	s, err := a.Get(2, 4)
	require.NoError(t, err)
	require.Equal(t, 0, s.Rank())

	v, err := s.GetValue()
	require.NoError(t, err)
	assert.Equal(t, int32(14), v)
}

func TestSliceEvenOddAfterCollapse(t *testing.T) {
	a := New[int32](mustShape(t, 5, 4, 5))
	require.NoError(t, a.SetValue(100, 1, 0, 0))
	require.NoError(t, a.SetValue(101, 1, 0, 1))
	require.NoError(t, a.SetValue(102, 1, 0, 2))
	require.NoError(t, a.SetValue(103, 1, 0, 3))
	require.NoError(t, a.SetValue(104, 1, 0, 4))

	even, err := a.Slice(At(1), At(0), Even())
	require.NoError(t, err)
	require.True(t, even.Shape().Equal(mustShape(t, 3)), "got shape %s", even.Shape())

	got := make([]int32, 3)
	require.NoError(t, even.Read(got))
	assert.Equal(t, []int32{100, 102, 104}, got)

	odd, err := a.Slice(At(1), At(0), Odd())
	require.NoError(t, err)
	require.True(t, odd.Shape().Equal(mustShape(t, 2)))

	got = make([]int32, 2)
	require.NoError(t, odd.Read(got))
	assert.Equal(t, []int32{101, 103}, got)
}

func TestSliceAliasesSource(t *testing.T) {
	a := iota2D(t)

	s, err := a.Slice(At(1), Range(1, 4))
	require.NoError(t, err)
	require.True(t, s.Shape().Equal(mustShape(t, 3)))

	require.NoError(t, s.SetValue(42, 0))
	v, err := a.GetValue(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	require.NoError(t, a.SetValue(43, 1, 3))
	v, err = s.GetValue(2)
	require.NoError(t, err)
	assert.Equal(t, int32(43), v)
}

func TestSliceOfSliceComposesMappings(t *testing.T) {
	a := iota2D(t)

	// Row 2 reversed: 14 13 12 11 10; odd positions of that: 13, 11.
	flipped, err := a.Slice(At(2), Flip())
	require.NoError(t, err)
	sliced, err := flipped.Slice(Odd())
	require.NoError(t, err)

	got := make([]int32, 2)
	require.NoError(t, sliced.Read(got))
	assert.Equal(t, []int32{13, 11}, got)
}

func TestSliceSeqPermutesRows(t *testing.T) {
	a := iota2D(t)

	s, err := a.Slice(Seq(2, 0, 2))
	require.NoError(t, err)
	require.True(t, s.Shape().Equal(mustShape(t, 3, 5)))

	v, err := s.GetValue(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)
	v, err = s.GetValue(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)
	v, err = s.GetValue(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(14), v)
}

func TestSliceDefaultsTrailingDimensionsToAll(t *testing.T) {
	a := New[int32](mustShape(t, 2, 3, 4))

	s, err := a.Slice(At(1))
	require.NoError(t, err)
	assert.True(t, s.Shape().Equal(mustShape(t, 3, 4)))

	_, err = a.Slice(All(), All(), All(), All())
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestSliceReportsBadBounds(t *testing.T) {
	a := New[int32](mustShape(t, 2, 3))

	_, err := a.Slice(At(2))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = a.Slice(All(), Range(1, 4))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestWriteReadRoundTrip(t *testing.T) {
	a := iota2D(t)

	v, err := a.GetValue(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v)
	v, err = a.GetValue(0, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(4), v)
	v, err = a.GetValue(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v)
	v, err = a.GetValue(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(14), v)

	dst := make([]int32, 15)
	require.NoError(t, a.Read(dst))
	for i, got := range dst {
		assert.Equal(t, int32(i), got)
	}
}

func TestWriteUnderrunReadOverrun(t *testing.T) {
	a := New[int32](mustShape(t, 3, 5))

	assert.ErrorIs(t, a.Write(make([]int32, 4)), ErrBufferUnderrun)
	assert.ErrorIs(t, a.Read(make([]int32, 4)), ErrBufferOverrun)
}

func TestReadWriteAtOffset(t *testing.T) {
	a := New[int32](mustShape(t, 4))
	src := []int32{9, 1, 2, 3, 4}
	require.NoError(t, a.WriteAt(src, 1))

	dst := make([]int32, 6)
	require.NoError(t, a.ReadAt(dst, 2))
	assert.Equal(t, []int32{0, 0, 1, 2, 3, 4}, dst)

	assert.ErrorIs(t, a.WriteAt(src, -1), ErrInvalidOffset)
	assert.ErrorIs(t, a.WriteAt(src, 6), ErrInvalidOffset)
	assert.ErrorIs(t, a.WriteAt(src, 2), ErrBufferUnderrun)
	assert.ErrorIs(t, a.ReadAt(dst, 3), ErrBufferOverrun)
}

func TestBufferTransferRoundTrip(t *testing.T) {
	a := iota2D(t)

	dst := buffer.New[int32](15)
	require.NoError(t, a.ReadBuffer(dst))
	v, err := dst.Get(7)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)

	b := New[int32](mustShape(t, 3, 5))
	require.NoError(t, b.WriteBuffer(dst))
	assert.True(t, Equal(a, b))

	assert.ErrorIs(t, a.ReadBuffer(buffer.New[int32](3)), ErrBufferOverrun)
	assert.ErrorIs(t, b.WriteBuffer(buffer.New[int32](3)), ErrBufferUnderrun)
}

func TestTransferOfNonContiguousView(t *testing.T) {
	a := iota2D(t)

	// Column 1 of every row, flipped: 11, 6, 1.
	col, err := a.Slice(Flip(), At(1))
	require.NoError(t, err)

	got := make([]int32, 3)
	require.NoError(t, col.Read(got))
	assert.Equal(t, []int32{11, 6, 1}, got)

	require.NoError(t, col.Write([]int32{20, 21, 22}))
	v, err := a.GetValue(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(22), v)
}

func TestCopyToRequiresExactShape(t *testing.T) {
	src := New[int32](mustShape(t, 3, 5))
	dst := New[int32](mustShape(t, 3, 4))

	err := src.CopyTo(dst)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// No element of the destination was touched.
	for v := range dst.Values() {
		assert.Equal(t, int32(0), v)
	}
}

func TestCopyToProducesIndependentCopy(t *testing.T) {
	a := iota2D(t)
	b := New[int32](mustShape(t, 3, 5))
	require.NoError(t, a.CopyTo(b))
	assert.True(t, Equal(a, b))

	require.NoError(t, a.SetValue(99, 0, 0))
	v, err := b.GetValue(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), v, "copy must not alias the source")
}

func TestCopyToFromSlicedView(t *testing.T) {
	a := iota2D(t)
	view, err := a.Slice(All(), Flip())
	require.NoError(t, err)

	b := New[int32](mustShape(t, 3, 5))
	require.NoError(t, view.CopyTo(b))

	v, err := b.GetValue(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(4), v)
	v, err = b.GetValue(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(10), v)
}

func TestWrapValidatesBufferSize(t *testing.T) {
	_, err := Wrap(buffer.New[int32](5), mustShape(t, 2, 3))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	a, err := Wrap(buffer.New[int32](6), mustShape(t, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(6), a.Size())
}

func TestFromSliceSharesStorage(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	a, err := FromSlice(data, mustShape(t, 2, 2))
	require.NoError(t, err)

	require.NoError(t, a.SetValue(9, 0, 1))
	assert.Equal(t, float32(9), data[1])

	_, err = FromSlice(data, mustShape(t, 3, 2))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestReadOnlyArrayRejectsWrites(t *testing.T) {
	a, err := Wrap(buffer.AsReadOnly[int32](buffer.New[int32](6)), mustShape(t, 2, 3))
	require.NoError(t, err)

	assert.ErrorIs(t, a.SetValue(1, 0, 0), ErrReadOnly)
	assert.ErrorIs(t, a.Write(make([]int32, 6)), ErrReadOnly)
}

func TestScalarArray(t *testing.T) {
	s := ScalarOf(42)

	v, err := s.GetValue()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	require.NoError(t, s.SetValue(43))
	v, err = s.GetValue()
	require.NoError(t, err)
	assert.Equal(t, 43, v)

	_, err = s.GetValue(0)
	assert.ErrorIs(t, err, ErrRankMismatch)
	_, err = s.Elements(0)
	assert.ErrorIs(t, err, ErrRankMismatch)
}
