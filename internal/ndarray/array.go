package ndarray

import (
	"fmt"

	"github.com/born-ml/ndkit/internal/buffer"
)

// dim maps local coordinates of one dimension to flat buffer offsets.
// lookup translates a local coordinate into a source coordinate (nil means
// identity); stride is the flat distance between consecutive source
// coordinates.
type dim struct {
	size   int64
	stride int64
	lookup func(int64) int64
}

// project returns the flat offset contribution of local coordinate c.
func (d dim) project(c int64) int64 {
	if d.lookup != nil {
		c = d.lookup(c)
	}
	return c * d.stride
}

// Array is an n-dimensional view over a flat buffer. Views created by
// Get, Slice and element sequences share the backing buffer: mutations
// through one view are visible through all others. Concurrent mutation of
// overlapping views is a data race; the array performs no locking.
type Array[T any] struct {
	shape Shape
	dims  []dim
	base  int64
	buf   buffer.Buffer[T]
}

// New allocates a zero-initialized array of the given shape.
func New[T any](shape Shape) *Array[T] {
	return &Array[T]{
		shape: shape,
		dims:  dimsOf(shape),
		buf:   buffer.New[T](shape.Size()),
	}
}

// Wrap views the given buffer through the given shape, sharing storage.
// The buffer must hold at least shape.Size() elements.
func Wrap[T any](buf buffer.Buffer[T], shape Shape) (*Array[T], error) {
	if buf.Size() < shape.Size() {
		return nil, fmt.Errorf("buffer of size %d cannot back an array of shape %s: %w",
			buf.Size(), shape, ErrShapeMismatch)
	}
	return &Array[T]{shape: shape, dims: dimsOf(shape), buf: buf}, nil
}

// FromSlice views the given slice through the given shape, sharing
// storage. The slice length must equal shape.Size() exactly.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	if int64(len(data)) != shape.Size() {
		return nil, fmt.Errorf("slice of %d elements does not match shape %s: %w",
			len(data), shape, ErrShapeMismatch)
	}
	return &Array[T]{shape: shape, dims: dimsOf(shape), buf: buffer.Wrap(data)}, nil
}

// ScalarOf returns a rank-0 array holding the given value.
func ScalarOf[T any](value T) *Array[T] {
	return &Array[T]{shape: ScalarShape(), buf: buffer.Of(value)}
}

// Vector returns a rank-1 array holding the given values.
func Vector[T any](values ...T) *Array[T] {
	shape := makeShape([]int64{int64(len(values))})
	return &Array[T]{shape: shape, dims: dimsOf(shape), buf: buffer.Of(values...)}
}

func dimsOf(shape Shape) []dim {
	strides := shape.strides()
	dims := make([]dim, shape.Rank())
	for i := range dims {
		dims[i] = dim{size: shape.Dim(i), stride: strides[i]}
	}
	return dims
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return a.shape.Rank()
}

// Size returns the total number of elements.
func (a *Array[T]) Size() int64 {
	return a.shape.Size()
}

// String formats the array's type and shape for diagnostics.
func (a *Array[T]) String() string {
	var zero T
	return fmt.Sprintf("ndarray.Array[%T]%s", zero, a.shape)
}

// offsetOf validates coords against the leading dimensions and returns the
// flat buffer position they select.
func (a *Array[T]) offsetOf(coords []int64) (int64, error) {
	pos := a.base
	for i, c := range coords {
		d := a.dims[i]
		if c < 0 || c >= d.size {
			return 0, fmt.Errorf("coordinate %d is %d, outside dimension of size %d: %w",
				i, c, d.size, ErrIndexOutOfRange)
		}
		pos += d.project(c)
	}
	return pos, nil
}

// position returns the flat buffer position of coords, which must already
// be in range.
func (a *Array[T]) position(coords []int64) int64 {
	pos := a.base
	for i, c := range coords {
		pos += a.dims[i].project(c)
	}
	return pos
}

// GetValue returns the element at the given coordinates. The coordinate
// count must equal the array's rank exactly.
func (a *Array[T]) GetValue(coords ...int64) (T, error) {
	var zero T
	if len(coords) != a.Rank() {
		return zero, fmt.Errorf("got %d coordinates for an array of rank %d: %w",
			len(coords), a.Rank(), ErrRankMismatch)
	}
	pos, err := a.offsetOf(coords)
	if err != nil {
		return zero, err
	}
	return a.buf.Get(pos)
}

// SetValue stores value at the given coordinates. The coordinate count
// must equal the array's rank exactly.
func (a *Array[T]) SetValue(value T, coords ...int64) error {
	if len(coords) != a.Rank() {
		return fmt.Errorf("got %d coordinates for an array of rank %d: %w",
			len(coords), a.Rank(), ErrRankMismatch)
	}
	pos, err := a.offsetOf(coords)
	if err != nil {
		return err
	}
	return a.buf.Set(value, pos)
}

// Get fixes the given leading coordinates and returns the lower-rank view
// over the remaining dimensions, sharing storage. Passing rank coordinates
// yields a rank-0 view; passing more fails with ErrRankMismatch.
func (a *Array[T]) Get(coords ...int64) (*Array[T], error) {
	if len(coords) > a.Rank() {
		return nil, fmt.Errorf("got %d coordinates for an array of rank %d: %w",
			len(coords), a.Rank(), ErrRankMismatch)
	}
	pos, err := a.offsetOf(coords)
	if err != nil {
		return nil, err
	}
	return &Array[T]{
		shape: a.shape.tail(len(coords)),
		dims:  a.dims[len(coords):],
		base:  pos,
		buf:   a.buf,
	}, nil
}

// Slice applies one index specification per leading dimension and returns
// the resulting view, sharing storage. Unspecified trailing dimensions are
// kept whole; dimensions collapsed by At disappear from the result.
// Slicing a slice composes the coordinate mappings.
func (a *Array[T]) Slice(specs ...Index) (*Array[T], error) {
	if len(specs) > a.Rank() {
		return nil, fmt.Errorf("got %d index specifications for an array of rank %d: %w",
			len(specs), a.Rank(), ErrRankMismatch)
	}
	base := a.base
	dims := make([]dim, 0, a.Rank())
	sizes := make([]int64, 0, a.Rank())
	for i, d := range a.dims {
		if i >= len(specs) {
			dims = append(dims, d)
			sizes = append(sizes, d.size)
			continue
		}
		size, lookup, collapsed, err := specs[i].resolve(d.size)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		if collapsed {
			base += d.project(lookup(0))
			continue
		}
		dims = append(dims, dim{size: size, stride: d.stride, lookup: composeLookup(d.lookup, lookup)})
		sizes = append(sizes, size)
	}
	return &Array[T]{shape: makeShape(sizes), dims: dims, base: base, buf: a.buf}, nil
}

// composeLookup chains two local-to-source mappings, outer after inner.
func composeLookup(outer, inner func(int64) int64) func(int64) int64 {
	switch {
	case inner == nil:
		return outer
	case outer == nil:
		return inner
	default:
		return func(i int64) int64 { return outer(inner(i)) }
	}
}

// child returns the sub-array fixing the given in-range coordinate prefix.
func (a *Array[T]) child(prefix []int64) *Array[T] {
	pos := a.base
	for i, c := range prefix {
		pos += a.dims[i].project(c)
	}
	return &Array[T]{
		shape: a.shape.tail(len(prefix)),
		dims:  a.dims[len(prefix):],
		base:  pos,
		buf:   a.buf,
	}
}

// isContiguous reports whether the view covers a dense row-major block of
// the buffer starting at base, enabling bulk transfers.
func (a *Array[T]) isContiguous() bool {
	stride := int64(1)
	for i := len(a.dims) - 1; i >= 0; i-- {
		d := a.dims[i]
		if d.lookup != nil || d.stride != stride {
			return false
		}
		stride *= d.size
	}
	return true
}

// block returns the dense buffer region backing a contiguous view.
func (a *Array[T]) block() (buffer.Buffer[T], error) {
	view, err := a.buf.Offset(a.base)
	if err != nil {
		return nil, err
	}
	return view.Narrow(a.Size())
}

// Equal reports whether both arrays have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	if a.Size() == 0 {
		return true
	}
	coords := make([]int64, a.Rank())
	for {
		av, err := a.buf.Get(a.position(coords))
		if err != nil {
			return false
		}
		bv, err := b.buf.Get(b.position(coords))
		if err != nil {
			return false
		}
		if av != bv {
			return false
		}
		if !nextCoords(coords, a.dims) {
			return true
		}
	}
}

// nextCoords advances coords to the next row-major position within the
// given dimensions, returning false once all positions are exhausted.
func nextCoords(coords []int64, dims []dim) bool {
	for i := len(coords) - 1; i >= 0; i-- {
		coords[i]++
		if coords[i] < dims[i].size {
			return true
		}
		coords[i] = 0
	}
	return false
}
