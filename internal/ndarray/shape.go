// Package ndarray provides n-dimensional array views over flat buffers.
package ndarray

import (
	"fmt"
	"strings"
)

// Shape is an immutable ordered sequence of non-negative dimension sizes.
// A rank-0 shape describes a scalar holding exactly one element.
type Shape struct {
	dims []int64
	size int64
}

// MakeShape builds a shape from the given dimension sizes.
// Every size must be non-negative.
func MakeShape(dims ...int64) (Shape, error) {
	for i, d := range dims {
		if d < 0 {
			return Shape{}, fmt.Errorf("invalid size %d for dimension %d: %w", d, i, ErrIndexOutOfRange)
		}
	}
	owned := make([]int64, len(dims))
	copy(owned, dims)
	return Shape{dims: owned, size: elementCount(owned)}, nil
}

// ScalarShape returns the rank-0 shape.
func ScalarShape() Shape {
	return Shape{size: 1}
}

// makeShape builds a shape from dimension sizes already known to be valid,
// taking ownership of the slice.
func makeShape(dims []int64) Shape {
	return Shape{dims: dims, size: elementCount(dims)}
}

func elementCount(dims []int64) int64 {
	n := int64(1)
	for _, d := range dims {
		n *= d
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s.dims)
}

// Size returns the total number of elements, the product of all dimension
// sizes. A rank-0 shape has size 1.
func (s Shape) Size() int64 {
	return s.size
}

// Dim returns the size of the i-th dimension.
func (s Shape) Dim(i int) int64 {
	return s.dims[i]
}

// Dims returns a copy of the dimension sizes.
func (s Shape) Dims() []int64 {
	dims := make([]int64, len(s.dims))
	copy(dims, s.dims)
	return dims
}

// IsScalar reports whether the shape has rank 0.
func (s Shape) IsScalar() bool {
	return len(s.dims) == 0
}

// Equal reports whether both shapes have the same dimension sequence.
func (s Shape) Equal(other Shape) bool {
	if len(s.dims) != len(other.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i] != other.dims[i] {
			return false
		}
	}
	return true
}

// tail returns the shape of the dimensions after the first n.
func (s Shape) tail(n int) Shape {
	dims := make([]int64, len(s.dims)-n)
	copy(dims, s.dims[n:])
	return makeShape(dims)
}

// strides returns the row-major stride of each dimension: the number of
// flat elements separating two consecutive coordinates along it.
func (s Shape) strides() []int64 {
	strides := make([]int64, len(s.dims))
	stride := int64(1)
	for i := len(s.dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= s.dims[i]
	}
	return strides
}

// String formats the shape as a bracketed dimension list.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range s.dims {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", d)
	}
	b.WriteByte(']')
	return b.String()
}
