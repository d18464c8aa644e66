// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"iter"

	"github.com/born-ml/ndkit/internal/buffer"
	"github.com/born-ml/ndkit/internal/ndarray"
)

// Shape is an immutable ordered sequence of non-negative dimension sizes.
type Shape = ndarray.Shape

// Index describes how one dimension is restricted, reordered or
// subsampled by a slice operation.
type Index = ndarray.Index

// Array is an n-dimensional view over a flat buffer.
type Array[T any] = ndarray.Array[T]

// Sequence lazily decomposes an array into sub-arrays at a fixed depth.
type Sequence[T any] = ndarray.Sequence[T]

// Error sentinels reported by array and buffer operations.
var (
	ErrRankMismatch    = ndarray.ErrRankMismatch
	ErrIndexOutOfRange = ndarray.ErrIndexOutOfRange
	ErrShapeMismatch   = ndarray.ErrShapeMismatch
	ErrInvalidOffset   = ndarray.ErrInvalidOffset
	ErrBufferUnderrun  = ndarray.ErrBufferUnderrun
	ErrBufferOverrun   = ndarray.ErrBufferOverrun
	ErrReadOnly        = ndarray.ErrReadOnly
)

// Shape construction

// MakeShape builds a shape from the given dimension sizes.
func MakeShape(dims ...int64) (Shape, error) {
	return ndarray.MakeShape(dims...)
}

// ScalarShape returns the rank-0 shape.
func ScalarShape() Shape {
	return ndarray.ScalarShape()
}

// Array construction

// New allocates a zero-initialized array of the given shape.
//
// Example:
//
//	shape, _ := ndarray.MakeShape(2, 3)
//	a := ndarray.New[float32](shape)
func New[T any](shape Shape) *Array[T] {
	return ndarray.New[T](shape)
}

// Wrap views the given buffer through the given shape, sharing storage.
func Wrap[T any](buf buffer.Buffer[T], shape Shape) (*Array[T], error) {
	return ndarray.Wrap(buf, shape)
}

// FromSlice views the given slice through the given shape, sharing
// storage.
//
// Example:
//
//	shape, _ := ndarray.MakeShape(2, 3)
//	a, err := ndarray.FromSlice([]float32{1, 2, 3, 4, 5, 6}, shape)
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}

// ScalarOf returns a rank-0 array holding the given value.
func ScalarOf[T any](value T) *Array[T] {
	return ndarray.ScalarOf(value)
}

// Vector returns a rank-1 array holding the given values.
func Vector[T any](values ...T) *Array[T] {
	return ndarray.Vector(values...)
}

// Index specifications

// All keeps a dimension as is.
func All() Index {
	return ndarray.All()
}

// At selects the element at the given position and collapses the
// dimension.
func At(pos int64) Index {
	return ndarray.At(pos)
}

// AtValueOf selects the position held by the given rank-0 integer array
// and collapses the dimension. The position is read eagerly.
func AtValueOf[T ~int32 | ~int64](src *Array[T]) (Index, error) {
	return ndarray.AtValueOf(src)
}

// Range keeps the half-open interval [begin, end) of a dimension.
func Range(begin, end int64) Index {
	return ndarray.Range(begin, end)
}

// From keeps all positions starting at begin.
func From(begin int64) Index {
	return ndarray.From(begin)
}

// To keeps all positions before end.
func To(end int64) Index {
	return ndarray.To(end)
}

// Seq keeps exactly the given positions, in order.
func Seq(positions ...int64) Index {
	return ndarray.Seq(positions...)
}

// Even keeps the even positions of a dimension.
func Even() Index {
	return ndarray.Even()
}

// Odd keeps the odd positions of a dimension.
func Odd() Index {
	return ndarray.Odd()
}

// Flip reverses a dimension.
func Flip() Index {
	return ndarray.Flip()
}

// Utilities

// Equal reports whether both arrays have the same shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return ndarray.Equal(a, b)
}

// BytesOf yields the array's elements converted to raw bytes with
// toBytes, in row-major order.
func BytesOf[T any](a *Array[T], toBytes func(T) []byte) iter.Seq[[]byte] {
	return ndarray.BytesOf(a, toBytes)
}

// EncodeStrings packs the array's elements into a freshly allocated,
// read-only string buffer, one record per element in row-major order.
func EncodeStrings[T any](a *Array[T], toBytes func(T) []byte) (*buffer.String, error) {
	return ndarray.EncodeStrings(a, toBytes)
}
