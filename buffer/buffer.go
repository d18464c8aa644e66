// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package buffer

import (
	"iter"

	"github.com/born-ml/ndkit/internal/buffer"
)

// Buffer is a bounded, random-access container of Size() elements of type
// T. See the package documentation for view and aliasing semantics.
type Buffer[T any] = buffer.Buffer[T]

// SliceBuffer is a Buffer backed by a contiguous Go slice.
type SliceBuffer[T any] = buffer.SliceBuffer[T]

// Layout converts between a physical element type S and a logical element
// type T, consuming Scale() physical elements per logical value.
type Layout[S, T any] = buffer.Layout[S, T]

// String stores variable-length byte records behind an offset table with
// varint-prefixed payloads. It is filled once with Init and read-only
// afterwards.
type String = buffer.String

// Error sentinels reported by buffer operations.
var (
	ErrIndexOutOfRange = buffer.ErrIndexOutOfRange
	ErrShapeMismatch   = buffer.ErrShapeMismatch
	ErrInvalidOffset   = buffer.ErrInvalidOffset
	ErrBufferUnderrun  = buffer.ErrBufferUnderrun
	ErrBufferOverrun   = buffer.ErrBufferOverrun
	ErrReadOnly        = buffer.ErrReadOnly
)

// New allocates a zero-initialized buffer of the given size.
func New[T any](size int64) *SliceBuffer[T] {
	return buffer.New[T](size)
}

// Of returns a buffer holding the given values.
func Of[T any](values ...T) *SliceBuffer[T] {
	return buffer.Of(values...)
}

// Wrap returns a buffer sharing the given slice.
func Wrap[T any](data []T) *SliceBuffer[T] {
	return buffer.Wrap(data)
}

// AsReadOnly returns a read-only view of the given buffer, sharing
// storage.
func AsReadOnly[T any](b Buffer[T]) Buffer[T] {
	return buffer.AsReadOnly(b)
}

// Adapt returns a logical view of phys decoded through layout, sharing
// storage.
func Adapt[S, T any](phys Buffer[S], layout Layout[S, T]) Buffer[T] {
	return buffer.Adapt(phys, layout)
}

// ValueLayout builds a Layout from a decode/encode pair mapping one
// physical element to one logical value.
func ValueLayout[S, T any](decode func(S) T, encode func(T) S) Layout[S, T] {
	return buffer.ValueLayout(decode, encode)
}

// Float16 returns a layout viewing IEEE 754 half-precision bit patterns
// stored as uint16 as logical float32 values.
func Float16() Layout[uint16, float32] {
	return buffer.Float16()
}

// BoolByte returns a layout viewing one byte per value as logical bool.
func BoolByte() Layout[byte, bool] {
	return buffer.BoolByte()
}

// Int64LE returns a layout viewing groups of 8 bytes as little-endian
// int64 values.
func Int64LE() Layout[byte, int64] {
	return buffer.Int64LE()
}

// Complex64 returns a layout viewing pairs of float32 values as logical
// complex64 values.
func Complex64() Layout[float32, complex64] {
	return buffer.Complex64()
}

// StringSize returns the exact number of bytes a String buffer needs to
// store the given records.
func StringSize(records iter.Seq[[]byte]) int64 {
	return buffer.StringSize(records)
}

// NewString allocates an uninitialized String buffer for count records
// occupying totalSize bytes, as reported by StringSize.
func NewString(count, totalSize int64) (*String, error) {
	return buffer.NewString(count, totalSize)
}
