package buffer

import (
	"github.com/x448/float16"
)

// Layout converts between a physical element type S and a logical element
// type T. Scale is the number of physical elements consumed per logical
// value; layouts with Scale > 1 spread one logical value across several
// consecutive physical elements.
//
// Layouts are stateless value transforms and safe to share across
// goroutines.
type Layout[S, T any] interface {
	// Scale returns the number of physical elements per logical value.
	Scale() int64

	// ReadValue decodes the logical value whose first physical element is
	// at index in phys.
	ReadValue(phys Buffer[S], index int64) (T, error)

	// WriteValue encodes value into phys starting at index.
	WriteValue(phys Buffer[S], value T, index int64) error
}

// valueLayout adapts a pure decode/encode pair into a Scale-1 Layout.
type valueLayout[S, T any] struct {
	decode func(S) T
	encode func(T) S
}

// ValueLayout builds a Layout from a decode/encode pair mapping one
// physical element to one logical value.
func ValueLayout[S, T any](decode func(S) T, encode func(T) S) Layout[S, T] {
	return valueLayout[S, T]{decode: decode, encode: encode}
}

func (l valueLayout[S, T]) Scale() int64 {
	return 1
}

func (l valueLayout[S, T]) ReadValue(phys Buffer[S], index int64) (T, error) {
	s, err := phys.Get(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.decode(s), nil
}

func (l valueLayout[S, T]) WriteValue(phys Buffer[S], value T, index int64) error {
	return phys.Set(l.encode(value), index)
}

// Float16 returns a layout viewing IEEE 754 half-precision bit patterns
// stored as uint16 as logical float32 values.
func Float16() Layout[uint16, float32] {
	return ValueLayout(
		func(bits uint16) float32 { return float16.Frombits(bits).Float32() },
		func(v float32) uint16 { return float16.Fromfloat32(v).Bits() },
	)
}

// BoolByte returns a layout viewing one byte per value as logical bool.
// Any non-zero byte decodes as true; true encodes as 1.
func BoolByte() Layout[byte, bool] {
	return ValueLayout(
		func(b byte) bool { return b != 0 },
		func(v bool) byte {
			if v {
				return 1
			}
			return 0
		},
	)
}

// int64LE views 8 consecutive bytes as one little-endian int64.
type int64LE struct{}

// Int64LE returns a layout viewing groups of 8 bytes as little-endian
// int64 values. Its scale of 8 makes it the layout used for the offset
// table of string buffers.
func Int64LE() Layout[byte, int64] {
	return int64LE{}
}

func (int64LE) Scale() int64 {
	return 8
}

func (int64LE) ReadValue(phys Buffer[byte], index int64) (int64, error) {
	var v uint64
	for i := int64(0); i < 8; i++ {
		b, err := phys.Get(index + i)
		if err != nil {
			return 0, err
		}
		v |= uint64(b) << (8 * i)
	}
	return int64(v), nil
}

func (int64LE) WriteValue(phys Buffer[byte], value int64, index int64) error {
	v := uint64(value)
	for i := int64(0); i < 8; i++ {
		if err := phys.Set(byte(v>>(8*i)), index+i); err != nil {
			return err
		}
	}
	return nil
}

// complex64Pair views two consecutive float32 words as one complex64.
type complex64Pair struct{}

// Complex64 returns a layout viewing pairs of float32 values (real part
// first) as logical complex64 values.
func Complex64() Layout[float32, complex64] {
	return complex64Pair{}
}

func (complex64Pair) Scale() int64 {
	return 2
}

func (complex64Pair) ReadValue(phys Buffer[float32], index int64) (complex64, error) {
	re, err := phys.Get(index)
	if err != nil {
		return 0, err
	}
	im, err := phys.Get(index + 1)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

func (complex64Pair) WriteValue(phys Buffer[float32], value complex64, index int64) error {
	if err := phys.Set(real(value), index); err != nil {
		return err
	}
	return phys.Set(imag(value), index+1)
}
