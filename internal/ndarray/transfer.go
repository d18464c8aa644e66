package ndarray

import (
	"fmt"

	"github.com/born-ml/ndkit/internal/buffer"
)

// CopyTo copies every element of the array into dst by value. Both arrays
// must have exactly the same shape. Nothing is written on failure.
func (a *Array[T]) CopyTo(dst *Array[T]) error {
	if !a.shape.Equal(dst.shape) {
		return fmt.Errorf("cannot copy array of shape %s to array of shape %s: %w",
			a.shape, dst.shape, ErrShapeMismatch)
	}
	if a.Size() == 0 {
		return nil
	}
	if a.isContiguous() && dst.isContiguous() {
		src, err := a.block()
		if err != nil {
			return err
		}
		out, err := dst.block()
		if err != nil {
			return err
		}
		return src.CopyTo(out, a.Size())
	}
	if dst.buf.IsReadOnly() {
		return fmt.Errorf("cannot copy into read-only array: %w", ErrReadOnly)
	}
	coords := make([]int64, a.Rank())
	for {
		v, err := a.buf.Get(a.position(coords))
		if err != nil {
			return err
		}
		if err := dst.buf.Set(v, dst.position(coords)); err != nil {
			return err
		}
		if !nextCoords(coords, a.dims) {
			return nil
		}
	}
}

// Read copies the array's elements into dst in row-major order. dst must
// hold at least Size() elements.
func (a *Array[T]) Read(dst []T) error {
	return a.ReadAt(dst, 0)
}

// ReadAt copies the array's elements into dst starting at the given
// offset. Fails with ErrInvalidOffset for offsets outside [0, len(dst)]
// and ErrBufferOverrun when fewer than Size() slots remain.
func (a *Array[T]) ReadAt(dst []T, offset int64) error {
	if offset < 0 || offset > int64(len(dst)) {
		return fmt.Errorf("offset %d outside destination of length %d: %w", offset, len(dst), ErrInvalidOffset)
	}
	if int64(len(dst))-offset < a.Size() {
		return fmt.Errorf("%d slots remain for %d elements: %w", int64(len(dst))-offset, a.Size(), ErrBufferOverrun)
	}
	if a.Size() == 0 {
		return nil
	}
	if a.isContiguous() {
		block, err := a.block()
		if err != nil {
			return err
		}
		return block.Read(dst[offset : offset+a.Size()])
	}
	coords := make([]int64, a.Rank())
	for i := offset; ; i++ {
		v, err := a.buf.Get(a.position(coords))
		if err != nil {
			return err
		}
		dst[i] = v
		if !nextCoords(coords, a.dims) {
			return nil
		}
	}
}

// Write copies Size() elements from src into the array in row-major
// order. src must hold at least Size() elements.
func (a *Array[T]) Write(src []T) error {
	return a.WriteAt(src, 0)
}

// WriteAt copies Size() elements from src, starting at the given offset,
// into the array. Fails with ErrInvalidOffset for offsets outside
// [0, len(src)] and ErrBufferUnderrun when fewer than Size() elements
// remain.
func (a *Array[T]) WriteAt(src []T, offset int64) error {
	if offset < 0 || offset > int64(len(src)) {
		return fmt.Errorf("offset %d outside source of length %d: %w", offset, len(src), ErrInvalidOffset)
	}
	if int64(len(src))-offset < a.Size() {
		return fmt.Errorf("%d elements remain to fill an array of %d: %w", int64(len(src))-offset, a.Size(), ErrBufferUnderrun)
	}
	if a.Size() == 0 {
		return nil
	}
	if a.isContiguous() {
		block, err := a.block()
		if err != nil {
			return err
		}
		return block.Write(src[offset : offset+a.Size()])
	}
	if a.buf.IsReadOnly() {
		return fmt.Errorf("cannot write to read-only array: %w", ErrReadOnly)
	}
	coords := make([]int64, a.Rank())
	for i := offset; ; i++ {
		if err := a.buf.Set(src[i], a.position(coords)); err != nil {
			return err
		}
		if !nextCoords(coords, a.dims) {
			return nil
		}
	}
}

// ReadBuffer copies the array's elements into dst in row-major order.
// dst must hold at least Size() elements.
func (a *Array[T]) ReadBuffer(dst buffer.Buffer[T]) error {
	if dst.Size() < a.Size() {
		return fmt.Errorf("buffer of size %d cannot hold %d elements: %w", dst.Size(), a.Size(), ErrBufferOverrun)
	}
	if a.Size() == 0 {
		return nil
	}
	if dst.IsReadOnly() {
		return fmt.Errorf("cannot copy into read-only buffer: %w", ErrReadOnly)
	}
	if a.isContiguous() {
		block, err := a.block()
		if err != nil {
			return err
		}
		return block.CopyTo(dst, a.Size())
	}
	coords := make([]int64, a.Rank())
	for i := int64(0); ; i++ {
		v, err := a.buf.Get(a.position(coords))
		if err != nil {
			return err
		}
		if err := dst.Set(v, i); err != nil {
			return err
		}
		if !nextCoords(coords, a.dims) {
			return nil
		}
	}
}

// WriteBuffer copies Size() elements from src into the array in row-major
// order. src must hold at least Size() elements.
func (a *Array[T]) WriteBuffer(src buffer.Buffer[T]) error {
	if src.Size() < a.Size() {
		return fmt.Errorf("buffer of size %d cannot fill an array of %d elements: %w", src.Size(), a.Size(), ErrBufferUnderrun)
	}
	if a.Size() == 0 {
		return nil
	}
	if a.isContiguous() {
		block, err := a.block()
		if err != nil {
			return err
		}
		return src.CopyTo(block, a.Size())
	}
	if a.buf.IsReadOnly() {
		return fmt.Errorf("cannot write to read-only array: %w", ErrReadOnly)
	}
	coords := make([]int64, a.Rank())
	for i := int64(0); ; i++ {
		v, err := src.Get(i)
		if err != nil {
			return err
		}
		if err := a.buf.Set(v, a.position(coords)); err != nil {
			return err
		}
		if !nextCoords(coords, a.dims) {
			return nil
		}
	}
}
