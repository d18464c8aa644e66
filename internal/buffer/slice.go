package buffer

import "fmt"

// SliceBuffer is a Buffer backed by a contiguous Go slice. Offset and
// Narrow reslice the same backing array, so all views alias one storage.
type SliceBuffer[T any] struct {
	data []T
}

// New allocates a zero-initialized buffer of the given size.
func New[T any](size int64) *SliceBuffer[T] {
	if size < 0 {
		size = 0
	}
	return &SliceBuffer[T]{data: make([]T, size)}
}

// Of returns a buffer holding the given values.
func Of[T any](values ...T) *SliceBuffer[T] {
	return &SliceBuffer[T]{data: values}
}

// Wrap returns a buffer sharing the given slice. Mutations through the
// buffer are visible in the slice and vice versa.
func Wrap[T any](data []T) *SliceBuffer[T] {
	return &SliceBuffer[T]{data: data}
}

// Data returns the backing slice without copying.
func (b *SliceBuffer[T]) Data() []T {
	return b.data
}

// Size returns the number of elements in the buffer.
func (b *SliceBuffer[T]) Size() int64 {
	return int64(len(b.data))
}

// Get returns the element at the given position.
func (b *SliceBuffer[T]) Get(index int64) (T, error) {
	if err := checkIndex(index, b.Size()); err != nil {
		var zero T
		return zero, err
	}
	return b.data[index], nil
}

// Set stores value at the given position.
func (b *SliceBuffer[T]) Set(value T, index int64) error {
	if err := checkIndex(index, b.Size()); err != nil {
		return err
	}
	b.data[index] = value
	return nil
}

// Offset returns a view starting at index.
func (b *SliceBuffer[T]) Offset(index int64) (Buffer[T], error) {
	if err := checkOffset(index, b.Size()); err != nil {
		return nil, err
	}
	return &SliceBuffer[T]{data: b.data[index:]}, nil
}

// Narrow returns a view of the first size elements.
func (b *SliceBuffer[T]) Narrow(size int64) (Buffer[T], error) {
	if err := checkNarrow(size, b.Size()); err != nil {
		return nil, err
	}
	return &SliceBuffer[T]{data: b.data[:size]}, nil
}

// CopyTo copies the first size elements into dst. When dst shares the
// slice-backed representation the copy is a single bulk move.
func (b *SliceBuffer[T]) CopyTo(dst Buffer[T], size int64) error {
	if err := checkCopy(size, b.Size(), dst.Size()); err != nil {
		return err
	}
	if dst.IsReadOnly() {
		return fmt.Errorf("cannot copy into read-only buffer: %w", ErrReadOnly)
	}
	if sb, ok := dst.(*SliceBuffer[T]); ok {
		copy(sb.data[:size], b.data[:size])
		return nil
	}
	return slowCopy[T](b, dst, size)
}

// Read copies len(dst) elements from the start of the buffer into dst.
func (b *SliceBuffer[T]) Read(dst []T) error {
	if int64(len(dst)) > b.Size() {
		return fmt.Errorf("reading %d elements from buffer of size %d: %w", len(dst), b.Size(), ErrBufferUnderrun)
	}
	copy(dst, b.data)
	return nil
}

// Write copies all of src into the start of the buffer.
func (b *SliceBuffer[T]) Write(src []T) error {
	if int64(len(src)) > b.Size() {
		return fmt.Errorf("writing %d elements to buffer of size %d: %w", len(src), b.Size(), ErrBufferOverrun)
	}
	copy(b.data, src)
	return nil
}

// IsReadOnly reports whether mutations are rejected. Always false for
// slice buffers; see AsReadOnly.
func (b *SliceBuffer[T]) IsReadOnly() bool {
	return false
}

// readOnlyBuffer rejects every mutation while delegating reads.
type readOnlyBuffer[T any] struct {
	inner Buffer[T]
}

// AsReadOnly returns a read-only view of the given buffer. The view shares
// storage: writes through the original remain visible.
func AsReadOnly[T any](b Buffer[T]) Buffer[T] {
	if b.IsReadOnly() {
		return b
	}
	return &readOnlyBuffer[T]{inner: b}
}

func (b *readOnlyBuffer[T]) Size() int64 {
	return b.inner.Size()
}

func (b *readOnlyBuffer[T]) Get(index int64) (T, error) {
	return b.inner.Get(index)
}

func (b *readOnlyBuffer[T]) Set(value T, index int64) error {
	return fmt.Errorf("cannot set element of read-only buffer: %w", ErrReadOnly)
}

func (b *readOnlyBuffer[T]) Offset(index int64) (Buffer[T], error) {
	view, err := b.inner.Offset(index)
	if err != nil {
		return nil, err
	}
	return &readOnlyBuffer[T]{inner: view}, nil
}

func (b *readOnlyBuffer[T]) Narrow(size int64) (Buffer[T], error) {
	view, err := b.inner.Narrow(size)
	if err != nil {
		return nil, err
	}
	return &readOnlyBuffer[T]{inner: view}, nil
}

func (b *readOnlyBuffer[T]) CopyTo(dst Buffer[T], size int64) error {
	return b.inner.CopyTo(dst, size)
}

func (b *readOnlyBuffer[T]) Read(dst []T) error {
	return b.inner.Read(dst)
}

func (b *readOnlyBuffer[T]) Write(src []T) error {
	return fmt.Errorf("cannot write to read-only buffer: %w", ErrReadOnly)
}

func (b *readOnlyBuffer[T]) IsReadOnly() bool {
	return true
}
