// Package buffer provides flat, fixed-layout element storage for ndkit.
package buffer

import (
	"errors"
	"fmt"
)

// Error sentinels for buffer contract violations. All failures are
// synchronous and reported before any element is mutated.
var (
	// ErrIndexOutOfRange indicates a position outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrShapeMismatch indicates that a copy target cannot hold the
	// requested number of elements, or that two string buffers of
	// different declared sizes were bulk-copied.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidOffset indicates a negative offset or an offset past the
	// end of a linear source or destination.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrBufferUnderrun indicates that a source holds fewer elements than
	// a transfer requires.
	ErrBufferUnderrun = errors.New("buffer underrun")

	// ErrBufferOverrun indicates that a destination holds fewer slots than
	// a transfer requires.
	ErrBufferOverrun = errors.New("buffer overrun")

	// ErrReadOnly indicates a mutation attempt on a read-only buffer.
	ErrReadOnly = errors.New("buffer is read-only")
)

// Buffer is a bounded, random-access container of Size() elements of type T.
//
// Offset and Narrow return O(1) views that share storage with the receiver;
// mutations through one view are visible through all others. Concurrent
// mutation of overlapping views is a data race: the buffer performs no
// internal locking.
type Buffer[T any] interface {
	// Size returns the number of elements in the buffer.
	Size() int64

	// Get returns the element at the given position.
	// Fails with ErrIndexOutOfRange if index is outside [0, Size()).
	Get(index int64) (T, error)

	// Set stores value at the given position.
	// Fails with ErrIndexOutOfRange on bad positions and ErrReadOnly on
	// read-only buffers.
	Set(value T, index int64) error

	// Offset returns a view starting at index, sharing storage.
	// The view's size is Size()-index.
	Offset(index int64) (Buffer[T], error)

	// Narrow returns a view limited to the first size elements, sharing
	// storage.
	Narrow(size int64) (Buffer[T], error)

	// CopyTo copies the first size elements into dst. Fails with
	// ErrShapeMismatch before copying anything if either side holds fewer
	// than size elements.
	CopyTo(dst Buffer[T], size int64) error

	// Read copies len(dst) elements from the start of the buffer into dst.
	// Fails with ErrBufferUnderrun if the buffer holds fewer elements.
	Read(dst []T) error

	// Write copies all of src into the start of the buffer. Fails with
	// ErrBufferOverrun if the buffer cannot hold len(src) elements.
	Write(src []T) error

	// IsReadOnly reports whether mutations are rejected.
	IsReadOnly() bool
}

// checkIndex validates a single element position against size.
func checkIndex(index, size int64) error {
	if index < 0 || index >= size {
		return fmt.Errorf("position %d outside buffer of size %d: %w", index, size, ErrIndexOutOfRange)
	}
	return nil
}

// checkOffset validates the starting position of a sub-view or transfer.
// Unlike checkIndex, size itself is a valid (empty) offset.
func checkOffset(offset, size int64) error {
	if offset < 0 || offset > size {
		return fmt.Errorf("offset %d outside buffer of size %d: %w", offset, size, ErrInvalidOffset)
	}
	return nil
}

// checkNarrow validates the size of a narrowed view.
func checkNarrow(narrowed, size int64) error {
	if narrowed < 0 || narrowed > size {
		return fmt.Errorf("cannot narrow buffer of size %d to %d elements: %w", size, narrowed, ErrIndexOutOfRange)
	}
	return nil
}

// checkCopy validates a bulk copy of n elements from src to dst sizes.
func checkCopy(n, src, dst int64) error {
	if n < 0 || n > src {
		return fmt.Errorf("cannot copy %d elements from buffer of size %d: %w", n, src, ErrShapeMismatch)
	}
	if n > dst {
		return fmt.Errorf("destination of size %d cannot hold %d elements: %w", dst, n, ErrShapeMismatch)
	}
	return nil
}

// slowCopy transfers n elements one by one through the Buffer interface.
// Used when no specialized bulk path applies.
func slowCopy[T any](src, dst Buffer[T], n int64) error {
	for i := int64(0); i < n; i++ {
		v, err := src.Get(i)
		if err != nil {
			return err
		}
		if err := dst.Set(v, i); err != nil {
			return err
		}
	}
	return nil
}
