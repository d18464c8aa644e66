package buffer

import "fmt"

// adapter reinterprets a physical buffer of S elements as a logical buffer
// of T values through a Layout, without copying. Offset and Narrow scale
// the requested index or size by the layout's scale before delegating, then
// re-wrap the resulting physical view with the same layout.
type adapter[S, T any] struct {
	phys   Buffer[S]
	layout Layout[S, T]
}

// Adapt returns a logical view of phys decoded through layout. The view
// shares storage with phys; its size is phys.Size() divided by the layout
// scale, discarding any trailing incomplete group.
func Adapt[S, T any](phys Buffer[S], layout Layout[S, T]) Buffer[T] {
	return &adapter[S, T]{phys: phys, layout: layout}
}

func (a *adapter[S, T]) Size() int64 {
	return a.phys.Size() / a.layout.Scale()
}

func (a *adapter[S, T]) Get(index int64) (T, error) {
	if err := checkIndex(index, a.Size()); err != nil {
		var zero T
		return zero, err
	}
	return a.layout.ReadValue(a.phys, index*a.layout.Scale())
}

func (a *adapter[S, T]) Set(value T, index int64) error {
	if err := checkIndex(index, a.Size()); err != nil {
		return err
	}
	if a.phys.IsReadOnly() {
		return fmt.Errorf("cannot set element of read-only buffer: %w", ErrReadOnly)
	}
	return a.layout.WriteValue(a.phys, value, index*a.layout.Scale())
}

func (a *adapter[S, T]) Offset(index int64) (Buffer[T], error) {
	if err := checkOffset(index, a.Size()); err != nil {
		return nil, err
	}
	view, err := a.phys.Offset(index * a.layout.Scale())
	if err != nil {
		return nil, err
	}
	return &adapter[S, T]{phys: view, layout: a.layout}, nil
}

func (a *adapter[S, T]) Narrow(size int64) (Buffer[T], error) {
	if err := checkNarrow(size, a.Size()); err != nil {
		return nil, err
	}
	view, err := a.phys.Narrow(size * a.layout.Scale())
	if err != nil {
		return nil, err
	}
	return &adapter[S, T]{phys: view, layout: a.layout}, nil
}

func (a *adapter[S, T]) CopyTo(dst Buffer[T], size int64) error {
	if err := checkCopy(size, a.Size(), dst.Size()); err != nil {
		return err
	}
	if dst.IsReadOnly() {
		return fmt.Errorf("cannot copy into read-only buffer: %w", ErrReadOnly)
	}
	return slowCopy[T](a, dst, size)
}

func (a *adapter[S, T]) Read(dst []T) error {
	if int64(len(dst)) > a.Size() {
		return fmt.Errorf("reading %d elements from buffer of size %d: %w", len(dst), a.Size(), ErrBufferUnderrun)
	}
	for i := range dst {
		v, err := a.layout.ReadValue(a.phys, int64(i)*a.layout.Scale())
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

func (a *adapter[S, T]) Write(src []T) error {
	if int64(len(src)) > a.Size() {
		return fmt.Errorf("writing %d elements to buffer of size %d: %w", len(src), a.Size(), ErrBufferOverrun)
	}
	if a.phys.IsReadOnly() {
		return fmt.Errorf("cannot write to read-only buffer: %w", ErrReadOnly)
	}
	for i, v := range src {
		if err := a.layout.WriteValue(a.phys, v, int64(i)*a.layout.Scale()); err != nil {
			return err
		}
	}
	return nil
}

func (a *adapter[S, T]) IsReadOnly() bool {
	return a.phys.IsReadOnly()
}
