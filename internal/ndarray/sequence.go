package ndarray

import (
	"fmt"
	"iter"
	"slices"
)

// Sequence lazily decomposes an array into the sub-arrays obtained by
// fixing every coordinate prefix of a chosen length, in row-major order.
// A sequence holds no iteration state on the array: each call to All,
// Indexed or Values starts an independent traversal.
type Sequence[T any] struct {
	src   *Array[T]
	depth int
}

// Elements returns the sequence of sub-arrays obtained by iterating the
// first n dimensions; each sub-array has rank Rank()-n. n must be between
// 0 and the rank; rank-0 arrays cannot be decomposed at all.
func (a *Array[T]) Elements(n int) (*Sequence[T], error) {
	if a.Rank() == 0 {
		return nil, fmt.Errorf("a scalar has no dimensions to iterate: %w", ErrRankMismatch)
	}
	if n < 0 || n > a.Rank() {
		return nil, fmt.Errorf("cannot iterate %d dimensions of an array of rank %d: %w",
			n, a.Rank(), ErrRankMismatch)
	}
	return &Sequence[T]{src: a, depth: n}, nil
}

// Scalars returns the sequence of rank-0 views over every element, in
// row-major order. It is shorthand for Elements(Rank()).
func (a *Array[T]) Scalars() (*Sequence[T], error) {
	return a.Elements(a.Rank())
}

// Count returns the number of sub-arrays the sequence yields: the product
// of the iterated dimension sizes.
func (s *Sequence[T]) Count() int64 {
	n := int64(1)
	for _, d := range s.src.dims[:s.depth] {
		n *= d.size
	}
	return n
}

// All yields each sub-array in row-major order of its coordinate prefix.
// The yielded views share the source array's storage.
func (s *Sequence[T]) All() iter.Seq[*Array[T]] {
	return func(yield func(*Array[T]) bool) {
		if s.Count() == 0 {
			return
		}
		coords := make([]int64, s.depth)
		for {
			if !yield(s.src.child(coords)) {
				return
			}
			if !nextCoords(coords, s.src.dims[:s.depth]) {
				return
			}
		}
	}
}

// Indexed yields each (coordinate prefix, sub-array) pair in row-major
// order. The coordinate slice is freshly allocated for every step and safe
// to retain.
func (s *Sequence[T]) Indexed() iter.Seq2[[]int64, *Array[T]] {
	return func(yield func([]int64, *Array[T]) bool) {
		if s.Count() == 0 {
			return
		}
		coords := make([]int64, s.depth)
		for {
			if !yield(slices.Clone(coords), s.src.child(coords)) {
				return
			}
			if !nextCoords(coords, s.src.dims[:s.depth]) {
				return
			}
		}
	}
}

// Values yields every element of the array in row-major order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if a.Size() == 0 {
			return
		}
		coords := make([]int64, a.Rank())
		for {
			v, err := a.buf.Get(a.position(coords))
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
			if !nextCoords(coords, a.dims) {
				return
			}
		}
	}
}
