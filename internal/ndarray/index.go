package ndarray

import "fmt"

// indexKind discriminates the closed set of index specification variants.
type indexKind uint8

const (
	allIndex indexKind = iota
	atIndex
	rangeIndex
	seqIndex
	evenIndex
	oddIndex
	flipIndex
)

// Index describes how one dimension is restricted, reordered or subsampled
// by a slice operation. Values are immutable and freely reusable.
type Index struct {
	kind indexKind
	at   int64
	// Range bounds; unbounded ends track the source dimension size.
	begin, end       int64
	hasBegin, hasEnd bool
	seq              []int64
}

// All keeps a dimension as is.
func All() Index {
	return Index{kind: allIndex}
}

// At selects the element at the given position and collapses the
// dimension: it is removed from the resulting shape.
func At(pos int64) Index {
	return Index{kind: atIndex, at: pos}
}

// AtValueOf selects the position held by the given rank-0 integer array
// and collapses the dimension. The position is read once, when this
// function is called; later mutations of src do not affect the index.
func AtValueOf[T ~int32 | ~int64](src *Array[T]) (Index, error) {
	v, err := src.GetValue()
	if err != nil {
		return Index{}, err
	}
	return At(int64(v)), nil
}

// Range keeps the half-open interval [begin, end) of a dimension.
func Range(begin, end int64) Index {
	return Index{kind: rangeIndex, begin: begin, end: end, hasBegin: true, hasEnd: true}
}

// From keeps all positions starting at begin.
func From(begin int64) Index {
	return Index{kind: rangeIndex, begin: begin, hasBegin: true}
}

// To keeps all positions before end.
func To(end int64) Index {
	return Index{kind: rangeIndex, end: end, hasEnd: true}
}

// Seq keeps exactly the given positions, in order. Positions may repeat or
// be non-monotonic, permuting or duplicating the dimension.
func Seq(positions ...int64) Index {
	owned := make([]int64, len(positions))
	copy(owned, positions)
	return Index{kind: seqIndex, seq: owned}
}

// Even keeps the even positions of a dimension.
func Even() Index {
	return Index{kind: evenIndex}
}

// Odd keeps the odd positions of a dimension.
func Odd() Index {
	return Index{kind: oddIndex}
}

// Flip reverses a dimension.
func Flip() Index {
	return Index{kind: flipIndex}
}

// resolve applies the specification to a dimension of the given size. It
// returns the target dimension size and a local-to-source coordinate
// mapping; collapsed is true for At variants, whose dimension disappears
// from the result (the mapping is then constant).
func (x Index) resolve(dimSize int64) (newSize int64, lookup func(int64) int64, collapsed bool, err error) {
	switch x.kind {
	case allIndex:
		return dimSize, nil, false, nil

	case atIndex:
		if x.at < 0 || x.at >= dimSize {
			return 0, nil, false, fmt.Errorf("position %d outside dimension of size %d: %w",
				x.at, dimSize, ErrIndexOutOfRange)
		}
		at := x.at
		return 0, func(int64) int64 { return at }, true, nil

	case rangeIndex:
		begin, end := int64(0), dimSize
		if x.hasBegin {
			begin = x.begin
		}
		if x.hasEnd {
			end = x.end
		}
		if begin < 0 || begin > end || end > dimSize {
			return 0, nil, false, fmt.Errorf("range [%d, %d) invalid for dimension of size %d: %w",
				begin, end, dimSize, ErrIndexOutOfRange)
		}
		return end - begin, func(i int64) int64 { return begin + i }, false, nil

	case seqIndex:
		for _, p := range x.seq {
			if p < 0 || p >= dimSize {
				return 0, nil, false, fmt.Errorf("position %d outside dimension of size %d: %w",
					p, dimSize, ErrIndexOutOfRange)
			}
		}
		seq := x.seq
		return int64(len(seq)), func(i int64) int64 { return seq[i] }, false, nil

	case evenIndex:
		return (dimSize + 1) / 2, func(i int64) int64 { return 2 * i }, false, nil

	case oddIndex:
		return dimSize / 2, func(i int64) int64 { return 2*i + 1 }, false, nil

	case flipIndex:
		return dimSize, func(i int64) int64 { return dimSize - 1 - i }, false, nil

	default:
		panic(fmt.Sprintf("unknown index kind %d", x.kind))
	}
}
