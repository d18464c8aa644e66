package ndarray

import (
	"iter"

	"github.com/born-ml/ndkit/internal/buffer"
)

// BytesOf yields the array's elements converted to raw bytes with toBytes,
// in row-major order. The conversion policy (text encoding and the like)
// is entirely the caller's.
func BytesOf[T any](a *Array[T], toBytes func(T) []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for v := range a.Values() {
			if !yield(toBytes(v)) {
				return
			}
		}
	}
}

// EncodeStrings packs the array's elements into a freshly allocated string
// buffer: it sizes the buffer with buffer.StringSize, allocates it, and
// runs the single Init pass. The result holds one record per element, in
// row-major order, and is read-only. Viewing it through the array's shape
// is a plain Wrap:
//
//	sb, err := ndarray.EncodeStrings(names, func(s string) []byte { return []byte(s) })
//	records, err := ndarray.Wrap[[]byte](sb, names.Shape())
func EncodeStrings[T any](a *Array[T], toBytes func(T) []byte) (*buffer.String, error) {
	records := BytesOf(a, toBytes)
	sb, err := buffer.NewString(a.Size(), buffer.StringSize(records))
	if err != nil {
		return nil, err
	}
	if err := sb.Init(records); err != nil {
		return nil, err
	}
	return sb, nil
}
