package buffer

import (
	"fmt"
	"iter"
)

// String stores variable-length byte records with O(1) random access.
//
// Records are packed as an offset table followed by a payload segment:
//
//	offset[0..n-1]  n little-endian int64 values, each the byte position
//	                of a record's length field within the payload
//	payload         varint(len_0) bytes_0 varint(len_1) bytes_1 ...
//
// Lengths are varint-encoded, 7 bits per byte with the high bit as
// continuation flag, least-significant group first. Records are packed
// contiguously in ascending index order with no gaps.
//
// The buffer is filled in a single Init pass and read-only afterwards:
// replacing a record in place would require re-flowing every subsequent
// offset and payload byte.
type String struct {
	offsets Buffer[int64]
	payload Buffer[byte]

	// base is the payload position that offset values are relative to.
	// Zero for a whole buffer; sub-views created by Offset carry the
	// original offset of their first record here so that the stored
	// absolute positions keep resolving inside the shifted payload.
	base int64

	ready bool
}

// StringSize returns the exact number of bytes needed to store the given
// records in a String buffer: 8 bytes of offset table per record plus the
// varint-prefixed payload.
func StringSize(records iter.Seq[[]byte]) int64 {
	var size int64
	for rec := range records {
		size += 8 + varintLen(len(rec)) + int64(len(rec))
	}
	return size
}

// NewString allocates an uninitialized String buffer for count records
// occupying totalSize bytes, as reported by StringSize for the same
// records. The offset table and payload share one byte slab.
func NewString(count, totalSize int64) (*String, error) {
	if count < 0 || totalSize < 8*count {
		return nil, fmt.Errorf("%d bytes cannot hold the offset table for %d records: %w",
			totalSize, count, ErrShapeMismatch)
	}
	slab := New[byte](totalSize)
	head, err := slab.Narrow(8 * count)
	if err != nil {
		return nil, err
	}
	payload, err := slab.Offset(8 * count)
	if err != nil {
		return nil, err
	}
	return &String{offsets: Adapt(head, Int64LE()), payload: payload}, nil
}

// Init stores the given records, in order, into a freshly allocated
// buffer. It must be called exactly once: any later call fails with
// ErrReadOnly. The record count and total byte length must match the
// values the buffer was allocated for.
func (s *String) Init(records iter.Seq[[]byte]) error {
	if s.ready {
		return fmt.Errorf("string buffer already initialized: %w", ErrReadOnly)
	}
	var index, pos int64
	for rec := range records {
		if index >= s.offsets.Size() {
			return fmt.Errorf("more records than the %d allocated offsets: %w", s.offsets.Size(), ErrShapeMismatch)
		}
		if err := s.offsets.Set(pos, index); err != nil {
			return err
		}
		index++

		// Varint length prefix, then the raw bytes.
		v := len(rec)
		for v >= 0x80 {
			if err := s.payload.Set(byte(v&0x7F|0x80), pos); err != nil {
				return err
			}
			pos++
			v >>= 7
		}
		if err := s.payload.Set(byte(v), pos); err != nil {
			return err
		}
		pos++

		view, err := s.payload.Offset(pos)
		if err != nil {
			return err
		}
		if err := view.Write(rec); err != nil {
			return err
		}
		pos += int64(len(rec))
	}
	if index != s.offsets.Size() {
		return fmt.Errorf("got %d records for %d allocated offsets: %w", index, s.offsets.Size(), ErrShapeMismatch)
	}
	s.ready = true
	return nil
}

// Size returns the number of records.
func (s *String) Size() int64 {
	return s.offsets.Size()
}

// Get returns a copy of the record at the given index.
func (s *String) Get(index int64) ([]byte, error) {
	if err := checkIndex(index, s.Size()); err != nil {
		return nil, err
	}
	start, err := s.offsets.Get(index)
	if err != nil {
		return nil, err
	}
	pos := start - s.base

	// Decode the varint length: at most 5 groups for a 32-bit value.
	var length, shift uint
	for groups := 0; ; groups++ {
		if groups == 5 {
			return nil, fmt.Errorf("record %d has a length varint wider than 32 bits", index)
		}
		b, err := s.payload.Get(pos)
		if err != nil {
			return nil, err
		}
		pos++
		length |= uint(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}

	bytes := make([]byte, length)
	view, err := s.payload.Offset(pos)
	if err != nil {
		return nil, err
	}
	if err := view.Read(bytes); err != nil {
		return nil, err
	}
	return bytes, nil
}

// Set always fails: records cannot be rewritten in place.
func (s *String) Set(value []byte, index int64) error {
	return fmt.Errorf("string buffer records cannot be replaced: %w", ErrReadOnly)
}

// Offset returns a view starting at the given record, sharing storage.
func (s *String) Offset(index int64) (Buffer[[]byte], error) {
	if err := checkOffset(index, s.Size()); err != nil {
		return nil, err
	}
	offsets, err := s.offsets.Offset(index)
	if err != nil {
		return nil, err
	}
	if index == s.Size() {
		payload, err := s.payload.Offset(s.payload.Size())
		if err != nil {
			return nil, err
		}
		return &String{offsets: offsets, payload: payload, base: s.base, ready: s.ready}, nil
	}
	start, err := s.offsets.Get(index)
	if err != nil {
		return nil, err
	}
	payload, err := s.payload.Offset(start - s.base)
	if err != nil {
		return nil, err
	}
	return &String{offsets: offsets, payload: payload, base: start, ready: s.ready}, nil
}

// Narrow returns a view of the first size records, sharing storage.
func (s *String) Narrow(size int64) (Buffer[[]byte], error) {
	if err := checkNarrow(size, s.Size()); err != nil {
		return nil, err
	}
	offsets, err := s.offsets.Narrow(size)
	if err != nil {
		return nil, err
	}
	payload := s.payload
	if size < s.Size() {
		end, err := s.offsets.Get(size)
		if err != nil {
			return nil, err
		}
		payload, err = s.payload.Narrow(end - s.base)
		if err != nil {
			return nil, err
		}
	}
	return &String{offsets: offsets, payload: payload, base: s.base, ready: s.ready}, nil
}

// CopyTo copies records into dst. When dst is an uninitialized String
// buffer of the same declared size, the offset table and payload are
// copied in two bulk moves; otherwise records are copied one by one.
func (s *String) CopyTo(dst Buffer[[]byte], size int64) error {
	if err := checkCopy(size, s.Size(), dst.Size()); err != nil {
		return err
	}
	if ds, ok := dst.(*String); ok && size == s.Size() && ds.Size() == size {
		if ds.ready {
			return fmt.Errorf("cannot copy into an initialized string buffer: %w", ErrReadOnly)
		}
		if ds.payload.Size() != s.payload.Size() {
			return fmt.Errorf("cannot copy string data into a buffer of a different size: %w", ErrShapeMismatch)
		}
		if err := s.offsets.CopyTo(ds.offsets, size); err != nil {
			return err
		}
		if err := s.payload.CopyTo(ds.payload, s.payload.Size()); err != nil {
			return err
		}
		ds.base = s.base
		ds.ready = true
		return nil
	}
	if dst.IsReadOnly() {
		return fmt.Errorf("cannot copy into read-only buffer: %w", ErrReadOnly)
	}
	return slowCopy[[]byte](s, dst, size)
}

// Read copies len(dst) record slices from the start of the buffer.
func (s *String) Read(dst [][]byte) error {
	if int64(len(dst)) > s.Size() {
		return fmt.Errorf("reading %d records from buffer of size %d: %w", len(dst), s.Size(), ErrBufferUnderrun)
	}
	for i := range dst {
		rec, err := s.Get(int64(i))
		if err != nil {
			return err
		}
		dst[i] = rec
	}
	return nil
}

// Write always fails: records cannot be rewritten in place.
func (s *String) Write(src [][]byte) error {
	return fmt.Errorf("string buffer records cannot be replaced: %w", ErrReadOnly)
}

// IsReadOnly reports whether mutations are rejected. Always true: the only
// way to fill a String buffer is the one-shot Init pass.
func (s *String) IsReadOnly() bool {
	return true
}

// varintLen returns the number of bytes the varint encoding of n occupies.
func varintLen(n int) int64 {
	length := int64(1)
	for n >= 0x80 {
		n >>= 7
		length++
	}
	return length
}
