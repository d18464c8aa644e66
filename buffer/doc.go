// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package buffer provides flat, fixed-layout element storage for ndkit.
//
// # Overview
//
// A Buffer is a bounded random-access container of elements of one type.
// The package provides:
//   - SliceBuffer[T]: storage backed by a contiguous Go slice
//   - Layout[S, T] and Adapt: zero-copy reinterpretation of a physical
//     buffer as another logical element type
//   - String: a write-once buffer of variable-length byte records with
//     O(1) random access
//
// # Views
//
// Offset and Narrow return views sharing storage with their parent, so a
// buffer can be carved into windows without copying:
//
//	b := buffer.Of[int32](0, 1, 2, 3, 4)
//	w, _ := b.Offset(2) // elements 2, 3, 4
//	w, _ = w.Narrow(2)  // elements 2, 3
//
// Concurrent mutation of overlapping views is a data race; callers
// serialize access themselves.
//
// # Layouts
//
// A Layout decodes logical values from physical elements, optionally
// spanning several physical elements per value (Scale > 1):
//
//	phys := buffer.New[uint16](1024)
//	f32 := buffer.Adapt[uint16, float32](phys, buffer.Float16())
package buffer
