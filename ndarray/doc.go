// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides n-dimensional array views over flat buffers.
//
// # Overview
//
// An Array combines a Shape with a coordinate-to-offset mapping into a
// flat buffer. Slicing, partial indexing and element sequences all return
// views that share the backing storage; data is only duplicated by an
// explicit CopyTo.
//
// # Basic Usage
//
//	a := ndarray.New[float32](shape) // shape, _ := ndarray.MakeShape(3, 5)
//	_ = a.SetValue(1.5, 2, 4)
//	v, _ := a.GetValue(2, 4)
//
//	row, _ := a.Get(1)                             // rank-1 view of row 1
//	odd, _ := a.Slice(ndarray.All(), ndarray.Odd()) // odd columns
//
// # Slicing
//
// Slice takes one index specification per leading dimension: All, At,
// Range, From, To, Seq, Even, Odd and Flip. At collapses its dimension;
// the others restrict, reorder or subsample it. Unspecified trailing
// dimensions are kept whole.
//
// # Iteration
//
// Elements(n) decomposes an array into its sub-arrays of rank Rank()-n,
// in row-major order; Scalars() yields one rank-0 view per element:
//
//	seq, _ := a.Elements(1)
//	for coords, row := range seq.Indexed() {
//	    ...
//	}
//
// # String tensors
//
// EncodeStrings packs an array of values into a write-once buffer.String
// of variable-length byte records, which can in turn be viewed as an
// Array of records with Wrap.
package ndarray
