// Copyright 2025 The xtensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package xtensor provides the broadcasting traversal core of an
// array-expression library.
//
// # Overview
//
// Given the shapes of two or more operands, this package computes how they
// align under NumPy-style broadcasting rules and drives element-by-element
// iteration over the resulting logical shape without materializing a
// broadcasted copy of any operand. Array containers, operator catalogs and
// I/O are clients of this machinery, not part of it.
//
// The package provides:
//   - Shape broadcasting (BroadcastShape, BroadcastShapes, BroadcastDim)
//   - Stride remapping against a logical shape (BroadcastStrides)
//   - Per-operand traversal cursors (BroadcastIterator[T])
//   - Lockstep multi-operand traversal (MultiIterator)
//   - The expression capability tag (ExpressionTag, IsExpression)
//
// # Broadcasting
//
// Shapes are aligned from the trailing (innermost) dimension backward;
// extent-1 dimensions stand in for any extent, and operands of lower rank
// gain implicit leading 1s:
//
//	logical, err := xtensor.BroadcastShapes(
//	    xtensor.Shape{2, 3}, // a real 2x3 buffer
//	    xtensor.Shape{3},    // broadcast up each row
//	)
//	// logical = [2 3]
//
// Incompatible extents (neither equal nor 1) fail with
// *IncompatibleShapeError; there is no silent truncation.
//
// # Traversal
//
// One BroadcastIterator per operand, built with strides already remapped to
// the logical shape, advances under a MultiIterator that increments the
// innermost index each step and carries outward on overflow, odometer style.
// A 0-stride dimension revisits the same element, which is the entire
// mechanism by which broadcasting avoids copying:
//
//	as, _ := xtensor.BroadcastStrides(aShape, aShape.ComputeStrides(), logical)
//	bs, _ := xtensor.BroadcastStrides(bShape, bShape.ComputeStrides(), logical)
//	a := xtensor.NewBroadcastIterator(aData, 0, as, logical)
//	b := xtensor.NewBroadcastIterator(bData, 0, bs, logical)
//
//	for m := xtensor.NewMultiIterator(logical, a, b); !m.Done(); m.Next() {
//	    sum := a.Value() + b.Value()
//	    // ...
//	}
//
// Advancing costs O(1) per element regardless of rank: each step is a single
// stride addition per operand, and each carry a single backstride
// subtraction.
//
// # Concurrency
//
// All state is exclusively owned: a traversal is single-threaded and purely
// CPU-bound. Concurrent read-only traversals over one buffer are safe;
// coordinating concurrent mutation of a buffer is the caller's concern.
package xtensor
