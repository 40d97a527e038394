// Copyright 2025 The xtensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package xtensor

import (
	"github.com/StavrosMast/xtensor/internal/xtensor"
)

// Shape represents the extents of a logical array, outermost dimension
// first. A Shape of length 0 denotes a scalar.
type Shape = xtensor.Shape

// Strides holds one step, in buffer elements, per dimension of an
// associated Shape; 0 marks a broadcast dimension.
type Strides = xtensor.Strides

// IncompatibleShapeError reports two shapes that cannot be aligned under
// broadcasting rules. Retrieve it with errors.As to inspect the offending
// dimension.
type IncompatibleShapeError = xtensor.IncompatibleShapeError

// BroadcastIterator walks one operand's flat buffer over a logical shape
// using per-dimension strides and precomputed backstrides.
type BroadcastIterator[T any] = xtensor.BroadcastIterator[T]

// Cursor is the per-operand stepping surface a MultiIterator drives.
type Cursor = xtensor.Cursor

// MultiIterator advances a set of cursors in lockstep over one logical
// shape, visiting its full index space in row-major order.
type MultiIterator = xtensor.MultiIterator

// Expression is the self-referential constraint satisfied by every concrete
// type participating in the expression system.
type Expression[D any] = xtensor.Expression[D]

// ExpressionTag is the zero-size capability tag embedded by concrete
// expression types.
type ExpressionTag = xtensor.ExpressionTag

// BroadcastDim returns the broadcast extent of a single dimension across
// operands: the maximum of the given extents, or 0 when none are given.
func BroadcastDim(extents ...int) int {
	return xtensor.BroadcastDim(extents...)
}

// BroadcastShape folds one operand's shape into a running accumulator,
// widening it in place under broadcasting rules. It reports whether the
// fold was trivial (the operand already matched the accumulator exactly)
// and fails with *IncompatibleShapeError on a non-1 extent mismatch.
func BroadcastShape(input Shape, output *Shape) (bool, error) {
	return xtensor.BroadcastShape(input, output)
}

// BroadcastShapes computes the broadcast result of a set of shapes.
//
// Example:
//
//	logical, err := xtensor.BroadcastShapes(Shape{3, 1}, Shape{3, 5})
//	// logical = [3 5]
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return xtensor.BroadcastShapes(shapes...)
}

// CheckTrivialBroadcast reports whether two operands can share one
// traversal stride pattern: true iff their strides are identical.
func CheckTrivialBroadcast(a, b Strides) bool {
	return xtensor.CheckTrivialBroadcast(a, b)
}

// BroadcastStrides re-expresses an operand's strides against a logical
// shape, inserting 0 for missing leading axes and axes widened from
// extent 1.
func BroadcastStrides(shape Shape, strides Strides, logical Shape) (Strides, error) {
	return xtensor.BroadcastStrides(shape, strides, logical)
}

// NewBroadcastIterator creates an iterator over data, starting at offset,
// with strides already remapped to the logical shape. Panics if strides and
// shape disagree on rank.
func NewBroadcastIterator[T any](data []T, offset int, strides Strides, shape Shape) *BroadcastIterator[T] {
	return xtensor.NewBroadcastIterator(data, offset, strides, shape)
}

// NewMultiIterator creates a lockstep iterator over the logical shape with
// its current index at all zeros.
func NewMultiIterator(shape Shape, cursors ...Cursor) *MultiIterator {
	return xtensor.NewMultiIterator(shape, cursors...)
}

// Value returns the i-th operand's element at the current logical position.
// Panics if operand i does not carry elements of type T.
func Value[T any](m *MultiIterator, i int) T {
	return xtensor.Value[T](m, i)
}

// IsExpression reports whether v participates in the expression system,
// distinguishing array expressions from scalar literals.
func IsExpression(v any) bool {
	return xtensor.IsExpression(v)
}
