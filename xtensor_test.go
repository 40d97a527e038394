// Copyright 2025 The xtensor Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package xtensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StavrosMast/xtensor"
)

// TestBroadcastShapesAPI verifies the public shape-broadcasting surface.
func TestBroadcastShapesAPI(t *testing.T) {
	logical, err := xtensor.BroadcastShapes(
		xtensor.Shape{8, 1, 6, 1},
		xtensor.Shape{7, 1, 5},
	)
	require.NoError(t, err)
	assert.True(t, logical.Equal(xtensor.Shape{8, 7, 6, 5}))

	_, err = xtensor.BroadcastShapes(xtensor.Shape{4}, xtensor.Shape{3})
	require.Error(t, err)

	var shapeErr *xtensor.IncompatibleShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 0, shapeErr.Dim)
}

// TestBroadcastAdd walks the full traversal protocol the way an operator
// layer would: broadcast the shapes, remap each operand's strides, then
// drive all cursors plus an output cursor through a MultiIterator.
func TestBroadcastAdd(t *testing.T) {
	aShape := xtensor.Shape{2, 3}
	bShape := xtensor.Shape{3}
	aData := []float32{0, 1, 2, 3, 4, 5}
	bData := []float32{10, 20, 30}

	logical, err := xtensor.BroadcastShapes(aShape, bShape)
	require.NoError(t, err)
	require.True(t, logical.Equal(xtensor.Shape{2, 3}))

	aStrides, err := xtensor.BroadcastStrides(aShape, aShape.ComputeStrides(), logical)
	require.NoError(t, err)
	bStrides, err := xtensor.BroadcastStrides(bShape, bShape.ComputeStrides(), logical)
	require.NoError(t, err)

	assert.False(t, xtensor.CheckTrivialBroadcast(aStrides, bStrides))

	out := make([]float32, logical.NumElements())
	a := xtensor.NewBroadcastIterator(aData, 0, aStrides, logical)
	b := xtensor.NewBroadcastIterator(bData, 0, bStrides, logical)
	o := xtensor.NewBroadcastIterator(out, 0, logical.ComputeStrides(), logical)

	m := xtensor.NewMultiIterator(logical, a, b, o)
	for {
		o.Set(xtensor.Value[float32](m, 0) + xtensor.Value[float32](m, 1))
		if !m.Next() {
			break
		}
	}

	assert.Equal(t, []float32{10, 21, 32, 13, 24, 35}, out)
}

// vec is a public-API expression participant used by the predicate test.
type vec struct {
	xtensor.ExpressionTag
	data []float64
}

func (v *vec) Self() *vec { return v }

var _ xtensor.Expression[*vec] = (*vec)(nil)

func TestIsExpressionAPI(t *testing.T) {
	assert.True(t, xtensor.IsExpression(&vec{data: []float64{1, 2}}))
	assert.False(t, xtensor.IsExpression(1.5))
}
