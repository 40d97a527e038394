package xtensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// IncompatibleShapeError reports that an operand's shape cannot be aligned
// with the accumulator (logical) shape under broadcasting rules: after
// trailing alignment, a pair of extents differed with neither being 1.
//
// Retrieve it with errors.As to inspect the offending dimension.
type IncompatibleShapeError struct {
	Input  Shape // operand shape being folded in
	Output Shape // accumulator shape at the time of the fold
	Dim    int   // offending dimension, indexed into Output
}

// Error implements the error interface.
func (e *IncompatibleShapeError) Error() string {
	return fmt.Sprintf("shapes not compatible for broadcasting: %v vs %v (dimension %d)",
		e.Input, e.Output, e.Dim)
}

// mustMatch enforces the construction contract that a strides sequence has
// one entry per dimension of its shape. A mismatch is a bug in the caller,
// not bad external input, so it panics rather than returning an error.
func mustMatch(got, want int, op string) {
	if got != want {
		panic(errors.Errorf("xtensor: %s: %d strides for a rank-%d shape", op, got, want))
	}
}
