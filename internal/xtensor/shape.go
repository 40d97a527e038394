package xtensor

import "fmt"

// Shape represents the extents of a logical array, outermost dimension first.
// A Shape of length 0 denotes a scalar.
type Shape []int

// Strides holds one step, in buffer elements, per dimension of an associated
// Shape. A stride of 0 marks a broadcast dimension: the underlying buffer
// does not vary along it.
type Strides []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() Strides {
	strides := make(Strides, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Equal checks if two stride sequences are element-wise identical.
func (s Strides) Equal(other Strides) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	clone := make(Strides, len(s))
	copy(clone, s)
	return clone
}

// BroadcastDim returns the broadcast extent of a single dimension across
// operands: the maximum of the given extents, or 0 when none are given.
func BroadcastDim(extents ...int) int {
	dim := 0
	for _, e := range extents {
		if e > dim {
			dim = e
		}
	}
	return dim
}

// BroadcastShape folds one operand's shape into a running accumulator,
// implementing NumPy-style broadcasting rules.
//
// Rules:
// 1. Compare shapes element-wise from right to left
// 2. Dimensions are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing dimensions are treated as 1
//
// The accumulator is widened in place: extent-1 dimensions absorb the
// operand's extent, and the accumulator grows on the left when the operand
// has higher rank. On an incompatible pair the accumulator is left untouched
// and an *IncompatibleShapeError is returned.
//
// The returned flag reports whether the fold was trivial: the operand's rank
// equaled the accumulator's on entry and every aligned extent was already
// equal, so no widening or rank padding occurred. Callers use it to skip
// stride remapping for operands that already match.
func BroadcastShape(input Shape, output *Shape) (bool, error) {
	out := *output
	offset := len(out) - len(input)

	// Validate before mutating anything.
	for i := len(input) - 1; i >= 0; i-- {
		j := offset + i
		if j < 0 {
			break // Rank promotion: leading operand dims face implicit 1s.
		}
		if out[j] != 1 && input[i] != 1 && input[i] != out[j] {
			return false, &IncompatibleShapeError{Input: input.Clone(), Output: out.Clone(), Dim: j}
		}
	}

	trivial := len(input) == len(out)
	if len(input) > len(out) {
		grown := make(Shape, len(input))
		pad := len(input) - len(out)
		for i := 0; i < pad; i++ {
			grown[i] = 1
		}
		copy(grown[pad:], out)
		out = grown
		offset = 0
	}

	for i := len(input) - 1; i >= 0; i-- {
		j := offset + i
		// Compare before widening: a fold that changes the accumulator, or
		// that needs a 0-stride remap for this operand, is never trivial.
		trivial = trivial && out[j] == input[i]
		if out[j] == 1 {
			out[j] = input[i]
		}
	}

	*output = out
	return trivial, nil
}

// BroadcastShapes computes the broadcast result of a set of shapes by
// folding them, in order, into an accumulator seeded from the first shape.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), nil
//	(5) + (3, 5) → (3, 5), nil
//	(3, 4) + (3, 5) → nil, Error
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	if len(shapes) == 0 {
		return Shape{}, nil
	}
	out := shapes[0].Clone()
	for _, s := range shapes[1:] {
		if _, err := BroadcastShape(s, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CheckTrivialBroadcast reports whether two operands can share one traversal
// stride pattern without remapping: true iff their strides are identical.
func CheckTrivialBroadcast(a, b Strides) bool {
	return a.Equal(b)
}

// BroadcastStrides re-expresses an operand's strides against a logical
// (post-broadcast) shape: missing leading dimensions and dimensions widened
// from extent 1 get stride 0, so the operand's buffer does not vary along
// them. Returns an *IncompatibleShapeError if the operand does not broadcast
// to the logical shape.
//
// The result is suitable for NewBroadcastIterator over the logical shape.
func BroadcastStrides(shape Shape, strides Strides, logical Shape) (Strides, error) {
	mustMatch(len(strides), len(shape), "BroadcastStrides")

	if len(shape) > len(logical) {
		return nil, &IncompatibleShapeError{Input: shape.Clone(), Output: logical.Clone(), Dim: 0}
	}

	result := make(Strides, len(logical))
	offset := len(logical) - len(shape)
	for i, dim := range shape {
		j := offset + i
		switch {
		case dim == logical[j]:
			result[j] = strides[i]
		case dim == 1:
			result[j] = 0
		default:
			return nil, &IncompatibleShapeError{Input: shape.Clone(), Output: logical.Clone(), Dim: j}
		}
	}
	return result, nil
}
