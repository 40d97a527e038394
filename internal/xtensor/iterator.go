package xtensor

// BroadcastIterator walks one operand's flat buffer over a logical
// (post-broadcast) shape. The strides must already be expressed against the
// logical shape: 0 in every dimension the operand was widened along, so
// advancing there revisits the same element instead of copying data.
//
// Backstrides are derived once at construction: stride*(extent-1) per
// non-broadcast dimension, 0 otherwise. Reset subtracts the backstride to
// return to the start of a dimension in a single step.
//
// The iterator performs no bounds checking; a MultiIterator driving it keeps
// the position inside the logical shape for the whole traversal.
type BroadcastIterator[T any] struct {
	data        []T
	pos         int
	strides     Strides
	backstrides Strides
}

// NewBroadcastIterator creates an iterator over data, starting at offset,
// with strides already remapped to the logical shape (see BroadcastStrides).
// Panics if strides and shape disagree on rank.
func NewBroadcastIterator[T any](data []T, offset int, strides Strides, shape Shape) *BroadcastIterator[T] {
	mustMatch(len(strides), len(shape), "NewBroadcastIterator")

	backstrides := make(Strides, len(shape))
	for i, stride := range strides {
		if stride != 0 {
			backstrides[i] = stride * (shape[i] - 1)
		}
	}

	return &BroadcastIterator[T]{
		data:        data,
		pos:         offset,
		strides:     strides.Clone(),
		backstrides: backstrides,
	}
}

// Value returns the element at the current position.
func (it *BroadcastIterator[T]) Value() T {
	return it.data[it.pos]
}

// Set overwrites the element at the current position.
// Used by output-side iterators during element-wise evaluation.
func (it *BroadcastIterator[T]) Set(v T) {
	it.data[it.pos] = v
}

// Pos returns the current flat position in the underlying buffer.
func (it *BroadcastIterator[T]) Pos() int {
	return it.pos
}

// Increment advances the position by one logical step along dim.
// A no-op on the buffer when dim is a broadcast (stride 0) dimension.
func (it *BroadcastIterator[T]) Increment(dim int) {
	it.pos += it.strides[dim]
}

// Reset returns the position to where it stood before dim's traversal began.
func (it *BroadcastIterator[T]) Reset(dim int) {
	it.pos -= it.backstrides[dim]
}
