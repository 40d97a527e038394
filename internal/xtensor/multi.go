package xtensor

import "github.com/pkg/errors"

// Cursor is the per-operand stepping surface a MultiIterator drives.
// *BroadcastIterator[T] satisfies it for every element type T, which is how
// operands of heterogeneous element types advance in lockstep.
type Cursor interface {
	// Increment advances the cursor by one logical step along dim.
	Increment(dim int)
	// Reset returns the cursor to the start of dim after a full pass.
	Reset(dim int)
}

// MultiIterator advances a set of cursors in lockstep over one logical
// shape, odometer style: each Next increments the innermost index, carrying
// to outer dimensions only on overflow, so the full index space is visited
// in row-major order.
//
// Every cursor receives the identical sequence of Increment/Reset calls on
// the identical dimensions; each cursor's own strides (including 0 for
// broadcast dimensions) translate those calls into buffer movement.
//
// The element at the initial position is exposed before the first Next.
// A traversal visits exactly shape.NumElements() positions.
type MultiIterator struct {
	cursors []Cursor
	shape   Shape
	index   Shape
	done    bool
}

// NewMultiIterator creates a lockstep iterator over the logical shape.
// The current index starts at all zeros.
func NewMultiIterator(shape Shape, cursors ...Cursor) *MultiIterator {
	return &MultiIterator{
		cursors: cursors,
		shape:   shape.Clone(),
		index:   make(Shape, len(shape)),
	}
}

// Next advances every cursor to the next logical position. It returns false
// once the carry ripples past the outermost dimension: the traversal is
// complete and no position is exposed. For a scalar (rank 0) shape the first
// Next is already terminal.
func (m *MultiIterator) Next() bool {
	if m.done {
		return false
	}
	for d := len(m.index) - 1; d >= 0; d-- {
		m.index[d]++
		if m.index[d] != m.shape[d] {
			for _, c := range m.cursors {
				c.Increment(d)
			}
			return true
		}
		m.index[d] = 0
		for _, c := range m.cursors {
			c.Reset(d)
		}
	}
	m.done = true
	return false
}

// Done reports whether the traversal has passed its last position.
func (m *MultiIterator) Done() bool {
	return m.done
}

// Len returns the number of cursors advancing in lockstep.
func (m *MultiIterator) Len() int {
	return len(m.cursors)
}

// Shape returns the logical shape being traversed.
func (m *MultiIterator) Shape() Shape {
	return m.shape
}

// Index returns the current logical index. The returned slice is the live
// traversal state: callers must not modify it.
func (m *MultiIterator) Index() Shape {
	return m.index
}

// At returns the i-th cursor. Panics if i is out of range.
func (m *MultiIterator) At(i int) Cursor {
	if i < 0 || i >= len(m.cursors) {
		panic(errors.Errorf("xtensor: MultiIterator.At(%d) with %d cursors", i, len(m.cursors)))
	}
	return m.cursors[i]
}

// Value returns the i-th operand's element at the current logical position.
// Panics if operand i does not carry elements of type T.
func Value[T any](m *MultiIterator, i int) T {
	it, ok := m.At(i).(*BroadcastIterator[T])
	if !ok {
		panic(errors.Errorf("xtensor: Value: cursor %d is %T, not *BroadcastIterator", i, m.At(i)))
	}
	return it.Value()
}
