package xtensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// denseStub is a minimal expression participant: it embeds ExpressionTag
// and returns itself from Self.
type denseStub struct {
	ExpressionTag
	shape Shape
}

func (d *denseStub) Self() *denseStub { return d }

// Compile-time check that denseStub participates in the expression system.
var _ Expression[*denseStub] = (*denseStub)(nil)

// selfOf recovers the concrete type from code written against the
// constraint, with static dispatch.
func selfOf[E Expression[E]](e E) E {
	return e.Self()
}

func TestIsExpression(t *testing.T) {
	d := &denseStub{shape: Shape{2, 3}}

	assert.True(t, IsExpression(d))
	assert.False(t, IsExpression(3.14), "scalar literals are not expressions")
	assert.False(t, IsExpression("dense"), "unrelated types are not expressions")
	assert.False(t, IsExpression(nil))
}

func TestExpressionSelf(t *testing.T) {
	d := &denseStub{shape: Shape{4}}

	got := selfOf(d)
	assert.Same(t, d, got)
	assert.True(t, got.shape.Equal(Shape{4}), "Self preserves the concrete type's state")
}
