package xtensor

// Expression is the self-referential constraint satisfied by every concrete
// type participating in the expression system. A type D participates by
// implementing Expression[D]: embedding ExpressionTag and returning itself
// from Self. Generic code written against E Expression[E] recovers the
// concrete type through Self with static dispatch and no runtime cost.
type Expression[D any] interface {
	// Self returns the concrete expression value.
	Self() D
	isExpression()
}

// ExpressionTag is the zero-size capability tag embedded by concrete
// expression types. Embedding it is what makes IsExpression report true.
type ExpressionTag struct{}

func (ExpressionTag) isExpression() {}

// tagged matches any value carrying ExpressionTag.
type tagged interface {
	isExpression()
}

// IsExpression reports whether v participates in the expression system.
// The operator layer uses it to route a value as an array expression rather
// than a scalar literal.
func IsExpression(v any) bool {
	_, ok := v.(tagged)
	return ok
}
