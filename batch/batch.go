// Package batch implements the batch-exchange container of spec.md §4.7:
// an ordered sequence of (lhs, rhs, op2) ciphertext triples with a stable
// binary wire encoding, generic over any scheme's ciphertext and binary-
// operation alphabet types.
package batch

// Item is one (lhs, rhs, op2) triple (spec.md §4.7).
type Item[CT any, Op2 ~uint8] struct {
	Lhs, Rhs CT
	Op       Op2
}

// Container holds an ordered sequence of Items, parameterised by a
// scheme's ciphertext type CT and binary-operation alphabet Op2.
type Container[CT any, Op2 ~uint8] struct {
	items []Item[CT, Op2]
}

// NewContainer returns an empty Container.
func NewContainer[CT any, Op2 ~uint8]() *Container[CT, Op2] {
	return &Container[CT, Op2]{}
}

// Push appends a new (lhs, rhs, op2) triple.
func (c *Container[CT, Op2]) Push(lhs, rhs CT, op Op2) {
	c.items = append(c.items, Item[CT, Op2]{Lhs: lhs, Rhs: rhs, Op: op})
}

// Len returns the number of items.
func (c *Container[CT, Op2]) Len() int { return len(c.items) }

// IsEmpty reports whether the container holds no items.
func (c *Container[CT, Op2]) IsEmpty() bool { return len(c.items) == 0 }

// Items returns the underlying item slice; callers must not mutate it.
func (c *Container[CT, Op2]) Items() []Item[CT, Op2] {
	return c.items
}
