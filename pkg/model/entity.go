package model

import "slices"

// Entity is a named, property-bearing node that owns an ordered list of
// child entities.
//
// The zero value is an unnamed entity without properties or children.
// Entities are not safe for concurrent use.
type Entity struct {
	name     string
	props    Properties
	children []*Entity
}

// NewEntity creates a standalone entity. The properties are copied.
func NewEntity(name string, props Properties) *Entity {
	return &Entity{name: name, props: props.Clone()}
}

// Name returns the entity's display name.
func (e *Entity) Name() string { return e.name }

// Properties returns the entity's property record. The returned pointer
// refers to the entity's own record, so modifications affect the entity.
func (e *Entity) Properties() *Properties { return &e.props }

// Type is shorthand for Properties().Type.
func (e *Entity) Type() string { return e.props.Type }

// Label is shorthand for Properties().Label.
func (e *Entity) Label() string { return e.props.Label }

// Children returns the entity's children in insertion order. The returned
// slice is the entity's backing slice and should be treated as a read-only
// view; use AddChild and RemoveByName to change it.
func (e *Entity) Children() []*Entity { return e.children }

// HasChildren reports whether the entity has at least one child.
func (e *Entity) HasChildren() bool { return len(e.children) > 0 }

// AddChild appends c to the entity's children.
// No cycle or shared-ownership check is performed.
func (e *Entity) AddChild(c *Entity) {
	e.children = append(e.children, c)
}

// FindByName returns the first entity named name in pre-order (the receiver
// first, then each child subtree left to right), or nil and false.
func (e *Entity) FindByName(name string) (*Entity, bool) {
	stack := []*Entity{e}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.name == name {
			return n, true
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return nil, false
}

// RemoveByName detaches every child named name at every depth below the
// receiver and returns how many entities were detached. At each level the
// matching direct children are dropped first, then the search continues in
// the remaining children; subtrees of removed entities are not searched.
// The receiver itself is never removed.
func (e *Entity) RemoveByName(name string) int {
	removed := 0
	stack := []*Entity{e}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		before := len(n.children)
		n.children = slices.DeleteFunc(n.children, func(c *Entity) bool { return c.name == name })
		removed += before - len(n.children)

		stack = append(stack, n.children...)
	}
	return removed
}

// Walk visits the subtree rooted at e in pre-order, passing each entity and
// its depth relative to e (e itself has depth 0). Walk stops as soon as fn
// returns false.
func (e *Entity) Walk(fn func(n *Entity, depth int) bool) {
	type frame struct {
		n     *Entity
		depth int
	}
	stack := []frame{{e, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.n, f.depth) {
			return
		}
		for i := len(f.n.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.n.children[i], f.depth + 1})
		}
	}
}

// Count returns the number of entities in the subtree rooted at e,
// including e.
func (e *Entity) Count() int {
	n := 0
	e.Walk(func(*Entity, int) bool {
		n++
		return true
	})
	return n
}
