package model

import (
	pkerrors "github.com/localgod/plantkit/pkg/errors"
)

// Relation is a typed directed edge between two registered entities.
type Relation struct {
	Source     *Entity
	Target     *Entity
	Type       string
	Properties Properties
}

// Label returns the relation's label property, or "" if absent.
func (r Relation) Label() string { return r.Properties.Label }

// Graph is a registry of entities plus the typed directed relations between
// them. Membership is keyed by entity identity, not by name.
//
// The zero value is not usable - use NewGraph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes     []*Entity
	index     map[*Entity]int // entity -> position in nodes
	relations []Relation
	outgoing  map[*Entity][]int // entity -> indices into relations
	incoming  map[*Entity][]int
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:    make(map[*Entity]int),
		outgoing: make(map[*Entity][]int),
		incoming: make(map[*Entity][]int),
	}
}

// AddNode registers e. Adding the same entity again is a no-op.
func (g *Graph) AddNode(e *Entity) {
	if e == nil {
		return
	}
	if _, ok := g.index[e]; ok {
		return
	}
	g.index[e] = len(g.nodes)
	g.nodes = append(g.nodes, e)
}

// Has reports whether e is registered.
func (g *Graph) Has(e *Entity) bool {
	_, ok := g.index[e]
	return ok
}

// Nodes returns the registered entities in registration order.
func (g *Graph) Nodes() []*Entity { return g.nodes }

// NodeCount returns the number of registered entities.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// RelationCount returns the number of relations.
func (g *Graph) RelationCount() int { return len(g.relations) }

// AddRelation adds a relation of type relType from source to target.
// props may be nil. It returns a PRECEDED_NODE_MISSING error, and adds
// nothing, when source or target has not been registered with AddNode.
//
// Every call adds a new relation; identical source/target/type triples are
// kept as separate relations.
func (g *Graph) AddRelation(source, target *Entity, relType string, props *Properties) error {
	if !g.Has(source) {
		return missingNode(pkerrors.SideSource, source)
	}
	if !g.Has(target) {
		return missingNode(pkerrors.SideTarget, target)
	}

	r := Relation{Source: source, Target: target, Type: relType}
	if props != nil {
		r.Properties = props.Clone()
	}

	i := len(g.relations)
	g.relations = append(g.relations, r)
	g.outgoing[source] = append(g.outgoing[source], i)
	g.incoming[target] = append(g.incoming[target], i)
	return nil
}

func missingNode(side pkerrors.Side, e *Entity) error {
	name := "<nil>"
	if e != nil {
		name = e.Name()
	}
	return pkerrors.New(pkerrors.ErrCodePrecededNodeMissing,
		"%s %q must be added with AddNode before it is related", side, name)
}

// Relations returns all relations in insertion order. The returned slice
// should not be modified.
func (g *Graph) Relations() []Relation { return g.relations }

// Outgoing returns the relations whose source is e, in insertion order.
func (g *Graph) Outgoing(e *Entity) []Relation { return g.collect(g.outgoing[e]) }

// Incoming returns the relations whose target is e, in insertion order.
func (g *Graph) Incoming(e *Entity) []Relation { return g.collect(g.incoming[e]) }

func (g *Graph) collect(idx []int) []Relation {
	if len(idx) == 0 {
		return nil
	}
	out := make([]Relation, len(idx))
	for i, j := range idx {
		out[i] = g.relations[j]
	}
	return out
}

// Connected returns the entities directly related to e: targets of its
// outgoing relations followed by sources of its incoming relations, each
// listed once in order of first occurrence.
func (g *Graph) Connected(e *Entity) []*Entity {
	seen := make(map[*Entity]bool)
	var out []*Entity
	add := func(n *Entity) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, i := range g.outgoing[e] {
		add(g.relations[i].Target)
	}
	for _, i := range g.incoming[e] {
		add(g.relations[i].Source)
	}
	return out
}
