// Package model provides the in-memory model rendered by PlantKit: a tree
// of named, typed entities and a graph of typed directed relations between
// registered entities.
//
// # Entities
//
// An [Entity] has a name, a [Properties] record and an ordered list of
// children it owns exclusively. Build trees with [NewEntity] and
// [Entity.AddChild]:
//
//	root := model.NewEntity("Sales", model.Properties{Type: "Grouping", Label: "Sales"})
//	root.AddChild(model.NewEntity("CRM", model.Properties{Type: "Application_Component", Label: "CRM"}))
//
// Names are not unique. [Entity.FindByName] returns the shallowest, leftmost
// match in pre-order; [Entity.RemoveByName] removes every matching child at
// every level below the receiver.
//
// AddChild does not check for cycles. A tree that contains itself makes
// every traversal in this module loop forever, so callers must keep trees
// acyclic.
//
// # Properties
//
// [Properties] is a closed record for the two well-known keys ("type" and
// "label") plus an Extra map of string-or-number [Value]s. Lookups of absent
// keys return the empty string rather than failing.
//
// # Relations
//
// A [Graph] registers entities by identity (two entities with the same name
// are distinct members) and holds [Relation] records between registered
// entities:
//
//	g := model.NewGraph()
//	g.AddNode(a)
//	g.AddNode(b)
//	err := g.AddRelation(a, b, "Rel_Flow", &model.Properties{Label: "orders"})
//
// AddRelation fails with a PRECEDED_NODE_MISSING error when either endpoint
// has not been registered. Relations are kept in insertion order and are
// never deduplicated or removed.
//
// # Concurrency
//
// Entities and graphs are not safe for concurrent use. Callers must
// serialize writes to a given instance.
package model
