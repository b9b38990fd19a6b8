package render

import (
	"fmt"
	"strings"

	"github.com/localgod/plantkit/pkg/diagram"
	"github.com/localgod/plantkit/pkg/model"
	"github.com/localgod/plantkit/pkg/naming"
	"github.com/localgod/plantkit/pkg/sprite"
)

const indentUnit = "  "

// Entity renders the subtree rooted at e. The root line is indented by
// depth levels; each child is rendered one level deeper than its parent.
// Entities without a type or label render with empty strings in their place.
func Entity(e *model.Entity, depth int) string {
	type frame struct {
		e       *model.Entity
		depth   int
		closing bool
	}

	var lines []string
	stack := []frame{{e: e, depth: depth}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		indent := strings.Repeat(indentUnit, f.depth)
		if f.closing {
			lines = append(lines, indent+"}")
			continue
		}

		call := macro(f.e.Type(), naming.Normalize(f.e.Name()), f.e.Label())
		if !f.e.HasChildren() {
			lines = append(lines, indent+call)
			continue
		}

		lines = append(lines, indent+call+" {")
		stack = append(stack, frame{e: f.e, depth: f.depth, closing: true})
		children := f.e.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{e: children[i], depth: f.depth + 1})
		}
	}
	return strings.Join(lines, "\n")
}

// Relations renders every relation of g, one per line, in insertion order.
func Relations(g *model.Graph) string {
	rels := g.Relations()
	lines := make([]string, 0, len(rels))
	for _, r := range rels {
		lines = append(lines, fmt.Sprintf("%s(%s, %s, \"%s\")",
			r.Type,
			naming.Normalize(r.Source.Name()),
			naming.Normalize(r.Target.Name()),
			escapeLabel(r.Label())))
	}
	return strings.Join(lines, "\n")
}

// Types returns the distinct non-empty element types found in the root
// trees and the graph nodes, and the distinct non-empty relation types of
// the graph, each in order of first occurrence. g may be nil.
func Types(roots []*model.Entity, g *model.Graph) (entityTypes, relationTypes []string) {
	seen := make(map[string]bool)
	addEntity := func(n *model.Entity, _ int) bool {
		if t := n.Type(); t != "" && !seen[t] {
			seen[t] = true
			entityTypes = append(entityTypes, t)
		}
		return true
	}
	for _, r := range roots {
		r.Walk(addEntity)
	}
	if g == nil {
		return entityTypes, nil
	}
	for _, n := range g.Nodes() {
		n.Walk(addEntity)
	}

	seenRel := make(map[string]bool)
	for _, r := range g.Relations() {
		if r.Type != "" && !seenRel[r.Type] {
			seenRel[r.Type] = true
			relationTypes = append(relationTypes, r.Type)
		}
	}
	return entityTypes, relationTypes
}

// Populate appends one body block per root and, when g has relations, one
// block with all relations. It then adds the sprite of every element and
// relation type found by Types. g may be nil.
func Populate(doc *diagram.Document, roots []*model.Entity, g *model.Graph) {
	for _, r := range roots {
		doc.AddToBody(Entity(r, 0))
	}
	if g != nil && g.RelationCount() > 0 {
		doc.AddToBody(Relations(g))
	}

	entityTypes, relationTypes := Types(roots, g)
	for _, t := range entityTypes {
		doc.AddSprite(sprite.Derive(t))
	}
	for _, t := range relationTypes {
		doc.AddSprite(sprite.Derive(t))
	}
}

func macro(typ, id, label string) string {
	return fmt.Sprintf("%s(%s, \"%s\")", typ, id, escapeLabel(label))
}

// escapeLabel replaces double quotes, which would end the macro argument.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
