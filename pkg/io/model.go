package io

import (
	"fmt"

	pkerrors "github.com/localgod/plantkit/pkg/errors"
	"github.com/localgod/plantkit/pkg/model"
)

// Model is the file-level description of a diagram.
type Model struct {
	Name      string     `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Title     string     `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Scale     float64    `json:"scale,omitempty" toml:"scale,omitempty" yaml:"scale,omitempty"`
	Layout    string     `json:"layout,omitempty" toml:"layout,omitempty" yaml:"layout,omitempty"`
	Includes  []string   `json:"includes,omitempty" toml:"includes,omitempty" yaml:"includes,omitempty"`
	Elements  []Element  `json:"elements" toml:"elements" yaml:"elements"`
	Relations []Relation `json:"relations,omitempty" toml:"relations,omitempty" yaml:"relations,omitempty"`
}

// Element describes one entity and its nested children.
type Element struct {
	ID       string         `json:"id" toml:"id" yaml:"id"`
	Name     string         `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Type     string         `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`
	Label    string         `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Extra    map[string]any `json:"extra,omitempty" toml:"extra,omitempty" yaml:"extra,omitempty"`
	Children []Element      `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`
}

// Relation describes a typed edge between two elements, by id.
type Relation struct {
	Source string `json:"source" toml:"source" yaml:"source"`
	Target string `json:"target" toml:"target" yaml:"target"`
	Type   string `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`
	Label  string `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
}

// DisplayName returns the element name, falling back to its id.
func (e Element) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// Properties converts the element's type, label and extra values into a
// property record. Numeric extras become numbers; everything else is
// formatted as a string.
func (e Element) Properties() model.Properties {
	p := model.Properties{Type: e.Type, Label: e.Label}
	for k, v := range e.Extra {
		p.Set(k, toValue(v))
	}
	return p
}

// Properties returns the relation's label as a property record.
func (r Relation) Properties() model.Properties {
	return model.Properties{Label: r.Label}
}

func toValue(v any) model.Value {
	switch n := v.(type) {
	case string:
		return model.String(n)
	case float64:
		return model.Number(n)
	case float32:
		return model.Number(float64(n))
	case int:
		return model.Number(float64(n))
	case int64:
		return model.Number(float64(n))
	case int32:
		return model.Number(float64(n))
	case uint64:
		return model.Number(float64(n))
	default:
		return model.String(fmt.Sprint(v))
	}
}

// Walk visits every element in pre-order. parent is nil for top-level
// elements.
func (m *Model) Walk(fn func(e *Element, parent *Element) error) error {
	type frame struct {
		e      *Element
		parent *Element
	}
	stack := make([]frame, 0, len(m.Elements))
	for i := len(m.Elements) - 1; i >= 0; i-- {
		stack = append(stack, frame{e: &m.Elements[i]})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(f.e, f.parent); err != nil {
			return err
		}
		for i := len(f.e.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{e: &f.e.Children[i], parent: f.e})
		}
	}
	return nil
}

// Validate checks element ids and relation references.
//
// It returns INVALID_INPUT for a malformed id, DUPLICATE_ID when an id is
// used twice anywhere in the tree, and UNRESOLVED_REFERENCE when a relation
// names an unknown element.
func (m *Model) Validate() error {
	ids := make(map[string]bool)
	err := m.Walk(func(e *Element, _ *Element) error {
		if err := pkerrors.ValidateElementID(e.ID); err != nil {
			return err
		}
		if ids[e.ID] {
			return pkerrors.New(pkerrors.ErrCodeDuplicateID, "element id %q is used more than once", e.ID)
		}
		ids[e.ID] = true
		return nil
	})
	if err != nil {
		return err
	}

	for i, r := range m.Relations {
		if !ids[r.Source] {
			return unresolvedRelation(i, pkerrors.SideSource, r.Source)
		}
		if !ids[r.Target] {
			return unresolvedRelation(i, pkerrors.SideTarget, r.Target)
		}
	}
	return nil
}

func unresolvedRelation(i int, side pkerrors.Side, id string) error {
	return pkerrors.New(pkerrors.ErrCodeUnresolvedReference,
		"relation %d: %s %q does not resolve to a registered element", i, side, id)
}

// ElementCount returns the number of elements at every depth.
func (m *Model) ElementCount() int {
	n := 0
	_ = m.Walk(func(*Element, *Element) error {
		n++
		return nil
	})
	return n
}
