package plantkit

import (
	pkgio "github.com/localgod/plantkit/pkg/io"
)

// FromModel builds a Kit from a loaded model. Document metadata present in
// m overrides the defaults; elements are added in file order, parents
// before children, and relations after all elements.
func FromModel(m *pkgio.Model, opts ...Option) (*Kit, error) {
	k := New(m.Name, opts...)
	if m.Title != "" {
		k.Title(m.Title)
	}
	if m.Scale > 0 {
		k.Scale(m.Scale)
	}
	if m.Layout != "" {
		k.Layout(m.Layout)
	}
	for _, inc := range m.Includes {
		k.Include(inc)
	}

	_ = m.Walk(func(e, parent *pkgio.Element) error {
		if parent == nil {
			k.Element(e.ID, e.DisplayName(), e.Properties())
		} else {
			k.Child(parent.ID, e.ID, e.DisplayName(), e.Properties())
		}
		return k.err
	})
	for _, r := range m.Relations {
		k.Relate(r.Source, r.Target, r.Type, r.Label)
	}

	if err := k.Err(); err != nil {
		return nil, err
	}
	k.logger.Debug("model loaded", "name", m.Name, "elements", k.graph.NodeCount(), "relations", k.graph.RelationCount())
	return k, nil
}
