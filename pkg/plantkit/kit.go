package plantkit

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/localgod/plantkit/pkg/diagram"
	pkerrors "github.com/localgod/plantkit/pkg/errors"
	"github.com/localgod/plantkit/pkg/model"
	"github.com/localgod/plantkit/pkg/render"
)

// Kit builds a diagram document from elements and relations.
//
// The zero value is not usable - use New. A Kit is not safe for concurrent
// use.
type Kit struct {
	doc    *diagram.Document
	graph  *model.Graph
	roots  []*model.Entity
	byID   map[string]*model.Entity
	logger *log.Logger
	err    error
}

// Option configures a Kit.
type Option func(*Kit)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l *log.Logger) Option {
	return func(k *Kit) {
		if l != nil {
			k.logger = l
		}
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(k *Kit) { k.doc.SetTitle(title) }
}

// WithSpriteSource sets the namespace sprite paths are resolved in.
func WithSpriteSource(src string) Option {
	return func(k *Kit) { k.doc.SetSpriteSource(src) }
}

// New creates a Kit for a document called name.
func New(name string, opts ...Option) *Kit {
	k := &Kit{
		doc:    diagram.New(name, ""),
		graph:  model.NewGraph(),
		byID:   make(map[string]*model.Entity),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// ready reports whether a builder call may proceed, recording
// FACADE_NOT_INITIALIZED on a zero Kit.
func (k *Kit) ready() bool {
	if k.err != nil {
		return false
	}
	if k.doc == nil {
		k.err = pkerrors.New(pkerrors.ErrCodeFacadeNotInitialized, "plantkit: Kit must be created with New")
		return false
	}
	return true
}

func (k *Kit) fail(err error) *Kit {
	k.logger.Debug("plantkit call failed", "error", err)
	k.err = err
	return k
}

// Name sets the document name.
func (k *Kit) Name(name string) *Kit {
	if k.ready() {
		k.doc.SetName(name)
	}
	return k
}

// Title sets the document title.
func (k *Kit) Title(title string) *Kit {
	if k.ready() {
		k.doc.SetTitle(title)
	}
	return k
}

// Scale sets the document scale. Non-positive values are ignored.
func (k *Kit) Scale(scale float64) *Kit {
	if k.ready() {
		k.doc.SetScale(scale)
	}
	return k
}

// Layout sets the layout direction line.
func (k *Kit) Layout(direction string) *Kit {
	if k.ready() {
		k.doc.SetLayoutDirection(direction)
	}
	return k
}

// Include appends an include directive.
func (k *Kit) Include(path string) *Kit {
	if k.ready() {
		k.doc.AddInclude(path)
	}
	return k
}

// Element adds a top-level element.
func (k *Kit) Element(id, name string, props model.Properties) *Kit {
	e, ok := k.register(id, name, props)
	if ok {
		k.roots = append(k.roots, e)
	}
	return k
}

// Child adds an element nested under the element registered as parentID.
func (k *Kit) Child(parentID, id, name string, props model.Properties) *Kit {
	if !k.ready() {
		return k
	}
	parent, ok := k.byID[parentID]
	if !ok {
		return k.fail(pkerrors.Unresolved(pkerrors.SideParent, parentID))
	}
	if e, ok := k.register(id, name, props); ok {
		parent.AddChild(e)
	}
	return k
}

func (k *Kit) register(id, name string, props model.Properties) (*model.Entity, bool) {
	if !k.ready() {
		return nil, false
	}
	if err := pkerrors.ValidateElementID(id); err != nil {
		k.fail(err)
		return nil, false
	}
	if _, dup := k.byID[id]; dup {
		k.fail(pkerrors.New(pkerrors.ErrCodeDuplicateID, "element id %q is already registered", id))
		return nil, false
	}

	e := model.NewEntity(name, props)
	k.byID[id] = e
	k.graph.AddNode(e)
	return e, true
}

// Relate adds a relation of type relType from the element sourceID to the
// element targetID. label may be empty.
func (k *Kit) Relate(sourceID, targetID, relType, label string) *Kit {
	if !k.ready() {
		return k
	}
	src, ok := k.byID[sourceID]
	if !ok {
		return k.fail(pkerrors.Unresolved(pkerrors.SideSource, sourceID))
	}
	dst, ok := k.byID[targetID]
	if !ok {
		return k.fail(pkerrors.Unresolved(pkerrors.SideTarget, targetID))
	}
	if err := k.graph.AddRelation(src, dst, relType, &model.Properties{Label: label}); err != nil {
		return k.fail(err)
	}
	return k
}

// Lookup returns the element registered as id.
func (k *Kit) Lookup(id string) (*model.Entity, bool) {
	if k.byID == nil {
		return nil, false
	}
	e, ok := k.byID[id]
	return e, ok
}

// Roots returns the top-level elements in insertion order.
func (k *Kit) Roots() []*model.Entity { return k.roots }

// Graph returns the relation graph. It is nil for a zero Kit.
func (k *Kit) Graph() *model.Graph { return k.graph }

// Err returns the first error recorded by a builder call.
func (k *Kit) Err() error {
	if k == nil || (k.err == nil && k.doc == nil) {
		return pkerrors.New(pkerrors.ErrCodeFacadeNotInitialized, "plantkit: Kit must be created with New")
	}
	return k.err
}

// Render returns the document text. It can be called repeatedly; each call
// renders the current elements and relations into a fresh copy of the
// document.
func (k *Kit) Render() (string, error) {
	if err := k.Err(); err != nil {
		return "", err
	}

	doc := k.doc.Clone()
	render.Populate(doc, k.roots, k.graph)

	k.logger.Debug("rendered document",
		"name", doc.Name(),
		"elements", k.graph.NodeCount(),
		"relations", k.graph.RelationCount(),
		"sprites", len(doc.Sprites()))
	return doc.Output(), nil
}
