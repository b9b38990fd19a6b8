package diagram

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/localgod/plantkit/pkg/sprite"
)

// Defaults applied by New.
const (
	DefaultName            = "default"
	DefaultTitle           = "default"
	DefaultScale           = 1.0
	DefaultLayoutDirection = "left to right direction"
	DefaultSpriteSource    = "archimate"
)

// Markup keywords emitted by Output.
const (
	startMarker     = "@startuml"
	endMarker       = "@enduml"
	legendOpen      = "legend left"
	legendSeparator = "===="
	legendClose     = "endlegend"
)

// Document is a diagram description under construction.
//
// The zero value is not usable - use New.
// Document is not safe for concurrent use.
type Document struct {
	name         string
	title        string
	scale        float64
	layout       string
	spriteSource string
	includes     []string
	body         []string
	sprites      *sprite.Registry
}

// New creates a document with the given name and title. Empty values fall
// back to DefaultName and DefaultTitle.
func New(name, title string) *Document {
	if name == "" {
		name = DefaultName
	}
	if title == "" {
		title = DefaultTitle
	}
	return &Document{
		name:         name,
		title:        title,
		scale:        DefaultScale,
		layout:       DefaultLayoutDirection,
		spriteSource: DefaultSpriteSource,
		sprites:      &sprite.Registry{},
	}
}

// SetName sets the name written after the start marker.
func (d *Document) SetName(name string) { d.name = name }

// SetTitle sets the title directive.
func (d *Document) SetTitle(title string) { d.title = title }

// SetScale sets the scale directive. Non-positive values are ignored.
func (d *Document) SetScale(scale float64) {
	if scale > 0 {
		d.scale = scale
	}
}

// SetLayoutDirection sets the layout line, written verbatim.
func (d *Document) SetLayoutDirection(dir string) { d.layout = dir }

// SetSpriteSource sets the resource namespace sprite paths are resolved in.
func (d *Document) SetSpriteSource(src string) { d.spriteSource = src }

// AddInclude appends an include path. Duplicates are kept.
func (d *Document) AddInclude(path string) { d.includes = append(d.includes, path) }

// AddToBody appends a pre-rendered block of markup.
func (d *Document) AddToBody(block string) { d.body = append(d.body, block) }

// AddSprite registers s unless an equal (alias, path) pair is present.
func (d *Document) AddSprite(s sprite.Sprite) bool { return d.sprites.Add(s) }

// Name returns the document name.
func (d *Document) Name() string { return d.name }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Scale returns the scale factor.
func (d *Document) Scale() float64 { return d.scale }

// LayoutDirection returns the layout line.
func (d *Document) LayoutDirection() string { return d.layout }

// SpriteSource returns the sprite resource namespace.
func (d *Document) SpriteSource() string { return d.spriteSource }

// Includes returns the include paths in insertion order.
func (d *Document) Includes() []string { return d.includes }

// Body returns the body blocks in insertion order.
func (d *Document) Body() []string { return d.body }

// Sprites returns the registered sprites in insertion order.
func (d *Document) Sprites() []sprite.Sprite { return d.sprites.Sprites() }

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	c := *d
	c.includes = slices.Clone(d.includes)
	c.body = slices.Clone(d.body)
	c.sprites = d.sprites.Clone()
	return &c
}

// Output assembles the document text. Every section is written on its own
// line and the result ends with a newline.
func (d *Document) Output() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s %s\n", startMarker, d.name)
	for _, inc := range d.includes {
		fmt.Fprintf(&buf, "!include %s\n", inc)
	}
	for _, s := range d.Sprites() {
		fmt.Fprintf(&buf, "sprite $%s jar:%s/%s\n", s.Alias, d.spriteSource, s.Path)
	}
	fmt.Fprintf(&buf, "scale %s\n", strconv.FormatFloat(d.scale, 'f', -1, 64))
	fmt.Fprintf(&buf, "title %s\n", d.title)
	buf.WriteString(strings.Join(d.body, "\n"))
	buf.WriteString("\n")
	buf.WriteString(d.layout)
	buf.WriteString("\n")

	buf.WriteString(legendOpen + "\n")
	buf.WriteString(legendSeparator + "\n")
	for _, s := range d.Sprites() {
		fmt.Fprintf(&buf, "<$%s> : %s\n", s.Alias, s.Label)
	}
	buf.WriteString(legendClose + "\n")

	buf.WriteString(endMarker + "\n")
	return buf.String()
}
