package sprite

import (
	"regexp"
	"strings"
)

// Sprite is a legend entry associating an alias with an icon path and a
// display label.
type Sprite struct {
	Alias string
	Path  string
	Label string
}

const (
	aliasSuffix = "_Sprite"
	relPrefix   = "Rel"
)

var relKindRe = regexp.MustCompile(`(?i)rel_([^_]+)`)

// Derive returns the sprite for a type name.
func Derive(typeName string) Sprite {
	value := typeName
	if strings.HasPrefix(value, relPrefix) {
		value = ""
		if m := relKindRe.FindStringSubmatch(typeName); m != nil {
			value = m[1]
		}
	}
	if value == "Realization" {
		value = "Realisation"
	}

	return Sprite{
		Alias: value + aliasSuffix,
		Path:  strings.ToLower(strings.Replace(value, "_", "-", 1)),
		Label: strings.Replace(value, "_", " ", 1),
	}
}

type key struct{ alias, path string }

// Registry is an insertion-ordered set of sprites, unique on (Alias, Path).
// The zero value is an empty registry ready to use.
type Registry struct {
	sprites []Sprite
	seen    map[key]struct{}
}

// Add registers s unless a sprite with the same alias and path is already
// present. It reports whether s was added.
func (r *Registry) Add(s Sprite) bool {
	k := key{s.Alias, s.Path}
	if _, ok := r.seen[k]; ok {
		return false
	}
	if r.seen == nil {
		r.seen = make(map[key]struct{})
	}
	r.seen[k] = struct{}{}
	r.sprites = append(r.sprites, s)
	return true
}

// AddType derives the sprite for typeName and registers it.
func (r *Registry) AddType(typeName string) bool {
	return r.Add(Derive(typeName))
}

// Sprites returns the registered sprites in insertion order. The returned
// slice should not be modified.
func (r *Registry) Sprites() []Sprite { return r.sprites }

// Len returns the number of registered sprites.
func (r *Registry) Len() int { return len(r.sprites) }

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	c := &Registry{}
	for _, s := range r.sprites {
		c.Add(s)
	}
	return c
}
