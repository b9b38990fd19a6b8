package model

import (
	"maps"
	"strconv"
)

// Well-known property keys.
const (
	KeyType  = "type"
	KeyLabel = "label"
)

// Value is a property value holding either a string or a number.
// The zero value is the empty string.
type Value struct {
	str   string
	num   float64
	isNum bool
}

// String returns a string Value.
func String(s string) Value { return Value{str: s} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{num: f, isNum: true} }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.isNum }

// Float returns the numeric content of v and whether v holds a number.
func (v Value) Float() (float64, bool) { return v.num, v.isNum }

// String renders v as text. Numbers use the shortest decimal form
// ("3", "2.5").
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// Properties is the property record of an entity or relation.
// Type and Label carry the well-known keys; everything else lives in Extra.
type Properties struct {
	Type  string
	Label string
	Extra map[string]Value
}

// Get returns the text of the property stored under key, or "" if absent.
// Get is safe to call on a nil receiver.
func (p *Properties) Get(key string) string {
	v, _ := p.Lookup(key)
	return v.String()
}

// Lookup returns the value stored under key and whether it is present.
// Well-known keys are present when non-empty.
func (p *Properties) Lookup(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	switch key {
	case KeyType:
		return String(p.Type), p.Type != ""
	case KeyLabel:
		return String(p.Label), p.Label != ""
	}
	v, ok := p.Extra[key]
	return v, ok
}

// Set stores v under key. Well-known keys are stored as text.
func (p *Properties) Set(key string, v Value) {
	switch key {
	case KeyType:
		p.Type = v.String()
	case KeyLabel:
		p.Label = v.String()
	default:
		if p.Extra == nil {
			p.Extra = make(map[string]Value)
		}
		p.Extra[key] = v
	}
}

// Clone returns a copy of p that shares no maps with it.
func (p Properties) Clone() Properties {
	p.Extra = maps.Clone(p.Extra)
	return p
}
