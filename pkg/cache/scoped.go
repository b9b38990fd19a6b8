package cache

// ScopedKeyer prefixes every key of an inner Keyer, giving each scope its
// own namespace in a shared cache.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with prefix. A nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DocumentKey returns the prefixed document key.
func (k *ScopedKeyer) DocumentKey(modelHash string, opts DocumentKeyOpts) string {
	return k.prefix + k.inner.DocumentKey(modelHash, opts)
}
