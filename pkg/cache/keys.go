package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// DocumentKeyOpts holds the render options that change a document's text.
type DocumentKeyOpts struct {
	Format       string   `json:"format,omitempty"`
	Name         string   `json:"name,omitempty"`
	Title        string   `json:"title,omitempty"`
	Scale        float64  `json:"scale,omitempty"`
	Layout       string   `json:"layout,omitempty"`
	Includes     []string `json:"includes,omitempty"`
	SpriteSource string   `json:"sprite_source,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// DocumentKey returns the key of the document rendered from the model
	// whose content hash is modelHash.
	DocumentKey(modelHash string, opts DocumentKeyOpts) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DocumentKey returns "document:" followed by the SHA-256 of modelHash and
// the JSON form of opts. Options left at their zero value do not change the
// key.
func (DefaultKeyer) DocumentKey(modelHash string, opts DocumentKeyOpts) string {
	h := sha256.New()
	h.Write([]byte(modelHash))
	h.Write([]byte{0})
	// DocumentKeyOpts holds only strings and numbers; encoding cannot fail.
	_ = json.NewEncoder(h).Encode(opts)
	return "document:" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex-encoded SHA-256 of data (64 characters).
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

var _ Keyer = DefaultKeyer{}
