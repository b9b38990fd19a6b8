// Package pipeline runs the load → build → render pipeline for model files.
//
// The CLI and tests share this package so that defaults, validation and
// caching behave the same everywhere.
//
// # Stages
//
//  1. Load: read the model file and decode it (JSON, TOML, YAML or CSV)
//  2. Render: build a plantkit.Kit from the model, apply option overrides
//     and render the document text
//
// Rendered documents are cached under a key derived from the model bytes
// and the options, so re-rendering an unchanged file is a single cache read.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input: "landscape.toml",
//	    Title: "Application Landscape",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Document)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/localgod/plantkit/pkg/cache"
	pkerrors "github.com/localgod/plantkit/pkg/errors"
	pkgio "github.com/localgod/plantkit/pkg/io"
)

// KeyTypeDocument labels document entries in cache hook events.
const KeyTypeDocument = "document"

// ValidFormats is the set of model formats accepted by Options.Format.
var ValidFormats = map[string]bool{
	string(pkgio.FormatJSON): true,
	string(pkgio.FormatTOML): true,
	string(pkgio.FormatYAML): true,
	string(pkgio.FormatCSV):  true,
}

// Options configures a pipeline run. Document fields left at their zero
// value keep what the model file declares (or the document defaults).
type Options struct {
	// Input
	Input  string `json:"input"`
	Format string `json:"format,omitempty"` // detected from the Input extension when empty

	// Document overrides
	Name         string   `json:"name,omitempty"`
	Title        string   `json:"title,omitempty"`
	Scale        float64  `json:"scale,omitempty"`
	Layout       string   `json:"layout,omitempty"`
	Includes     []string `json:"includes,omitempty"` // appended after the model's includes
	SpriteSource string   `json:"sprite_source,omitempty"`

	// Refresh skips the cache lookup; the fresh result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the rendered text.
	Document string

	// Model is the decoded model. It is nil when the document came from
	// the cache.
	Model *pkgio.Model

	// ModelHash is the content hash of the input file.
	ModelHash string

	Stats    Stats
	CacheHit bool
}

// Stats contains pipeline timing and size information.
type Stats struct {
	ElementCount  int
	RelationCount int
	LoadTime      time.Duration
	RenderTime    time.Duration
}

// ValidateFormat checks that format names a readable model format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return pkerrors.New(pkerrors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: json, toml, yaml, csv)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it again has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks the input fields and resolves Format.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return pkerrors.New(pkerrors.ErrCodeInvalidInput, "input is required")
	}
	if err := pkerrors.ValidatePath(o.Input); err != nil {
		return err
	}
	if o.Format == "" {
		f, err := pkgio.DetectFormat(o.Input)
		if err != nil {
			return err
		}
		o.Format = string(f)
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	o.setLoggerDefault()
	return nil
}

// ValidateForRender checks the document overrides.
func (o *Options) ValidateForRender() error {
	if o.Scale < 0 {
		return pkerrors.New(pkerrors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	o.setLoggerDefault()
	return nil
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// DocumentKeyOpts returns the cache key options for the rendered document.
func (o *Options) DocumentKeyOpts() cache.DocumentKeyOpts {
	return cache.DocumentKeyOpts{
		Format:       o.Format,
		Name:         o.Name,
		Title:        o.Title,
		Scale:        o.Scale,
		Layout:       o.Layout,
		Includes:     o.Includes,
		SpriteSource: o.SpriteSource,
	}
}
