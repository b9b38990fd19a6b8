package pipeline

import (
	"bytes"
	"context"
	"time"

	pkgio "github.com/localgod/plantkit/pkg/io"
	"github.com/localgod/plantkit/pkg/observability"
)

// ReadInput returns the raw bytes of the model file named by opts.Input.
func ReadInput(opts Options) ([]byte, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	return pkgio.ReadFile(opts.Input)
}

// Decode decodes model bytes in opts.Format.
func Decode(ctx context.Context, data []byte, opts Options) (*pkgio.Model, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	m, err := pkgio.Read(bytes.NewReader(data), pkgio.Format(opts.Format))

	count := 0
	if m != nil {
		count = m.ElementCount()
	}
	hooks.OnLoadComplete(ctx, opts.Input, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("decoded model",
		"input", opts.Input,
		"format", opts.Format,
		"elements", count,
		"relations", len(m.Relations))
	return m, nil
}

// Load reads and decodes the model file named by opts.Input.
func Load(ctx context.Context, opts Options) (*pkgio.Model, error) {
	data, err := ReadInput(opts)
	if err != nil {
		return nil, err
	}
	return Decode(ctx, data, opts)
}
