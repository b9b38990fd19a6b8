package pipeline

import (
	"context"
	"time"

	pkgio "github.com/localgod/plantkit/pkg/io"
	"github.com/localgod/plantkit/pkg/observability"
	"github.com/localgod/plantkit/pkg/plantkit"
)

// Build creates a Kit from m with the document overrides of opts applied.
func Build(m *pkgio.Model, opts Options) (*plantkit.Kit, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	kitOpts := []plantkit.Option{plantkit.WithLogger(opts.Logger)}
	if opts.SpriteSource != "" {
		kitOpts = append(kitOpts, plantkit.WithSpriteSource(opts.SpriteSource))
	}
	kit, err := plantkit.FromModel(m, kitOpts...)
	if err != nil {
		return nil, err
	}

	if opts.Name != "" {
		kit.Name(opts.Name)
	}
	if opts.Title != "" {
		kit.Title(opts.Title)
	}
	if opts.Scale > 0 {
		kit.Scale(opts.Scale)
	}
	if opts.Layout != "" {
		kit.Layout(opts.Layout)
	}
	for _, inc := range opts.Includes {
		kit.Include(inc)
	}
	return kit, kit.Err()
}

// Render builds and renders m.
func Render(ctx context.Context, m *pkgio.Model, opts Options) (string, error) {
	if err := opts.ValidateForRender(); err != nil {
		return "", err
	}

	name := m.Name
	if opts.Name != "" {
		name = opts.Name
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, name)
	start := time.Now()

	var text string
	kit, err := Build(m, opts)
	if err == nil {
		text, err = kit.Render()
	}

	hooks.OnRenderComplete(ctx, name, len(text), time.Since(start), err)
	return text, err
}
