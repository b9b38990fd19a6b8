package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/localgod/plantkit/pkg/cache"
	pkerrors "github.com/localgod/plantkit/pkg/errors"
	"github.com/localgod/plantkit/pkg/observability"
)

// Runner executes the pipeline with a document cache.
//
// A Runner holds no per-run state; the same Runner may serve concurrent
// Execute calls when its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute loads opts.Input and returns the rendered document, serving it
// from the cache when the file and options are unchanged.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{}

	loadStart := time.Now()
	data, err := ReadInput(opts)
	if err != nil {
		return nil, err
	}
	result.ModelHash = cache.Hash(data)
	key := r.Keyer.DocumentKey(result.ModelHash, opts.DocumentKeyOpts())

	if !opts.Refresh {
		if doc, hit := r.lookup(ctx, key); hit {
			result.Document = doc
			result.CacheHit = true
			result.Stats.LoadTime = time.Since(loadStart)
			r.Logger.Info("served from cache", "input", opts.Input, "bytes", len(doc))
			return result, nil
		}
	}

	m, err := Decode(ctx, data, opts)
	if err != nil {
		return nil, err
	}
	result.Model = m
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ElementCount = m.ElementCount()
	result.Stats.RelationCount = len(m.Relations)

	r.Logger.Info("loaded model",
		"elements", result.Stats.ElementCount,
		"relations", result.Stats.RelationCount,
		"duration", result.Stats.LoadTime)

	renderStart := time.Now()
	doc, err := Render(ctx, m, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered document",
		"bytes", len(doc),
		"duration", result.Stats.RenderTime)

	r.store(ctx, key, doc)
	return result, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (string, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return "", false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, KeyTypeDocument)
		return "", false
	}
	observability.Cache().OnCacheHit(ctx, KeyTypeDocument)
	return string(data), true
}

func (r *Runner) store(ctx context.Context, key, doc string) {
	if err := r.Cache.Set(ctx, key, []byte(doc), cache.DefaultTTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, KeyTypeDocument, len(doc))
}

// Clear drops every cached document when the cache supports it.
func (r *Runner) Clear(ctx context.Context) error {
	c, ok := r.Cache.(cache.Clearer)
	if !ok {
		return pkerrors.New(pkerrors.ErrCodeUnsupported, "cache does not support clearing")
	}
	return c.Clear(ctx)
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
