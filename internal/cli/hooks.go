package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("loading model", "path", path)
}

func (h logHooks) OnLoadComplete(_ context.Context, path string, elements int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("model load failed", "path", path, "error", err)
		return
	}
	h.logger.Debug("model loaded", "path", path, "elements", elements, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, name string) {
	h.logger.Debug("rendering document", "name", name)
}

func (h logHooks) OnRenderComplete(_ context.Context, name string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "name", name, "error", err)
		return
	}
	h.logger.Debug("document rendered", "name", name, "bytes", size, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
