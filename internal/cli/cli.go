// Package cli implements the plantkit command-line interface.
//
// # Commands
//
//   - render: render a model file (JSON, TOML, YAML or CSV) to PlantUML
//   - convert: rewrite a model file in another format
//   - normalize: print the identifiers generated for element names
//   - sprite: print the sprite derived for element or relation types
//   - cache: manage the rendered-document cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands log through a charmbracelet/log logger carried in the
// command context; --verbose (-v) switches it to debug level.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/localgod/plantkit/pkg/buildinfo"
	"github.com/localgod/plantkit/pkg/cache"
	"github.com/localgod/plantkit/pkg/observability"
	"github.com/localgod/plantkit/pkg/pipeline"
)

const (
	// appName is the application name used for directories and display.
	appName = "plantkit"

	// envCacheURL selects a Redis cache when --cache-url is not given.
	envCacheURL = "PLANTKIT_CACHE_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cacheURL string
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "PlantKit renders architecture models as PlantUML diagrams",
		Long:         `PlantKit turns a model of nested, typed elements and the relations between them into a PlantUML document with ArchiMate sprites and a legend.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetPipelineHooks(logHooks{logger: c.Logger})
			observability.SetCacheHooks(logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.cacheURL, "cache-url", os.Getenv(envCacheURL),
		"redis URL for a shared document cache (default: local file cache)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.normalizeCommand())
	root.AddCommand(c.spriteCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. Keys are scoped to the
// running build.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.cacheURL != "" {
		rc, err := cache.NewRedisCache(c.cacheURL)
		if err != nil {
			return nil, err
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// cacheDir returns the cache directory following XDG ($XDG_CACHE_HOME/plantkit,
// falling back to ~/.cache/plantkit).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
