package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/localgod/plantkit/pkg/io"
	"github.com/localgod/plantkit/pkg/pipeline"
)

// stdoutPath selects standard output for the rendered document.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string
	format       string
	name         string
	title        string
	scale        float64
	layout       string
	includes     []string
	spriteSource string
	noCache      bool
	refresh      bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [model]",
		Short: "Render a model file to a PlantUML document",
		Long: `Render a model file to a PlantUML document.

The model format is taken from the file extension (.json, .toml, .yaml,
.yml, .csv) unless --format is given. Document settings given on the
command line override the ones declared in the model.`,
		Example: `  plantkit render landscape.yaml
  plantkit render landscape.json -o landscape.puml --title "Order flow"
  plantkit render processes.csv -o - | plantuml -pipe > processes.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, - for stdout (default: <model>.puml)")
	cmd.Flags().StringVar(&opts.format, "format", "", "model format: json, toml, yaml or csv (default: from extension)")
	cmd.Flags().StringVar(&opts.name, "name", "", "diagram name")
	cmd.Flags().StringVar(&opts.title, "title", "", "diagram title")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "diagram scale")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "layout directive, e.g. \"top to bottom direction\"")
	cmd.Flags().StringSliceVar(&opts.includes, "include", nil, "additional !include lines (repeatable)")
	cmd.Flags().StringVar(&opts.spriteSource, "sprite-source", "", "library path prefix for sprite includes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the document cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached document exists")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:        input,
		Format:       opts.format,
		Name:         opts.name,
		Title:        opts.title,
		Scale:        opts.scale,
		Layout:       opts.layout,
		Includes:     opts.includes,
		SpriteSource: opts.spriteSource,
		Refresh:      opts.refresh,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = defaultOutputPath(input)
	}
	if out == stdoutPath {
		_, err := io.WriteString(cmd.OutOrStdout(), result.Document)
		return err
	}

	if err := pkgio.WriteDocument(out, result.Document); err != nil {
		return err
	}
	prog.done("Rendered "+filepath.Base(out), "cached", result.CacheHit)

	w := cmd.OutOrStdout()
	printSuccess(w, "Rendered %s", filepath.Base(input))
	printFile(w, out)
	printStats(w, result.Stats.ElementCount, result.Stats.RelationCount, result.CacheHit)
	return nil
}

// defaultOutputPath replaces the model extension with .puml.
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".puml"
}
