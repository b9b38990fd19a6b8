package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	pkgio "github.com/localgod/plantkit/pkg/io"
)

// convertCommand creates the convert command. It reads any supported
// model format and writes JSON, TOML or YAML, chosen by extension.
func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a model file to another format",
		Example: `  plantkit convert processes.csv processes.yaml
  plantkit convert landscape.toml landscape.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			m, err := pkgio.Import(args[0])
			if err != nil {
				return err
			}
			if err := pkgio.Export(m, args[1]); err != nil {
				return err
			}
			prog.done("Converted "+filepath.Base(args[0]), "output", args[1])

			w := cmd.OutOrStdout()
			printSuccess(w, "Converted %d elements, %d relations", m.ElementCount(), len(m.Relations))
			printFile(w, args[1])
			printNextStep(w, "Render it", "plantkit render "+args[1])
			return nil
		},
	}
}
