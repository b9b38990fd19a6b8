package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/localgod/plantkit/pkg/naming"
	"github.com/localgod/plantkit/pkg/sprite"
)

// normalizeCommand prints the identifier generated for each name, one
// per line, in argument order.
func (c *CLI) normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize [name...]",
		Short:   "Print the identifiers generated for element names",
		Example: `  plantkit normalize "Order Service" "Billing (legacy)"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), naming.Normalize(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// spriteCommand prints the sprite derived for each element or relation
// type.
func (c *CLI) spriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sprite [type...]",
		Short:   "Print the sprite derived for element or relation types",
		Example: `  plantkit sprite Business_Process Rel_Triggering`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, t := range args {
				if i > 0 {
					fmt.Fprintln(w)
				}
				s := sprite.Derive(t)
				printKeyValue(w, "type", t)
				printKeyValue(w, "alias", s.Alias)
				printKeyValue(w, "path", s.Path)
				printKeyValue(w, "label", s.Label)
			}
			return nil
		},
	}
}
