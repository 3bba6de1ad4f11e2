package commands

import (
	"github.com/spf13/cobra"
	"go.ledgerline.dev/preflight/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Compile-check the pipeline and extractor scripts without running anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runChain(cmd.Context(), app.RunOptions{CheckOnly: true})
		},
	}
}
