package commands

import (
	"github.com/spf13/cobra"
	"go.ledgerline.dev/preflight/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Validate the environment and run the pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runChain(cmd.Context(), app.RunOptions{})
		},
	}
}
