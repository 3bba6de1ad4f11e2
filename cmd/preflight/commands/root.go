// Package commands implements the CLI commands for the preflight tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.ledgerline.dev/preflight/internal/app"
	"go.ledgerline.dev/preflight/internal/build"
	"go.ledgerline.dev/preflight/internal/core/ports"
)

// CLI represents the command line interface for preflight.
type CLI struct {
	app     *app.App
	loader  ports.ConfigLoader
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and config loader.
func New(a *app.App, loader ports.ConfigLoader) *CLI {
	rootCmd := &cobra.Command{
		Use:           "preflight",
		Short:         "Pre-flight runner for the finances data pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "preflight.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable pipeline debug output (exported as PIPE_DEBUG)")

	c := &CLI{
		app:     a,
		loader:  loader,
		rootCmd: rootCmd,
	}

	// Zero-argument invocation performs the full run.
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.runChain(cmd.Context(), app.RunOptions{})
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// runChain loads the configuration and hands it to the app. The config's
// debug value is the default; an explicit --debug flag wins.
func (c *CLI) runChain(ctx context.Context, opts app.RunOptions) error {
	configPath, err := c.rootCmd.PersistentFlags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := c.loader.Load(configPath)
	if err != nil {
		return err
	}

	opts.Debug = cfg.Debug
	if f := c.rootCmd.PersistentFlags().Lookup("debug"); f != nil && f.Changed {
		opts.Debug, _ = c.rootCmd.PersistentFlags().GetBool("debug")
	}

	return c.app.Run(ctx, cfg, opts)
}
