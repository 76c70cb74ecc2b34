// Package commands implements the CLI commands for the classdex tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/classdex/internal/app"
	"go.trai.ch/classdex/internal/core/ports"
)

// CLI represents the command line interface for classdex.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "classdex",
		Short:         "Class index builder for JVM build modules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		c.logger.SetDebug(debug)
		return nil
	}

	rootCmd.AddCommand(c.newIndexCmd())
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
