package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/classdex/internal/app"
)

const defaultDescriptor = "classdex.yaml"

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [descriptor]",
		Short: "Build the composite class index for a module",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor := defaultDescriptor
			if len(args) > 0 {
				descriptor = args[0]
			}

			noDeps, err := cmd.Flags().GetBool("no-deps")
			if err != nil {
				return err
			}

			return c.app.Run(cmd.Context(), descriptor, app.RunOptions{
				DisableDependencies: noDeps,
			})
		},
	}

	cmd.Flags().Bool("no-deps", false, "Index only the module output, skipping dependency archives")

	return cmd
}
