package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show information about the speaker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Info(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newVolumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volume [VOLUME]",
		Short: "Get or set the volume of the speaker",
		Long:  "Print the speaker's volume, or set it to VOLUME percent (0-100).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.app.Volume(cmd.Context(), options(cmd))
			}
			return c.app.SetVolume(cmd.Context(), options(cmd), args[0])
		},
	}
}
