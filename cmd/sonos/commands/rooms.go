package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "rooms [invalidate]",
		Short:     "List all of your speakers",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"invalidate"},
		RunE: func(cmd *cobra.Command, args []string) error {
			invalidate, _ := cmd.Flags().GetBool("invalidate")
			if len(args) == 1 {
				invalidate = true
			}
			return c.app.Rooms(cmd.Context(), options(cmd), invalidate)
		},
	}
	cmd.Flags().BoolP("invalidate", "i", false, "Ignore the speaker cache and scan the network again")
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the speaker cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context(), options(cmd))
		},
	}
}
