package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTrackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Show the current track information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Track(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Skip to the next track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Next(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newPreviousCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "previous",
		Aliases: []string{"prev"},
		Short:   "Go back to the last track",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Previous(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newSeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seek TIMESTAMP",
		Short: "Seek to a specific timestamp on the current track",
		Long:  "Seek to a specific timestamp on the current track, given as hh:mm:ss, mm:ss or ss.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Seek(cmd.Context(), options(cmd), args[0])
		},
	}
}
