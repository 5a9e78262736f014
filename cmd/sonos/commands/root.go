// Package commands implements the CLI commands for sonos.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sonos/internal/app"
	"go.trai.ch/sonos/internal/build"
)

// CLI represents the command line interface for sonos.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Track(ctx context.Context, opts app.Options) error
	Next(ctx context.Context, opts app.Options) error
	Previous(ctx context.Context, opts app.Options) error
	Seek(ctx context.Context, opts app.Options, timestamp string) error
	Info(ctx context.Context, opts app.Options) error
	Volume(ctx context.Context, opts app.Options) error
	SetVolume(ctx context.Context, opts app.Options, level string) error
	Rooms(ctx context.Context, opts app.Options, invalidate bool) error
	Clean(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sonos",
		Short:         "Control your Sonos speakers from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Declared by hand so that -v stays free for --verbose.
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("controller", "c", "", "IP address or room name of the speaker to control")
	flags.Bool("json", false, "Print results and logs as JSON")
	flags.BoolP("yes", "y", false, "Accept suggested speaker names without asking")
	flags.BoolP("verbose", "v", false, "Log discovery and resolution timings")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newTrackCmd())
	rootCmd.AddCommand(c.newNextCmd())
	rootCmd.AddCommand(c.newPreviousCmd())
	rootCmd.AddCommand(c.newSeekCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVolumeCmd())
	rootCmd.AddCommand(c.newRoomsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// options reads the global flags.
func options(cmd *cobra.Command) app.Options {
	controller, _ := cmd.Flags().GetString("controller")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	yes, _ := cmd.Flags().GetBool("yes")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return app.Options{
		Controller: controller,
		JSON:       jsonOutput,
		AssumeYes:  yes,
		Verbose:    verbose,
	}
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
