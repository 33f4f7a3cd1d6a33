package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rebarcad/cutlist/pkg/buildinfo"
)

// Execute runs the cutlist CLI and returns an error if any command
// fails.
//
// The root command wires up the render and serve subcommands and
// configures logging from the --verbose flag. The logger is attached
// to the context and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cutlist",
		Short:        "cutlist renders rebar shape cut lists as SVG",
		Long:         `cutlist draws reinforcement-bar shapes with per-segment dimensions and assembles them into tabular cut-list sheets for construction drawings.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
