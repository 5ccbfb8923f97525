package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dimanech/aria-grid/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	debug     bool
	workspace string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "ariagrid",
		Short:        "ariagrid: keyboard focus navigation over cell grids",
		SilenceUsage: true,
	}
	run := runCmd(g)
	cmd.RunE = run.RunE
	cmd.Flags().AddFlagSet(run.Flags())

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .ariagrid/logs/ariagrid.log")
	cmd.PersistentFlags().StringVarP(&g.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(run, walkCmd(g), inspectCmd(g), initCmd(), versionCmd())
	return cmd
}

// setupLogging points the process logger at root. Logging is best effort: a
// failure leaves the discard logger in place.
func setupLogging(root string, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
