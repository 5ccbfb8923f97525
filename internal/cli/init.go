package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dimanech/aria-grid/internal/infra/fsworkspace"
	"github.com/dimanech/aria-grid/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create an ariagrid workspace with sample grids",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			root, err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(dir, force)
			if err != nil {
				return err
			}

			ok := color.New(color.FgGreen, color.Bold)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s workspace ready at %s\n  try: ariagrid walk -w %s down right ctrl+end\n",
				ok.Sprint("✓"), root, root)
			return err
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing template files")
	return c
}
