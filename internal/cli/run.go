package cli

import (
	"github.com/spf13/cobra"

	"github.com/dimanech/aria-grid/internal/infra/logger"
	"github.com/dimanech/aria-grid/internal/infra/markup"
	"github.com/dimanech/aria-grid/internal/infra/watch"
	"github.com/dimanech/aria-grid/internal/ui/tui"
)

func runCmd(g *globalFlags) *cobra.Command {
	var gf gridFlags
	var noWatch bool

	c := &cobra.Command{
		Use:   "run",
		Short: "Navigate a grid document interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd, g.workspace, gridBindings)
			if err != nil {
				return err
			}

			defer setupLogging(ws.root, g.debug)()
			log := logger.For("tui")
			log.Info("run.start", "workspace", ws.root, "found", ws.found, "grid", ws.cfg.Grid.Path)

			src, err := openSource(ws.cfg)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Discovery:  src,
				Attributes: src,
				Effector:   markup.NewEffector(logger.For("effector")),
				Navigation: ws.cfg.Navigation,
				CellWidth:  ws.cfg.UI.CellWidth,
				Source:     ws.cfg.Grid.Path,
				Logger:     log,
				Debug:      g.debug,
			}

			if ws.cfg.UI.Watch && !noWatch {
				changes, err := watch.File(cmd.Context(), ws.cfg.Grid.Path, watch.WithLogger(logger.For("watch")))
				if err != nil {
					log.Warn("run.watch.unavailable", "err", err)
				} else {
					deps.Changes = changes
				}
			}

			return tui.Run(deps)
		},
	}

	gf.register(c.Flags())
	c.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload when the grid file changes")
	return c
}
