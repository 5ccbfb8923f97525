package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/infra/logger"
	"github.com/dimanech/aria-grid/internal/infra/markup"
	"github.com/dimanech/aria-grid/internal/infra/walkstore"
	"github.com/dimanech/aria-grid/internal/usecase"
)

func walkCmd(g *globalFlags) *cobra.Command {
	var gf gridFlags
	var output string
	var save bool

	c := &cobra.Command{
		Use:   "walk [steps...]",
		Short: "Replay key and click steps against a grid and print each focus move",
		Long: "Steps are up, down, left, right, home, end (optionally prefixed with ctrl+)\n" +
			"and click:<cell-id>, separated by spaces or commas.",
		Example: "  ariagrid walk down right ctrl+end click:mon",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := strings.Join(args, " ")
			steps, err := domain.ParseKeyScript(script)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(cmd, g.workspace, gridBindings)
			if err != nil {
				return err
			}
			defer setupLogging(ws.root, g.debug)()

			src, err := openSource(ws.cfg)
			if err != nil {
				return err
			}

			grid := usecase.NewGrid(src, markup.NewEffector(logger.For("effector")), nil,
				usecase.WithNavigation(ws.cfg.Navigation),
				usecase.WithAttributes(src),
				usecase.WithLogger(logger.For("grid")),
			)
			if err := grid.Init(); err != nil {
				return err
			}
			defer func() { _ = grid.Destroy() }()

			start, _ := grid.Position()
			startID := grid.LastTransition().ToCell.CellID()

			out, walkErr := usecase.Walk(grid, src, steps)
			entries := walkEntries(start, startID, out)
			if err := printWalk(cmd.OutOrStdout(), output, entries); err != nil {
				return err
			}

			if save {
				nav := grid.Navigator()
				art := domain.WalkArtifact{
					GridPath:   ws.cfg.Grid.Path,
					Script:     script,
					RowsPolicy: nav.Rows.String(),
					ColsPolicy: nav.Cols.String(),
					Shape:      grid.Index().Shape(),
					Entries:    entries,
				}
				if walkErr != nil {
					art.Error = walkErr.Error()
				}
				id, err := walkstore.NewJSONStore(ws.root, walkstore.WithIndex(true)).SaveWalk(art)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "saved walk %s\n", id)
			}
			return walkErr
		},
	}

	gf.register(c.Flags())
	c.Flags().StringVarP(&output, "output", "o", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&save, "save", false, "Save the transcript under "+walkstore.DefaultDir)
	return c
}

// walkEntries puts the starting position first.
func walkEntries(start domain.Position, startID string, steps []usecase.WalkStep) []domain.WalkEntry {
	out := make([]domain.WalkEntry, 0, len(steps)+1)
	out = append(out, domain.WalkEntry{Step: "start", Handled: true, Row: start.Row, Col: start.Col, Cell: startID})
	for _, s := range steps {
		out = append(out, domain.WalkEntry{
			Step:    s.Step.String(),
			Handled: s.Handled,
			Row:     s.Position.Row,
			Col:     s.Position.Col,
			Cell:    s.CellID,
		})
	}
	return out
}

func printWalk(w io.Writer, format string, entries []domain.WalkEntry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)

	case "pretty", "":
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("#"), bold.Sprint("Step"), bold.Sprint("Position"), bold.Sprint("Cell"))
		for i, e := range entries {
			step := e.Step
			switch {
			case i == 0:
				step = faint.Sprint(step)
			case !e.Handled:
				step = faint.Sprint(step + " (ignored)")
			}
			pos := domain.Position{Row: e.Row, Col: e.Col}
			tbl.AddRow(fmt.Sprint(i), step, pos.String(), e.Cell)
		}
		tbl.RightAlign(0)

		_, err := fmt.Fprintln(w, tbl)
		return err

	default:
		return fmt.Errorf("unsupported output %q (expected pretty|json)", format)
	}
}
