package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/infra/config"
)

func inspectCmd(g *globalFlags) *cobra.Command {
	var gf gridFlags

	c := &cobra.Command{
		Use:   "inspect",
		Short: "Show the cells discovered in a grid document and the resolved boundary policies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(cmd, g.workspace, gridBindings)
			if err != nil {
				return err
			}

			src, err := openSource(ws.cfg)
			if err != nil {
				return err
			}
			rows, err := src.Discover()
			if err != nil {
				return err
			}
			idx, err := domain.BuildCellIndex(rows)
			if err != nil {
				return err
			}
			nav, err := domain.ResolveNavigator(ws.cfg.Navigation, src)
			if err != nil {
				return err
			}

			printInspect(cmd.OutOrStdout(), ws, idx, nav)
			return nil
		},
	}

	gf.register(c.Flags())
	return c
}

func printInspect(w io.Writer, ws *workspaceCtx, idx *domain.CellIndex, nav domain.Navigator) {
	bold := color.New(color.Bold)

	workspace := ws.root
	if !ws.found {
		workspace += " (no " + config.FileName + ", defaults)"
	}

	head := uitable.New()
	head.Separator = "  "
	head.AddRow(bold.Sprint("Workspace"), workspace)
	head.AddRow(bold.Sprint("Grid"), ws.cfg.Grid.Path)
	head.AddRow(bold.Sprint("Rows"), policySource(nav.Rows, ws.cfg.Navigation.Rows))
	head.AddRow(bold.Sprint("Columns"), policySource(nav.Cols, ws.cfg.Navigation.Cols))
	_, _ = fmt.Fprintln(w, head)
	_, _ = fmt.Fprintln(w)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("Row"), bold.Sprint("Cells"), bold.Sprint("Ids"))
	for r := 0; r < idx.RowCount(); r++ {
		n, _ := idx.RowLength(r)
		ids := make([]string, 0, n)
		for c := 0; c < n; c++ {
			cell, _ := idx.CellAt(r, c)
			ids = append(ids, cell.CellID())
		}
		tbl.AddRow(fmt.Sprint(r), fmt.Sprint(n), strings.Join(ids, " "))
	}
	tbl.RightAlign(0)
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(w, tbl)
}

func policySource(p domain.BoundaryPolicy, explicit string) string {
	if explicit != "" {
		return p.String() + " (configured)"
	}
	return p.String() + " (document)"
}
