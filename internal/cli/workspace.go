package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/infra/config"
	"github.com/dimanech/aria-grid/internal/infra/jsondoc"
	"github.com/dimanech/aria-grid/internal/infra/markup"
	"github.com/dimanech/aria-grid/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config
}

// gridFlags are the per-command overrides of the grid settings.
type gridFlags struct {
	grid   string
	format string
	rows   string
	cols   string
}

func (f *gridFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.grid, "grid", "g", "", "Grid document (yaml, toml or json); defaults to grid.path")
	fs.StringVar(&f.format, "format", "", "Grid document format: yaml|toml|json (default: by extension)")
	fs.StringVar(&f.rows, "rows", "", "Row boundary policy: stop|loop|wrap")
	fs.StringVar(&f.cols, "cols", "", "Column boundary policy: stop|loop|wrap")
}

var gridBindings = config.FlagBindings{
	config.KeyGridPath:   "grid",
	config.KeyGridFormat: "format",
	config.KeyNavRows:    "rows",
	config.KeyNavCols:    "cols",
}

// loadWorkspace resolves the workspace and its settings. Outside a workspace
// the current directory is used with default settings.
func loadWorkspace(cmd *cobra.Command, workspaceFlag string, bind config.FlagBindings) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	// --grid is relative to where the user is, not to the workspace.
	if f := cmd.Flags().Lookup("grid"); f != nil && f.Changed && !filepath.IsAbs(f.Value.String()) {
		abs, err := filepath.Abs(f.Value.String())
		if err != nil {
			return nil, fmt.Errorf("invalid grid path: %w", err)
		}
		if err := cmd.Flags().Set("grid", abs); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(root, cmd.Flags(), bind)
	if err != nil {
		return nil, err
	}
	return &workspaceCtx{root: root, found: found, cfg: cfg}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, config.FileName)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().Resolve(wd)
}

// openSource picks the document loader for the configured grid file.
func openSource(cfg domain.Config) (*markup.Source, error) {
	format := cfg.Grid.Format
	if format == "" && strings.EqualFold(filepath.Ext(cfg.Grid.Path), ".json") {
		format = "json"
	}
	if format == "json" {
		return markup.NewFileSource(cfg.Grid.Path, jsondoc.Loader(jsondoc.SelectorsFrom(cfg.Grid))), nil
	}

	load, err := markup.LoaderFor(format, cfg.Grid.Path)
	if err != nil {
		return nil, err
	}
	return markup.NewFileSource(cfg.Grid.Path, load), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
