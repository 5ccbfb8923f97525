package config

import "github.com/dimanech/aria-grid/internal/domain"

// FileName is the workspace marker and settings file.
const FileName = "ariagrid.yaml"

// EnvPrefix prefixes environment overrides: ARIAGRID_NAVIGATION_ROWS etc.
const EnvPrefix = "ARIAGRID"

// Setting keys, shared by the file, env and flag layers.
const (
	KeyNavRows    = "navigation.rows"
	KeyNavCols    = "navigation.cols"
	KeyGridPath   = "grid.path"
	KeyGridFormat = "grid.format"
	KeyRowsPath   = "grid.rows_path"
	KeyCellsPath  = "grid.cells_path"
	KeyIDField    = "grid.id_field"
	KeyLabelField = "grid.label_field"
	KeyCellWidth  = "ui.cell_width"
	KeyWatch      = "ui.watch"
)

func defaults() map[string]any {
	d := domain.DefaultConfig()
	return map[string]any{
		KeyNavRows:    d.Navigation.Rows,
		KeyNavCols:    d.Navigation.Cols,
		KeyGridPath:   d.Grid.Path,
		KeyGridFormat: d.Grid.Format,
		KeyRowsPath:   d.Grid.RowsPath,
		KeyCellsPath:  d.Grid.CellsPath,
		KeyIDField:    d.Grid.IDField,
		KeyLabelField: d.Grid.LabelField,
		KeyCellWidth:  d.UI.CellWidth,
		KeyWatch:      d.UI.Watch,
	}
}
