package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dimanech/aria-grid/internal/domain"
)

func mapConfig(root, path string, v *viper.Viper) (domain.Config, error) {
	cfg := domain.Config{
		Navigation: domain.NavigationConfig{
			Rows: strings.ToLower(strings.TrimSpace(v.GetString(KeyNavRows))),
			Cols: strings.ToLower(strings.TrimSpace(v.GetString(KeyNavCols))),
		},
		Grid: domain.GridSourceConfig{
			Path:       strings.TrimSpace(v.GetString(KeyGridPath)),
			Format:     strings.ToLower(strings.TrimSpace(v.GetString(KeyGridFormat))),
			RowsPath:   strings.TrimSpace(v.GetString(KeyRowsPath)),
			CellsPath:  strings.TrimSpace(v.GetString(KeyCellsPath)),
			IDField:    strings.TrimSpace(v.GetString(KeyIDField)),
			LabelField: strings.TrimSpace(v.GetString(KeyLabelField)),
		},
		UI: domain.UIConfig{
			CellWidth: v.GetInt(KeyCellWidth),
			Watch:     v.GetBool(KeyWatch),
		},
	}

	for key, val := range map[string]string{KeyNavRows: cfg.Navigation.Rows, KeyNavCols: cfg.Navigation.Cols} {
		if val == "" {
			continue
		}
		if _, err := domain.ParseBoundaryPolicy(val); err != nil {
			return domain.DefaultConfig(), invalidField(path, key, fmt.Sprintf("unsupported boundary %q (want stop, loop or wrap)", val))
		}
	}

	if cfg.Grid.Path == "" {
		return domain.DefaultConfig(), invalidField(path, KeyGridPath, "grid path is required")
	}
	if !filepath.IsAbs(cfg.Grid.Path) && root != "" {
		cfg.Grid.Path = filepath.Join(root, cfg.Grid.Path)
	}

	switch cfg.Grid.Format {
	case "", "yaml", "yml", "toml", "json":
	default:
		return domain.DefaultConfig(), invalidField(path, KeyGridFormat, fmt.Sprintf("unsupported format %q", cfg.Grid.Format))
	}

	if cfg.UI.CellWidth < 4 {
		return domain.DefaultConfig(), invalidField(path, KeyCellWidth, fmt.Sprintf("must be at least 4, got %d", cfg.UI.CellWidth))
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
