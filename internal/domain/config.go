package domain

// Config represents the ariagrid workspace configuration loaded from
// ariagrid.yaml (plus environment and flag overrides).
type Config struct {
	Navigation NavigationConfig
	Grid       GridSourceConfig
	UI         UIConfig
}

// NavigationConfig holds the explicitly configured policies. Empty values mean
// "not configured here"; the grid container's attributes decide instead.
type NavigationConfig struct {
	Rows string
	Cols string
}

type GridSourceConfig struct {
	Path   string
	Format string // yaml, toml or json; empty picks by extension

	// JSON discovery selectors.
	RowsPath   string
	CellsPath  string
	IDField    string
	LabelField string
}

type UIConfig struct {
	CellWidth int
	Watch     bool
}

// DefaultConfig provides sane defaults if ariagrid.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Grid: GridSourceConfig{
			Path:       "grids/demo.yaml",
			RowsPath:   "$.rows[*]",
			CellsPath:  "$.cells[*]",
			IDField:    "id",
			LabelField: "label",
		},
		UI: UIConfig{
			CellWidth: 12,
			Watch:     true,
		},
	}
}

// Explicit parses the configured policies and reports which dimensions were set.
func (n NavigationConfig) Explicit() (nav Navigator, rowsSet, colsSet bool, err error) {
	if n.Rows != "" {
		if nav.Rows, err = ParseBoundaryPolicy(n.Rows); err != nil {
			return Navigator{}, false, false, err
		}
		rowsSet = true
	}
	if n.Cols != "" {
		if nav.Cols, err = ParseBoundaryPolicy(n.Cols); err != nil {
			return Navigator{}, false, false, err
		}
		colsSet = true
	}
	return nav, rowsSet, colsSet, nil
}

// AttrState is a tri-state attribute reading.
type AttrState int

const (
	AttrAbsent AttrState = iota
	AttrFalsy
	AttrTruthy
)

// Container attributes that select boundary policies. The wrap attributes
// name the direction focus flows in: data-wrap-rows lets a column overflow
// continue into the next row (column Wrap), data-wrap-cols lets a row
// overflow continue into the next column (row Wrap). The loop attributes name
// the dimension that loops.
const (
	AttrWrapRows = "data-wrap-rows"
	AttrLoopRows = "data-loop-rows"
	AttrWrapCols = "data-wrap-cols"
	AttrLoopCols = "data-loop-cols"
)

// AttributeSource is anything that can answer a tri-state attribute query.
type AttributeSource interface {
	Attribute(name string) AttrState
}

// NavigatorFromAttributes picks each dimension's policy: wrap wins over loop,
// loop wins over the default stop.
func NavigatorFromAttributes(src AttributeSource) Navigator {
	if src == nil {
		return Navigator{}
	}
	return Navigator{
		Rows: pickPolicy(src, AttrWrapCols, AttrLoopRows),
		Cols: pickPolicy(src, AttrWrapRows, AttrLoopCols),
	}
}

func pickPolicy(src AttributeSource, wrapAttr, loopAttr string) BoundaryPolicy {
	switch {
	case src.Attribute(wrapAttr) == AttrTruthy:
		return BoundaryWrap
	case src.Attribute(loopAttr) == AttrTruthy:
		return BoundaryLoop
	default:
		return BoundaryStop
	}
}

// ResolveNavigator merges explicit configuration with attribute fallbacks.
func ResolveNavigator(cfg NavigationConfig, src AttributeSource) (Navigator, error) {
	explicit, rowsSet, colsSet, err := cfg.Explicit()
	if err != nil {
		return Navigator{}, err
	}
	nav := NavigatorFromAttributes(src)
	if rowsSet {
		nav.Rows = explicit.Rows
	}
	if colsSet {
		nav.Cols = explicit.Cols
	}
	return nav, nil
}
