package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/ports"
)

// Grid is the roving-tabindex controller for one grid container. It owns the
// cell index and the focus cursor, and routes input into them.
//
// A Grid is driven from a single event loop and is not safe for concurrent use.
type Grid struct {
	discovery ports.CellDiscovery
	effector  ports.FocusEffector
	binder    ports.InputBinder
	attrs     ports.AttributeReader
	navCfg    domain.NavigationConfig
	log       *slog.Logger

	index     *domain.CellIndex
	cursor    *domain.FocusCursor
	last      domain.Transition
	unbind    func()
	destroyed bool
}

type GridOption func(*Grid)

// WithNavigation sets explicit boundary policies. Dimensions left empty fall
// back to the container attributes.
func WithNavigation(cfg domain.NavigationConfig) GridOption {
	return func(g *Grid) { g.navCfg = cfg }
}

func WithAttributes(r ports.AttributeReader) GridOption {
	return func(g *Grid) {
		if r != nil {
			g.attrs = r
		}
	}
}

func WithLogger(l *slog.Logger) GridOption {
	return func(g *Grid) {
		if l != nil {
			g.log = l
		}
	}
}

func NewGrid(d ports.CellDiscovery, e ports.FocusEffector, b ports.InputBinder, opts ...GridOption) *Grid {
	g := &Grid{
		discovery: d,
		effector:  e,
		binder:    b,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init builds the cell index, resolves the boundary policies, seeds the tab
// stop at (0,0) and binds input. On failure nothing is bound and no cursor
// exists.
func (g *Grid) Init() error {
	if g.destroyed {
		return destroyedError("grid.init")
	}
	if g.cursor != nil {
		return &domain.OpError{
			Op:   "grid.init",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("already initialized (use Reinit): %w", domain.ErrExecution),
		}
	}

	idx, err := g.build("grid.init")
	if err != nil {
		return err
	}

	nav, err := domain.ResolveNavigator(g.navCfg, g.attrs)
	if err != nil {
		return err
	}

	if err := g.seed(idx, nav); err != nil {
		return err
	}

	if g.binder != nil {
		g.unbind = g.binder.Bind(g.HandleKey, g.HandleClick)
	}

	g.log.Info("grid.init",
		"rows", idx.RowCount(),
		"shape", fmt.Sprint(idx.Shape()),
		"row_policy", nav.Rows.String(),
		"col_policy", nav.Cols.String(),
	)
	return nil
}

// Reinit rebuilds the index after the content changed, keeping the listeners
// and boundary policies. On failure the previous index stays in use.
func (g *Grid) Reinit() error {
	if g.destroyed {
		return destroyedError("grid.reinit")
	}
	if g.cursor == nil {
		return notInitialized("grid.reinit")
	}

	idx, err := g.build("grid.reinit")
	if err != nil {
		g.log.Warn("grid.reinit.failed", "err", err)
		return err
	}

	prev := g.cursor
	if err := g.seed(idx, prev.Navigator()); err != nil {
		return err
	}
	g.cursor.SetNavigationEnabled(prev.NavigationEnabled())

	g.log.Info("grid.reinit", "rows", idx.RowCount(), "shape", fmt.Sprint(idx.Shape()))
	return nil
}

// Destroy unbinds input and restores every managed cell's default marking.
// It may be called once; everything after it fails with KindDestroyed.
func (g *Grid) Destroy() error {
	if g.destroyed {
		return destroyedError("grid.destroy")
	}
	g.destroyed = true

	if g.unbind != nil {
		g.unbind()
		g.unbind = nil
	}
	if g.index != nil && g.effector != nil {
		g.index.Each(func(_ domain.Position, c domain.Cell) {
			g.effector.RestoreDefault(c)
		})
	}

	g.index = nil
	g.cursor = nil
	g.log.Info("grid.destroy")
	return nil
}

// HandleKey applies one keydown. Nil events and unknown keys are not consumed.
// While navigation is disabled every key is ignored.
func (g *Grid) HandleKey(ev *domain.KeyEvent) (bool, error) {
	if g.destroyed {
		return false, destroyedError("grid.handle_key")
	}
	if ev == nil {
		return false, nil
	}
	if g.cursor == nil {
		return false, notInitialized("grid.handle_key")
	}
	if !g.cursor.NavigationEnabled() {
		return false, nil
	}

	target, ok := g.cursor.Target(*ev)
	if !ok {
		return false, nil
	}
	g.moveTo(target, ev.String())
	return true, nil
}

// HandleClick focuses the clicked cell. It is not gated by
// SetNavigationEnabled.
func (g *Grid) HandleClick(cell domain.Cell) error {
	if g.destroyed {
		return destroyedError("grid.handle_click")
	}
	if g.cursor == nil {
		return notInitialized("grid.handle_click")
	}
	if cell == nil {
		return nil
	}

	p, ok := g.index.Locate(cell.CellID())
	if !ok {
		return &domain.OpError{
			Op:   "grid.handle_click",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("cell %q is not part of the grid: %w", cell.CellID(), domain.ErrNotFound),
		}
	}
	g.moveTo(p, "click")
	return nil
}

// SetNavigationEnabled toggles directional input.
func (g *Grid) SetNavigationEnabled(on bool) error {
	if g.destroyed {
		return destroyedError("grid.set_navigation")
	}
	if g.cursor == nil {
		return notInitialized("grid.set_navigation")
	}
	g.cursor.SetNavigationEnabled(on)
	return nil
}

func (g *Grid) NavigationEnabled() bool {
	return g.cursor != nil && g.cursor.NavigationEnabled()
}

// Position returns the cursor position; ok is false before Init or after
// Destroy.
func (g *Grid) Position() (domain.Position, bool) {
	if g.cursor == nil {
		return domain.Position{}, false
	}
	return g.cursor.Position(), true
}

func (g *Grid) Navigator() domain.Navigator {
	if g.cursor == nil {
		return domain.Navigator{}
	}
	return g.cursor.Navigator()
}

func (g *Grid) Index() *domain.CellIndex { return g.index }

// LastTransition is the most recent move, or the seed after Init/Reinit.
func (g *Grid) LastTransition() domain.Transition { return g.last }

func (g *Grid) moveTo(target domain.Position, cause string) domain.Transition {
	t := g.cursor.RequestMove(target)
	g.apply(t)
	g.log.Debug("grid.move",
		"cause", cause,
		"target", target.String(),
		"from", t.From.String(),
		"to", t.To.String(),
	)
	g.last = t
	return t
}

func (g *Grid) apply(t domain.Transition) {
	if g.effector == nil {
		return
	}
	g.effector.UnmarkTabStop(t.FromCell)
	g.effector.MarkTabStop(t.ToCell)
	g.effector.Focus(t.ToCell)
}

func (g *Grid) build(op string) (*domain.CellIndex, error) {
	if g.discovery == nil {
		return nil, &domain.OpError{
			Op:   op,
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("no cell discovery configured: %w", domain.ErrExecution),
		}
	}

	rows, err := g.discovery.Discover()
	if err != nil {
		return nil, err
	}

	idx, err := domain.BuildCellIndex(rows)
	if err != nil {
		g.log.Warn(op+".empty", "err", err)
		return nil, err
	}
	return idx, nil
}

// seed installs idx with a fresh cursor and makes (0,0) the only tab stop.
func (g *Grid) seed(idx *domain.CellIndex, nav domain.Navigator) error {
	cur, err := domain.NewFocusCursor(idx, nav)
	if err != nil {
		return err
	}

	if g.effector != nil {
		idx.Each(func(_ domain.Position, c domain.Cell) {
			g.effector.UnmarkTabStop(c)
		})
		g.effector.MarkTabStop(cur.Current())
	}

	g.index = idx
	g.cursor = cur
	g.last = domain.Transition{To: cur.Position(), ToCell: cur.Current()}
	return nil
}

func destroyedError(op string) error {
	return &domain.OpError{Op: op, Kind: domain.KindDestroyed, Err: domain.ErrDestroyed}
}

func notInitialized(op string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Err:  fmt.Errorf("grid not initialized: %w", domain.ErrExecution),
	}
}
