package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/usecase"
)

// Screen geometry used by both View and mouse hit-testing.
const (
	marginTop   = 1
	marginLeft  = 2
	headerLines = 4
	cellGap     = 1

	minCellWidth     = 4
	defaultCellWidth = 12
)

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap
	help  help.Model
	log   *slog.Logger

	grid   *usecase.Grid
	router *inputRouter

	cellWidth int
	width     int
	toast     string
	done      bool
}

// Run hosts the grid in a full-screen program until the user quits. The grid
// is destroyed before Run returns.
func Run(deps Deps) error {
	m, err := newModel(deps)
	if err != nil {
		return err
	}

	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()

	if sm, ok := final.(safeModel); ok {
		sm.m.shutdown()
	} else {
		m.shutdown()
	}
	return err
}

func newModel(deps Deps) (model, error) {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	width := deps.CellWidth
	if width < minCellWidth {
		width = defaultCellWidth
	}

	router := &inputRouter{}
	grid := usecase.NewGrid(deps.Discovery, deps.Effector, router,
		usecase.WithNavigation(deps.Navigation),
		usecase.WithAttributes(deps.Attributes),
		usecase.WithLogger(log),
	)
	if err := grid.Init(); err != nil {
		return model{}, err
	}

	return model{
		theme:     DefaultTheme(),
		deps:      deps,
		keys:      defaultKeyMap(),
		help:      help.New(),
		log:       log,
		grid:      grid,
		router:    router,
		cellWidth: width,
	}, nil
}

func (m model) Init() tea.Cmd {
	return listenChanges(m.deps.Changes)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width - marginLeft
		return m, nil

	case gridChangedMsg:
		if msg.ev.Err != nil {
			m.log.Warn("tui.watch.error", "err", msg.ev.Err)
		}
		m.reinit("watch")
		return m, listenChanges(m.deps.Changes)

	case watchClosedMsg:
		m.log.Info("tui.watch.closed")
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		cell, ok := m.hitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if err := m.router.click(cell); err != nil {
			m.fail("click", err)
			return m, nil
		}
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.shutdown()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reinit):
			m.reinit("key")
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			on := !m.grid.NavigationEnabled()
			if err := m.grid.SetNavigationEnabled(on); err != nil {
				m.fail("toggle", err)
				return m, nil
			}
			if on {
				m.toast = "Navigation on"
			} else {
				m.toast = "Navigation paused (n to resume)"
			}
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		ev := keyEvent(msg)
		if ev == nil {
			return m, nil
		}
		handled, err := m.router.key(ev)
		if err != nil {
			m.fail("key", err)
			return m, nil
		}
		if !handled && !m.grid.NavigationEnabled() {
			m.toast = "Navigation paused (n to resume)"
			return m, nil
		}
		m.toast = ""
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}

	var lines []string
	for i := 0; i < marginTop; i++ {
		lines = append(lines, "")
	}

	nav := m.grid.Navigator()
	state := "navigation on"
	if !m.grid.NavigationEnabled() {
		state = "navigation paused"
	}
	lines = append(lines,
		m.theme.Title.Render("ariagrid"),
		m.theme.Subtitle.Render(ansi.Truncate(m.deps.Source, max(m.width-marginLeft, 20), "…")),
		m.theme.Subtitle.Render(fmt.Sprintf("rows: %s · cols: %s · %s", nav.Rows, nav.Cols, state)),
		"",
	)

	lines = append(lines, m.gridLines()...)
	lines = append(lines, "", m.statusLine(), m.theme.Help.Render(m.help.View(m.keys)))

	pad := strings.Repeat(" ", marginLeft)
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func (m model) gridLines() []string {
	idx := m.grid.Index()
	if idx == nil {
		return []string{m.theme.Subtitle.Render("(no grid)")}
	}
	active := m.activeCell()

	out := make([]string, 0, idx.RowCount())
	for r := 0; r < idx.RowCount(); r++ {
		n, _ := idx.RowLength(r)
		cells := make([]string, 0, n)
		for c := 0; c < n; c++ {
			cell, _ := idx.CellAt(r, c)
			cells = append(cells, m.renderCell(cell, cell == active))
		}
		out = append(out, strings.Join(cells, strings.Repeat(" ", cellGap)))
	}
	return out
}

func (m model) renderCell(c domain.Cell, focused bool) string {
	st := m.theme.Cell
	switch {
	case focused && m.grid.NavigationEnabled():
		st = m.theme.Focused
	case focused:
		st = m.theme.Paused
	case isTabStop(c):
		st = m.theme.TabStop
	}
	label := ansi.Truncate(cellLabel(c), m.cellWidth-2, "…")
	return st.Width(m.cellWidth).MaxWidth(m.cellWidth).Render(label)
}

func (m model) statusLine() string {
	if m.toast != "" {
		return m.theme.Toast.Render(m.toast)
	}
	pos, ok := m.grid.Position()
	if !ok {
		return ""
	}
	id := ""
	if c := m.grid.LastTransition().ToCell; c != nil {
		id = cellLabel(c)
	}
	return m.theme.Subtitle.Render(fmt.Sprintf("focus %s %s", pos, id))
}

// activeCell is the cell the effector last focused. Before the first move,
// or when that cell left the index on reinit, it is the cursor's cell.
func (m model) activeCell() domain.Cell {
	if t, ok := m.deps.Effector.(activeTracker); ok {
		if c, ok := t.ActiveCell(); ok {
			if p, found := m.grid.Index().Locate(c.CellID()); found {
				if at, err := m.grid.Index().CellAt(p.Row, p.Col); err == nil && at == c {
					return c
				}
			}
		}
	}
	return m.grid.LastTransition().ToCell
}

// hitTest maps a screen coordinate onto the cell drawn there.
func (m model) hitTest(x, y int) (domain.Cell, bool) {
	idx := m.grid.Index()
	if idx == nil {
		return nil, false
	}
	row := y - marginTop - headerLines
	if row < 0 || row >= idx.RowCount() {
		return nil, false
	}
	dx := x - marginLeft
	if dx < 0 {
		return nil, false
	}
	stride := m.cellWidth + cellGap
	if dx%stride >= m.cellWidth {
		return nil, false
	}
	cell, err := idx.CellAt(row, dx/stride)
	if err != nil {
		return nil, false
	}
	return cell, true
}

func (m *model) reinit(cause string) {
	if err := m.grid.Reinit(); err != nil {
		m.fail("reinit", err)
		return
	}
	m.toast = fmt.Sprintf("Reloaded %v", m.grid.Index().Shape())
	m.log.Info("tui.reinit", "cause", cause)
}

func (m *model) shutdown() {
	if m.done {
		return
	}
	m.done = true
	if err := m.grid.Destroy(); err != nil && !domain.IsKind(err, domain.KindDestroyed) {
		m.log.Error("tui.destroy.failed", "err", err)
	}
}

func (m *model) fail(where string, err error) {
	m.toast = userMessage(err)
	m.log.Error("tui."+where+".failed", "err", err)
}
