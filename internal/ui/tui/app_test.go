package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/infra/markup"
	"github.com/dimanech/aria-grid/internal/infra/watch"
)

// raggedDoc builds rows of roving-target gridcells named r<row>c<col>.
func raggedDoc(lengths ...int) *markup.Document {
	root := markup.NodeSpec{ID: "grid"}
	for r, n := range lengths {
		row := markup.NodeSpec{ID: "row" + string(rune('0'+r)), Role: markup.RoleRow}
		for c := 0; c < n; c++ {
			row.Children = append(row.Children, markup.NodeSpec{
				ID:           "r" + string(rune('0'+r)) + "c" + string(rune('0'+c)),
				Role:         markup.RoleGridCell,
				RovingTarget: true,
			})
		}
		root.Children = append(root.Children, row)
	}
	return markup.NewDocument("test", markup.Build(root))
}

func newTestModel(t *testing.T, doc *markup.Document, nav domain.NavigationConfig) (model, *markup.Effector) {
	t.Helper()
	src := markup.NewDocumentSource(doc)
	eff := markup.NewEffector(nil)
	m, err := newModel(Deps{
		Discovery:  src,
		Attributes: src,
		Effector:   eff,
		Navigation: nav,
		CellWidth:  8,
		Source:     "test",
	})
	require.NoError(t, err)
	return m, eff
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	require.True(t, ok)
	return mm, cmd
}

func pos(t *testing.T, m model) domain.Position {
	t.Helper()
	p, ok := m.grid.Position()
	require.True(t, ok)
	return p
}

func TestModel_ArrowKeysMoveFocus(t *testing.T) {
	m, eff := newTestModel(t, raggedDoc(3, 3, 3), domain.NavigationConfig{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, domain.Position{Row: 1, Col: 1}, pos(t, m))
	require.Equal(t, "r1c1", eff.Active().CellID())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlEnd})
	require.Equal(t, domain.Position{Row: 2, Col: 2}, pos(t, m))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyHome})
	require.Equal(t, domain.Position{Row: 2, Col: 0}, pos(t, m))

	// Stop policy clamps.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, domain.Position{Row: 2, Col: 0}, pos(t, m))
}

func TestModel_OnlyFocusedCellIsTabStop(t *testing.T) {
	doc := raggedDoc(2, 2)
	m, _ := newTestModel(t, doc, domain.NavigationConfig{Cols: "wrap"})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, domain.Position{Row: 1, Col: 0}, pos(t, m))

	stops := 0
	for _, row := range doc.Rows() {
		for _, n := range row {
			if n.IsTabStop() {
				stops++
				require.Equal(t, "r1c0", n.CellID())
			}
		}
	}
	require.Equal(t, 1, stops)
}

func TestModel_ToggleNavigation(t *testing.T) {
	m, _ := newTestModel(t, raggedDoc(3, 3), domain.NavigationConfig{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	require.False(t, m.grid.NavigationEnabled())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, domain.Position{}, pos(t, m))
	require.Contains(t, m.toast, "paused")

	// clicks are never gated
	m, _ = send(t, m, tea.MouseMsg{X: marginLeft + 9, Y: marginTop + headerLines + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, domain.Position{Row: 1, Col: 1}, pos(t, m))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, domain.Position{Row: 1, Col: 1}, pos(t, m), "stop clamps at the last row")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, domain.Position{Row: 0, Col: 1}, pos(t, m))
}

func TestModel_HighlightFollowsEffector(t *testing.T) {
	doc := raggedDoc(3, 3, 3)
	m, eff := newTestModel(t, doc, domain.NavigationConfig{})

	require.Nil(t, eff.Active())
	require.Equal(t, "r0c0", m.activeCell().CellID(), "before any move the cursor cell is shown")

	m, _ = send(t, m, tea.MouseMsg{X: marginLeft + 9, Y: marginTop + headerLines + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, "r2c1", eff.Active().CellID())
	require.Same(t, eff.Active(), m.activeCell())

	// A focused node that is not in the index is not highlighted.
	stray := markup.Build(markup.NodeSpec{ID: "r2c1", Role: markup.RoleGridCell, RovingTarget: true})
	eff.Focus(stray)
	require.Same(t, eff.Active(), stray)
	require.NotSame(t, stray, m.activeCell())
	require.Equal(t, "r2c1", m.activeCell().CellID())
}

func TestModel_HitTest(t *testing.T) {
	m, _ := newTestModel(t, raggedDoc(3, 1, 3), domain.NavigationConfig{})
	top := marginTop + headerLines

	cases := []struct {
		x, y int
		id   string
	}{
		{marginLeft, top, "r0c0"},
		{marginLeft + 7, top, "r0c0"},
		{marginLeft + 9, top, "r0c1"},
		{marginLeft + 18, top + 2, "r2c2"},
		{marginLeft + 8, top, ""},      // gap
		{marginLeft + 9, top + 1, ""},  // past the short row
		{marginLeft, top - 1, ""},      // header
		{marginLeft - 1, top, ""},      // margin
		{marginLeft, top + 3, ""},      // below the grid
	}
	for _, c := range cases {
		cell, ok := m.hitTest(c.x, c.y)
		if c.id == "" {
			require.False(t, ok, "(%d,%d)", c.x, c.y)
			continue
		}
		require.True(t, ok, "(%d,%d)", c.x, c.y)
		require.Equal(t, c.id, cell.CellID())
	}
}

func TestModel_ViewRendersEveryRow(t *testing.T) {
	m, _ := newTestModel(t, raggedDoc(3, 1, 3), domain.NavigationConfig{Rows: "loop"})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	out := m.View()
	lines := strings.Split(out, "\n")
	require.Contains(t, lines[marginTop], "ariagrid")
	require.Contains(t, out, "rows: loop")
	require.Contains(t, lines[marginTop+headerLines], "r0c2")
	require.Contains(t, lines[marginTop+headerLines+1], "r1c0")
	require.Contains(t, lines[marginTop+headerLines+2], "r2c0")
}

func TestModel_QuitDestroysGrid(t *testing.T) {
	doc := raggedDoc(2)
	m, _ := newTestModel(t, doc, domain.NavigationConfig{})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, m.done)
	require.Empty(t, m.View())

	_, ok := m.grid.Position()
	require.False(t, ok)
	require.False(t, m.router.bound(), "listeners are unbound")

	n, _ := doc.Node("r0c0")
	_, has := n.TabIndex()
	require.True(t, has, "roving targets are restored to a tab stop")
	require.True(t, n.IsTabStop())
}

func TestModel_ReloadOnFileChange(t *testing.T) {
	p := filepath.Join(t.TempDir(), "grid.yaml")
	write := func(cells int) {
		var b strings.Builder
		b.WriteString("grid:\n  children:\n    - role: row\n      children:\n")
		for i := 0; i < cells; i++ {
			b.WriteString("        - {role: gridcell, roving_target: true, id: c" + string(rune('0'+i)) + "}\n")
		}
		require.NoError(t, os.WriteFile(p, []byte(b.String()), 0o644))
	}
	write(2)

	src := markup.NewFileSource(p, markup.LoadYAML)
	ch := make(chan watch.Event, 1)
	m, err := newModel(Deps{Discovery: src, Attributes: src, Effector: markup.NewEffector(nil), Changes: ch})
	require.NoError(t, err)
	require.Equal(t, []int{2}, m.grid.Index().Shape())
	require.NotNil(t, m.Init())

	write(4)
	m, cmd := send(t, m, gridChangedMsg{ev: watch.Event{Path: p}})
	require.NotNil(t, cmd, "keeps listening")
	require.Equal(t, []int{4}, m.grid.Index().Shape())
	require.Contains(t, m.toast, "Reloaded")

	require.NoError(t, os.WriteFile(p, []byte("grid: {}\n"), 0o644))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.Equal(t, "Grid has no focusable cells", m.toast)
	require.Equal(t, []int{4}, m.grid.Index().Shape(), "previous grid kept")
}

func TestNewModel_EmptyGridFails(t *testing.T) {
	src := markup.NewDocumentSource(raggedDoc())
	_, err := newModel(Deps{Discovery: src, Effector: markup.NewEffector(nil)})
	require.True(t, domain.IsKind(err, domain.KindEmptyGrid), "got %v", err)
}

func TestSafeModel_RecoversPanics(t *testing.T) {
	s := wrapSafe(model{}, nil)
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Nil(t, cmd)
	sm, ok := next.(safeModel)
	require.True(t, ok)
	require.Equal(t, "Unexpected error (see logs)", sm.m.toast)
	require.Equal(t, "Unexpected error (see logs)", sm.View())
}
