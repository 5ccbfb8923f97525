package usecase

import (
	"testing"

	"github.com/dimanech/aria-grid/internal/domain"
)

type cellSet map[string]domain.Cell

func (s cellSet) CellByID(id string) (domain.Cell, bool) {
	c, ok := s[id]
	return c, ok
}

func TestWalk(t *testing.T) {
	h := newHarness(t, shape(3, 3, 3), WithNavigation(domain.NavigationConfig{Rows: "loop", Cols: "wrap"}))

	steps, err := domain.ParseKeyScript("left down click:r0c1 ctrl+end")
	if err != nil {
		t.Fatalf("ParseKeyScript: %v", err)
	}

	got, err := Walk(h.grid, cellSet{"r0c1": cell("r0c1")}, steps)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	want := []struct {
		pos domain.Position
		id  string
	}{
		{domain.Position{Row: 2, Col: 2}, "r2c2"},
		{domain.Position{Row: 0, Col: 2}, "r0c2"},
		{domain.Position{Row: 0, Col: 1}, "r0c1"},
		{domain.Position{Row: 2, Col: 2}, "r2c2"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Position != w.pos || got[i].CellID != w.id || !got[i].Handled {
			t.Errorf("step %d: got %+v, want %v %s", i, got[i], w.pos, w.id)
		}
	}
}

func TestWalk_UnknownClickStops(t *testing.T) {
	h := newHarness(t, shape(2, 2))
	steps, _ := domain.ParseKeyScript("right click:nope down")

	got, err := Walk(h.grid, cellSet{}, steps)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the first step recorded, got %d", len(got))
	}
}

func TestWalk_DisabledNavigationReportsUnhandled(t *testing.T) {
	h := newHarness(t, shape(2, 2))
	h.grid.SetNavigationEnabled(false)
	steps, _ := domain.ParseKeyScript("down")

	got, err := Walk(h.grid, nil, steps)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if got[0].Handled || got[0].Position != (domain.Position{}) || got[0].CellID != "r0c0" {
		t.Fatalf("unexpected step %+v", got[0])
	}
}
