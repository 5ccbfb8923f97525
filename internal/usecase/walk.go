package usecase

import (
	"fmt"

	"github.com/dimanech/aria-grid/internal/domain"
)

// CellResolver finds the document cell behind a click target id.
type CellResolver interface {
	CellByID(id string) (domain.Cell, bool)
}

// WalkStep records what one scripted step did.
type WalkStep struct {
	Step     domain.Step
	Handled  bool
	Position domain.Position
	CellID   string
}

// Walk replays steps against an initialized grid. Clicks are looked up through
// cells. It stops at the first error and returns the steps applied so far.
func Walk(g *Grid, cells CellResolver, steps []domain.Step) ([]WalkStep, error) {
	out := make([]WalkStep, 0, len(steps))

	for i, s := range steps {
		ws := WalkStep{Step: s}

		switch {
		case s.Key != nil:
			handled, err := g.HandleKey(s.Key)
			if err != nil {
				return out, fmt.Errorf("step %d (%s): %w", i, s, err)
			}
			ws.Handled = handled

		default:
			var cell domain.Cell
			if cells != nil {
				if c, ok := cells.CellByID(s.CellID); ok {
					cell = c
				}
			}
			if cell == nil {
				return out, fmt.Errorf("step %d (%s): %w", i, s, &domain.OpError{
					Op:   "walk.click",
					Kind: domain.KindNotFound,
					Err:  fmt.Errorf("no cell with id %q: %w", s.CellID, domain.ErrNotFound),
				})
			}
			if err := g.HandleClick(cell); err != nil {
				return out, fmt.Errorf("step %d (%s): %w", i, s, err)
			}
			ws.Handled = true
		}

		pos, _ := g.Position()
		ws.Position = pos
		if c := g.LastTransition().ToCell; c != nil {
			ws.CellID = c.CellID()
		}
		out = append(out, ws)
	}
	return out, nil
}
