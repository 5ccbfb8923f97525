package tui

import "github.com/dimanech/aria-grid/internal/domain"

type labeler interface {
	Label() string
}

type tabStopper interface {
	IsTabStop() bool
}

// activeTracker is an effector that remembers which cell it last focused.
type activeTracker interface {
	ActiveCell() (domain.Cell, bool)
}

func cellLabel(c domain.Cell) string {
	if l, ok := c.(labeler); ok {
		if s := l.Label(); s != "" {
			return s
		}
	}
	return c.CellID()
}

func isTabStop(c domain.Cell) bool {
	t, ok := c.(tabStopper)
	return ok && t.IsTabStop()
}
