package tui

import (
	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/ports"
)

// inputRouter is the grid's input binding inside the bubbletea loop: Update
// feeds it key and mouse events, and it forwards them to whatever handlers
// are currently bound.
type inputRouter struct {
	onKey   ports.KeyHandler
	onClick ports.ClickHandler
}

var _ ports.InputBinder = (*inputRouter)(nil)

func (r *inputRouter) Bind(onKey ports.KeyHandler, onClick ports.ClickHandler) func() {
	r.onKey, r.onClick = onKey, onClick
	return func() {
		r.onKey, r.onClick = nil, nil
	}
}

func (r *inputRouter) bound() bool { return r.onKey != nil && r.onClick != nil }

func (r *inputRouter) key(ev *domain.KeyEvent) (bool, error) {
	if !r.bound() {
		return false, nil
	}
	return r.onKey(ev)
}

func (r *inputRouter) click(c domain.Cell) error {
	if !r.bound() {
		return nil
	}
	return r.onClick(c)
}
