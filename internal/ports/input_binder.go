package ports

import "github.com/dimanech/aria-grid/internal/domain"

// KeyHandler handles one keydown. It reports whether the event was consumed.
type KeyHandler func(ev *domain.KeyEvent) (bool, error)

// ClickHandler handles a click that landed on cell.
type ClickHandler func(cell domain.Cell) error

// InputBinder attaches handlers to the host's event loop.
type InputBinder interface {
	Bind(onKey KeyHandler, onClick ClickHandler) (unbind func())
}
