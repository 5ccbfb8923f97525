package tui

import "github.com/dimanech/aria-grid/internal/infra/watch"

// gridChangedMsg carries a change of the grid file on disk.
type gridChangedMsg struct {
	ev watch.Event
}

// watchClosedMsg means the change feed ended.
type watchClosedMsg struct{}
