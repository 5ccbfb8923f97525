package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dimanech/aria-grid/internal/infra/watch"
)

// listenChanges waits for the next file change. Update re-issues it after
// every gridChangedMsg.
func listenChanges(ch <-chan watch.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return gridChangedMsg{ev: ev}
	}
}
