package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dimanech/aria-grid/internal/domain"
)

type keyMap struct {
	Move    key.Binding
	HomeEnd key.Binding
	Jump    key.Binding
	Reinit  key.Binding
	Toggle  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Move:    key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
		HomeEnd: key.NewBinding(key.WithKeys("home", "end"), key.WithHelp("home/end", "row start/end")),
		Jump:    key.NewBinding(key.WithKeys("ctrl+home", "ctrl+end"), key.WithHelp("ctrl+home/end", "grid start/end")),
		Reinit:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Toggle:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle navigation")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Toggle, k.Reinit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.HomeEnd, k.Jump},
		{k.Toggle, k.Reinit, k.Help, k.Quit},
	}
}

// keyEvent translates a terminal key into a grid key event; nil for keys the
// grid does not know.
func keyEvent(msg tea.KeyMsg) *domain.KeyEvent {
	switch msg.Type {
	case tea.KeyUp:
		return &domain.KeyEvent{Key: domain.KeyUp}
	case tea.KeyDown:
		return &domain.KeyEvent{Key: domain.KeyDown}
	case tea.KeyLeft:
		return &domain.KeyEvent{Key: domain.KeyLeft}
	case tea.KeyRight:
		return &domain.KeyEvent{Key: domain.KeyRight}
	case tea.KeyHome:
		return &domain.KeyEvent{Key: domain.KeyHome}
	case tea.KeyEnd:
		return &domain.KeyEvent{Key: domain.KeyEnd}
	case tea.KeyCtrlUp:
		return &domain.KeyEvent{Key: domain.KeyUp, Ctrl: true}
	case tea.KeyCtrlDown:
		return &domain.KeyEvent{Key: domain.KeyDown, Ctrl: true}
	case tea.KeyCtrlLeft:
		return &domain.KeyEvent{Key: domain.KeyLeft, Ctrl: true}
	case tea.KeyCtrlRight:
		return &domain.KeyEvent{Key: domain.KeyRight, Ctrl: true}
	case tea.KeyCtrlHome:
		return &domain.KeyEvent{Key: domain.KeyHome, Ctrl: true}
	case tea.KeyCtrlEnd:
		return &domain.KeyEvent{Key: domain.KeyEnd, Ctrl: true}
	default:
		return nil
	}
}
