package markup

import (
	"io"
	"log/slog"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/ports"
)

// Effector applies tab-stop and focus changes to document nodes and tracks
// the active (focused) node.
type Effector struct {
	active *Node
	log    *slog.Logger
}

var _ ports.FocusEffector = (*Effector)(nil)

func NewEffector(log *slog.Logger) *Effector {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Effector{log: log}
}

func (e *Effector) MarkTabStop(c domain.Cell) {
	if n := e.node(c); n != nil {
		n.SetTabIndex(0)
	}
}

func (e *Effector) UnmarkTabStop(c domain.Cell) {
	if n := e.node(c); n != nil {
		n.SetTabIndex(-1)
	}
}

func (e *Effector) Focus(c domain.Cell) {
	if n := e.node(c); n != nil {
		e.active = n
	}
}

func (e *Effector) RestoreDefault(c domain.Cell) {
	n := e.node(c)
	if n == nil {
		return
	}
	n.restoreDefault()
	if e.active == n {
		e.active = nil
	}
}

// Active is the focused node, or nil.
func (e *Effector) Active() *Node { return e.active }

// ActiveCell reports the focused node as a domain cell.
func (e *Effector) ActiveCell() (domain.Cell, bool) {
	if e.active == nil {
		return nil, false
	}
	return e.active, true
}

func (e *Effector) node(c domain.Cell) *Node {
	n, ok := c.(*Node)
	if !ok || n == nil {
		if c != nil {
			e.log.Warn("markup.effector.foreign_cell", "id", c.CellID())
		}
		return nil
	}
	return n
}
