package tui

import (
	"log/slog"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/infra/watch"
	"github.com/dimanech/aria-grid/internal/ports"
)

type Deps struct {
	Discovery  ports.CellDiscovery
	Attributes ports.AttributeReader
	Effector   ports.FocusEffector

	Navigation domain.NavigationConfig
	CellWidth  int
	Source     string // shown in the header

	// Changes, when set, triggers a reinit for every event.
	Changes <-chan watch.Event

	Logger *slog.Logger
	Debug  bool
}
