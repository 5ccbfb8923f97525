package ports

import "github.com/dimanech/aria-grid/internal/domain"

// CellDiscovery returns the grid's cells, one slice per row, in document
// order. It must be safe to call again after the underlying content changed.
type CellDiscovery interface {
	Discover() ([][]domain.Cell, error)
}
