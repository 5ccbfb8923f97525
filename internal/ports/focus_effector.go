package ports

import "github.com/dimanech/aria-grid/internal/domain"

// FocusEffector performs focus side effects on concrete cells.
type FocusEffector interface {
	// MarkTabStop makes the cell the sole sequential tab stop.
	MarkTabStop(cell domain.Cell)
	// UnmarkTabStop removes the cell from sequential navigation.
	UnmarkTabStop(cell domain.Cell)
	// Focus moves input focus to the cell.
	Focus(cell domain.Cell)
	// RestoreDefault puts back the marking the cell had before it was managed.
	RestoreDefault(cell domain.Cell)
}
