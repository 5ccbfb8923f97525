package ports

import "github.com/dimanech/aria-grid/internal/domain"

// AttributeReader reads configuration attributes from the grid container.
type AttributeReader interface {
	Attribute(name string) domain.AttrState
}
