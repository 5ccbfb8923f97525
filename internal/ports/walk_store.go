package ports

import "github.com/dimanech/aria-grid/internal/domain"

// WalkStore persists walk transcripts so a navigation run can be replayed or
// compared later.
type WalkStore interface {
	SaveWalk(w domain.WalkArtifact) (id string, err error)
}
