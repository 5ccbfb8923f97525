package domain

import "time"

// WalkEntry is one replayed step of a key script and where focus ended up.
type WalkEntry struct {
	Step    string `json:"step"`
	Handled bool   `json:"handled"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Cell    string `json:"cell"`
}

// WalkArtifact is the saved transcript of one scripted walk.
type WalkArtifact struct {
	GridPath   string      `json:"grid_path"`
	Script     string      `json:"script"`
	RowsPolicy string      `json:"rows_policy"`
	ColsPolicy string      `json:"cols_policy"`
	Shape      []int       `json:"shape"`
	StartedAt  time.Time   `json:"started_at"`
	Entries    []WalkEntry `json:"entries"`
	Error      string      `json:"error,omitempty"`
}
