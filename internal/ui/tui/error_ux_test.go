package tui

import (
	"errors"
	"testing"

	"github.com/dimanech/aria-grid/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
		{"empty", &domain.OpError{Op: "grid.init", Kind: domain.KindEmptyGrid, Err: domain.ErrEmptyGrid}, "Grid has no focusable cells"},
		{"grid file", &domain.OpError{Op: "markup.load", Kind: domain.KindNotFound, Path: "/x/g.yaml"}, "Grid file not found"},
		{"json file", &domain.OpError{Op: "jsondoc.load", Kind: domain.KindNotFound}, "Grid file not found"},
		{"workspace", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}, "Workspace not found"},
		{"cell", &domain.OpError{Op: "grid.handle_click", Kind: domain.KindNotFound}, "Cell not found"},
		{"yaml line", &domain.OpError{Op: "markup.load", Kind: domain.KindInvalidConfig, Path: "/x/demo.yaml", Err: errors.New("yaml: line 7: did not find expected key")}, "Invalid demo.yaml line 7"},
		{"invalid", &domain.OpError{Op: "config.map", Kind: domain.KindInvalidConfig}, "Invalid grid file"},
		{"destroyed", &domain.OpError{Op: "grid.handle_key", Kind: domain.KindDestroyed}, "Grid closed"},
		{"wrapped", errors.Join(errors.New("ctx"), &domain.OpError{Kind: domain.KindEmptyGrid}), "Grid has no focusable cells"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := userMessage(tc.err); got != tc.want {
				t.Fatalf("userMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}
