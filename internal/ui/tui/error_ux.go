package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dimanech/aria-grid/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line message for the status bar. The
// full error goes to the log.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return "Unexpected error (see logs)"
	}

	switch oe.Kind {
	case domain.KindEmptyGrid:
		return "Grid has no focusable cells"

	case domain.KindNotFound:
		switch {
		case strings.HasPrefix(oe.Op, "markup.load"), strings.HasPrefix(oe.Op, "jsondoc.load"):
			return "Grid file not found"
		case strings.HasPrefix(oe.Op, "workspacefinder"):
			return "Workspace not found"
		}
		return "Cell not found"

	case domain.KindInvalidConfig:
		base := "grid file"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		if line := extractLine(err.Error()); line != "" {
			return "Invalid " + base + " line " + line
		}
		return "Invalid " + base

	case domain.KindDestroyed:
		return "Grid closed"

	default:
		return "Unexpected error (see logs)"
	}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
