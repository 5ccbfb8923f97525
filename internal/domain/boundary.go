package domain

import (
	"fmt"
	"strings"
)

// BoundaryPolicy decides what happens when a requested move leaves the valid
// range of one dimension.
type BoundaryPolicy int

const (
	// BoundaryStop clamps to the nearest edge.
	BoundaryStop BoundaryPolicy = iota
	// BoundaryLoop jumps to the opposite edge of the same dimension.
	BoundaryLoop
	// BoundaryWrap steps into the adjacent row or column.
	BoundaryWrap
)

func (b BoundaryPolicy) String() string {
	switch b {
	case BoundaryStop:
		return "stop"
	case BoundaryLoop:
		return "loop"
	case BoundaryWrap:
		return "wrap"
	default:
		return fmt.Sprintf("boundary(%d)", int(b))
	}
}

// ParseBoundaryPolicy accepts "stop", "loop" or "wrap" in any case.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stop":
		return BoundaryStop, nil
	case "loop":
		return BoundaryLoop, nil
	case "wrap":
		return BoundaryWrap, nil
	default:
		return BoundaryStop, &OpError{
			Op:   "domain.parse_boundary",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("unsupported boundary %q (want stop, loop or wrap): %w", s, ErrInvalidConfig),
		}
	}
}

// Navigator pairs the row and column policies.
type Navigator struct {
	Rows BoundaryPolicy
	Cols BoundaryPolicy
}

// Resolve maps a requested, possibly out-of-range target onto a cell that
// exists in idx. Rows are resolved first; the column bound is then taken from
// the resolved row.
func (n Navigator) Resolve(idx *CellIndex, target Position) Position {
	if idx == nil || len(idx.rows) == 0 {
		panic("domain: Resolve on an empty cell index")
	}
	p := resolveRow(n.Rows, idx, target)
	return resolveCol(n.Cols, idx, p)
}

func resolveRow(policy BoundaryPolicy, idx *CellIndex, p Position) Position {
	last := idx.lastRow()
	if p.Row >= 0 && p.Row <= last {
		return p
	}

	switch policy {
	case BoundaryWrap:
		if p.Row < 0 {
			p.Row = last
			p.Col--
		} else {
			p.Row = 0
			p.Col++
		}
		p.Col = loop(p.Col, idx.lastCol(p.Row))
	case BoundaryLoop:
		p.Row = loop(p.Row, last)
	default:
		p.Row = clamp(p.Row, last)
	}
	return p
}

func resolveCol(policy BoundaryPolicy, idx *CellIndex, p Position) Position {
	last := idx.lastCol(p.Row)
	if p.Col >= 0 && p.Col <= last {
		return p
	}

	switch policy {
	case BoundaryWrap:
		if p.Col < 0 {
			p.Row = loop(p.Row-1, idx.lastRow())
			p.Col = idx.lastCol(p.Row)
		} else {
			p.Row = loop(p.Row+1, idx.lastRow())
			p.Col = 0
		}
	case BoundaryLoop:
		p.Col = loop(p.Col, last)
	default:
		p.Col = clamp(p.Col, last)
	}
	return p
}

func clamp(v, last int) int {
	if v < 0 {
		return 0
	}
	if v > last {
		return last
	}
	return v
}

func loop(v, last int) int {
	if v < 0 {
		return last
	}
	if v > last {
		return 0
	}
	return v
}
