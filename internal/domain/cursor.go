package domain

// Transition is the outcome of one RequestMove. From and To may be equal.
type Transition struct {
	From     Position
	To       Position
	FromCell Cell
	ToCell   Cell
}

// Moved reports whether the position changed.
func (t Transition) Moved() bool {
	return t.From != t.To
}

// FocusCursor owns the current position inside a CellIndex. It is the only
// thing that changes which cell is the tab stop.
type FocusCursor struct {
	index   *CellIndex
	nav     Navigator
	pos     Position
	enabled bool
}

// NewFocusCursor seeds a cursor at (0,0).
func NewFocusCursor(idx *CellIndex, nav Navigator) (*FocusCursor, error) {
	if idx == nil || idx.RowCount() == 0 {
		return nil, &OpError{
			Op:   "domain.new_cursor",
			Kind: KindEmptyGrid,
			Err:  ErrEmptyGrid,
		}
	}
	return &FocusCursor{
		index:   idx,
		nav:     nav,
		enabled: true,
	}, nil
}

func (c *FocusCursor) Position() Position { return c.pos }

func (c *FocusCursor) Navigator() Navigator { return c.nav }

func (c *FocusCursor) Index() *CellIndex { return c.index }

// Current returns the cell at the cursor.
func (c *FocusCursor) Current() Cell {
	return c.index.cell(c.pos)
}

func (c *FocusCursor) NavigationEnabled() bool { return c.enabled }

// SetNavigationEnabled gates directional input. Clicks are never gated.
func (c *FocusCursor) SetNavigationEnabled(on bool) { c.enabled = on }

// RequestMove resolves target through the boundary policies and moves there.
func (c *FocusCursor) RequestMove(target Position) Transition {
	if c == nil || c.index == nil {
		panic("domain: RequestMove on a cursor without a cell index")
	}

	to := c.nav.Resolve(c.index, target)
	t := Transition{
		From:     c.pos,
		To:       to,
		FromCell: c.index.cell(c.pos),
		ToCell:   c.index.cell(to),
	}
	c.pos = to
	return t
}

// Target translates a key event into the requested position. The result may
// be out of range; RequestMove resolves it.
func (c *FocusCursor) Target(ev KeyEvent) (Position, bool) {
	p := c.pos
	switch ev.Key {
	case KeyUp:
		p.Row--
	case KeyDown:
		p.Row++
	case KeyLeft:
		p.Col--
	case KeyRight:
		p.Col++
	case KeyHome:
		if ev.Ctrl {
			p.Row = 0
		}
		p.Col = 0
	case KeyEnd:
		if ev.Ctrl {
			p.Row = c.index.lastRow()
		}
		p.Col = c.index.lastCol(p.Row)
	default:
		return p, false
	}
	return p, true
}
