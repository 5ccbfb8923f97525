package domain

import "fmt"

// Cell is an opaque handle to one focusable unit of a grid. Handles are owned
// by the document layer; the domain only compares them by id.
type Cell interface {
	CellID() string
}

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellIndex is the two-dimensional table of cells a cursor moves over.
// Rows may differ in length. An index is never mutated after BuildCellIndex.
type CellIndex struct {
	rows   [][]Cell
	lookup map[string]Position
}

// BuildCellIndex builds an index from discovered rows. Rows without any usable
// (non-nil) cell are dropped. It fails with KindEmptyGrid when nothing is left.
func BuildCellIndex(discovered [][]Cell) (*CellIndex, error) {
	idx := &CellIndex{
		rows:   make([][]Cell, 0, len(discovered)),
		lookup: map[string]Position{},
	}

	for _, in := range discovered {
		row := make([]Cell, 0, len(in))
		for _, c := range in {
			if c != nil {
				row = append(row, c)
			}
		}
		if len(row) == 0 {
			continue
		}

		r := len(idx.rows)
		for col, c := range row {
			id := c.CellID()
			if prev, dup := idx.lookup[id]; dup {
				return nil, &OpError{
					Op:   "domain.build_index",
					Kind: KindInvalidConfig,
					Err:  fmt.Errorf("duplicate cell id %q at %s and %s: %w", id, prev, Position{r, col}, ErrInvalidConfig),
				}
			}
			idx.lookup[id] = Position{Row: r, Col: col}
		}
		idx.rows = append(idx.rows, row)
	}

	if len(idx.rows) == 0 {
		return nil, &OpError{
			Op:   "domain.build_index",
			Kind: KindEmptyGrid,
			Err:  ErrEmptyGrid,
		}
	}
	return idx, nil
}

func (x *CellIndex) RowCount() int {
	return len(x.rows)
}

func (x *CellIndex) RowLength(row int) (int, error) {
	if row < 0 || row >= len(x.rows) {
		return 0, &OpError{
			Op:   "domain.row_length",
			Kind: KindRowOutOfRange,
			Err:  fmt.Errorf("row %d not in [0,%d): %w", row, len(x.rows), ErrRowOutOfRange),
		}
	}
	return len(x.rows[row]), nil
}

func (x *CellIndex) CellAt(row, col int) (Cell, error) {
	n, err := x.RowLength(row)
	if err != nil {
		return nil, err
	}
	if col < 0 || col >= n {
		return nil, &OpError{
			Op:   "domain.cell_at",
			Kind: KindCellOutOfRange,
			Err:  fmt.Errorf("column %d not in [0,%d) for row %d: %w", col, n, row, ErrCellOutOfRange),
		}
	}
	return x.rows[row][col], nil
}

// Locate is the reverse lookup from a cell id to its position.
func (x *CellIndex) Locate(id string) (Position, bool) {
	p, ok := x.lookup[id]
	return p, ok
}

// Each visits every cell in row-major order.
func (x *CellIndex) Each(fn func(Position, Cell)) {
	for r, row := range x.rows {
		for c, cell := range row {
			fn(Position{Row: r, Col: c}, cell)
		}
	}
}

// Shape returns the length of every row.
func (x *CellIndex) Shape() []int {
	out := make([]int, len(x.rows))
	for i, row := range x.rows {
		out[i] = len(row)
	}
	return out
}

// lastRow and lastCol back the resolvers; both assume a built index and a
// valid row.
func (x *CellIndex) lastRow() int {
	return len(x.rows) - 1
}

func (x *CellIndex) lastCol(row int) int {
	return len(x.rows[row]) - 1
}

func (x *CellIndex) cell(p Position) Cell {
	return x.rows[p.Row][p.Col]
}
