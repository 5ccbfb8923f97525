package markup

import "github.com/dimanech/aria-grid/internal/domain"

// Document is a loaded grid document. Root is the grid container.
type Document struct {
	Root *Node
	Path string

	byID map[string]*Node
}

// NewDocument indexes root's subtree by id.
func NewDocument(path string, root *Node) *Document {
	d := &Document{Root: root, Path: path, byID: map[string]*Node{}}
	if root == nil {
		return d
	}
	if root.id != "" {
		d.byID[root.id] = root
	}
	root.walk(func(n *Node) bool {
		if _, dup := d.byID[n.id]; !dup {
			d.byID[n.id] = n
		}
		return true
	})
	return d
}

func (d *Document) Node(id string) (*Node, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// CellByID looks a node up by id for click replay.
func (d *Document) CellByID(id string) (domain.Cell, bool) {
	n, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// Attribute reads a container attribute.
func (d *Document) Attribute(name string) domain.AttrState {
	if d == nil || d.Root == nil {
		return domain.AttrAbsent
	}
	return d.Root.Attribute(name)
}

// Rows runs the role query: every descendant with role "row", and within each
// row every descendant with role "gridcell". A gridcell is its own cell when
// it carries a tab index or the roving-target marker; otherwise its first such
// descendant stands in for it. Gridcells with neither are skipped.
func (d *Document) Rows() [][]*Node {
	if d == nil || d.Root == nil {
		return nil
	}

	var rows [][]*Node
	d.Root.walk(func(n *Node) bool {
		if n.role != RoleRow {
			return true
		}
		var cells []*Node
		n.walk(func(c *Node) bool {
			if c.role != RoleGridCell {
				return true
			}
			if cell := focusTarget(c); cell != nil {
				cells = append(cells, cell)
			}
			return true
		})
		rows = append(rows, cells)
		return true
	})
	return rows
}

func focusTarget(gridcell *Node) *Node {
	if gridcell.focusable() {
		return gridcell
	}
	var found *Node
	gridcell.walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.focusable() {
			found = n
			return false
		}
		return true
	})
	return found
}

// Cells converts Rows into domain handles, dropping rows without cells.
func (d *Document) Cells() [][]domain.Cell {
	rows := d.Rows()
	out := make([][]domain.Cell, 0, len(rows))
	for _, r := range rows {
		if len(r) == 0 {
			continue
		}
		row := make([]domain.Cell, len(r))
		for i, n := range r {
			row[i] = n
		}
		out = append(out, row)
	}
	return out
}
