package markup

import "github.com/dimanech/aria-grid/internal/domain"

// Roles recognised by discovery.
const (
	RoleRow      = "row"
	RoleGridCell = "gridcell"
)

// Node is one element of a grid document. Nodes picked as cells are the
// domain.Cell handles the grid moves focus between.
type Node struct {
	id       string
	role     string
	label    string
	target   bool
	attrs    map[string]string
	children []*Node

	tabIndex    int
	hasTabIndex bool

	defaultTabIndex int
	hadTabIndex     bool
}

var _ domain.Cell = (*Node)(nil)

func (n *Node) CellID() string { return n.id }

func (n *Node) Role() string { return n.role }

func (n *Node) Label() string {
	if n.label != "" {
		return n.label
	}
	return n.id
}

func (n *Node) Children() []*Node { return n.children }

// TabIndex returns the current tab index and whether one is set.
func (n *Node) TabIndex() (int, bool) { return n.tabIndex, n.hasTabIndex }

// IsTabStop reports whether the node is in sequential navigation.
func (n *Node) IsTabStop() bool { return n.hasTabIndex && n.tabIndex >= 0 }

func (n *Node) SetTabIndex(v int) {
	n.tabIndex = v
	n.hasTabIndex = true
}

// RovingTarget reports the explicit roving-target marker.
func (n *Node) RovingTarget() bool { return n.target }

// Attribute implements ports.AttributeReader: "" and "false" read as falsy.
func (n *Node) Attribute(name string) domain.AttrState {
	v, ok := n.attrs[name]
	switch {
	case !ok:
		return domain.AttrAbsent
	case v == "" || v == "false":
		return domain.AttrFalsy
	default:
		return domain.AttrTruthy
	}
}

// focusable marks nodes that can be a grid cell themselves.
func (n *Node) focusable() bool {
	return n.target || n.hasTabIndex
}

// restoreDefault puts the loaded tab index back. Roving targets loaded without
// one become plain tab stops.
func (n *Node) restoreDefault() {
	switch {
	case n.hadTabIndex:
		n.SetTabIndex(n.defaultTabIndex)
	case n.target:
		n.SetTabIndex(0)
	default:
		n.tabIndex = 0
		n.hasTabIndex = false
	}
}

// walk visits descendants of n in document order, not n itself. Returning
// false from fn skips that node's subtree.
func (n *Node) walk(fn func(*Node) bool) {
	for _, c := range n.children {
		if fn(c) {
			c.walk(fn)
		}
	}
}
