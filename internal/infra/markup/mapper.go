package markup

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dimanech/aria-grid/internal/domain"
)

// NodeSpec describes a node for programmatic construction (other document
// formats, tests).
type NodeSpec struct {
	ID           string
	Role         string
	Label        string
	TabIndex     *int
	RovingTarget bool
	Attributes   map[string]string
	Children     []NodeSpec
}

// Build turns a spec tree into nodes. Nodes without an id get a random one.
func Build(spec NodeSpec) *Node {
	n := &Node{
		id:     strings.TrimSpace(spec.ID),
		role:   strings.ToLower(strings.TrimSpace(spec.Role)),
		label:  spec.Label,
		target: spec.RovingTarget,
		attrs:  spec.Attributes,
	}
	if n.id == "" {
		n.id = uuid.NewString()
	}
	if n.attrs == nil {
		n.attrs = map[string]string{}
	}
	if spec.TabIndex != nil {
		n.SetTabIndex(*spec.TabIndex)
		n.defaultTabIndex = *spec.TabIndex
		n.hadTabIndex = true
	}
	for _, c := range spec.Children {
		n.children = append(n.children, Build(c))
	}
	return n
}

func mapDocument(path string, dto documentDTO) (*Document, error) {
	if err := validateNode(path, "grid", dto.Grid); err != nil {
		return nil, err
	}
	return NewDocument(path, Build(toSpec(dto.Grid))), nil
}

func toSpec(n nodeDTO) NodeSpec {
	s := NodeSpec{
		ID:           n.ID,
		Role:         n.Role,
		Label:        n.Label,
		TabIndex:     n.TabIndex,
		RovingTarget: n.RovingTarget,
		Attributes:   n.Attributes,
	}
	for _, c := range n.Children {
		s.Children = append(s.Children, toSpec(c))
	}
	return s
}

func validateNode(path, field string, n nodeDTO) error {
	if n.TabIndex != nil && *n.TabIndex < -1 {
		return invalidField(path, field+".tabindex", fmt.Sprintf("must be -1 or greater, got %d", *n.TabIndex))
	}
	if strings.ContainsAny(n.ID, " \t\n,") {
		return invalidField(path, field+".id", fmt.Sprintf("id %q must not contain spaces or commas", n.ID))
	}
	for i, c := range n.Children {
		if err := validateNode(path, fmt.Sprintf("%s.children[%d]", field, i), c); err != nil {
			return err
		}
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "markup.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
