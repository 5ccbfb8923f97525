// Package jsondoc discovers grid cells in arbitrary JSON documents with
// JSONPath selectors and exposes them as a markup.Document.
package jsondoc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/infra/markup"
)

// Selectors locate rows and cells. Rows is evaluated against the document,
// Cells against each selected row. ID and Label are plain keys of a cell
// object.
type Selectors struct {
	Rows  string
	Cells string
	ID    string
	Label string
}

// AttributesKey is the top-level object holding container attributes.
const AttributesKey = "attributes"

func SelectorsFrom(cfg domain.GridSourceConfig) Selectors {
	def := domain.DefaultConfig().Grid
	sel := Selectors{
		Rows:  strings.TrimSpace(cfg.RowsPath),
		Cells: strings.TrimSpace(cfg.CellsPath),
		ID:    strings.TrimSpace(cfg.IDField),
		Label: strings.TrimSpace(cfg.LabelField),
	}
	if sel.Rows == "" {
		sel.Rows = def.RowsPath
	}
	if sel.Cells == "" {
		sel.Cells = def.CellsPath
	}
	if sel.ID == "" {
		sel.ID = def.IDField
	}
	if sel.Label == "" {
		sel.Label = def.LabelField
	}
	return sel
}

// Loader adapts sel to markup.LoadFunc so a markup.Source can reload JSON
// documents.
func Loader(sel Selectors) markup.LoadFunc {
	return func(path string) (*markup.Document, error) {
		return Load(path, sel)
	}
}

func Load(path string, sel Selectors) (*markup.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "jsondoc.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Decode(path, b, sel)
}

// Decode builds a document with one row node per selected row and one
// roving-target gridcell per selected cell. Rows whose cell selector matches
// nothing end up empty and are dropped by discovery.
func Decode(path string, b []byte, sel Selectors) (*markup.Document, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, invalid(path, fmt.Errorf("not valid JSON: %w", err))
	}

	rowsVal, err := jsonpath.Get(sel.Rows, doc)
	if err != nil {
		return nil, invalid(path, fmt.Errorf("rows selector %q: %w", sel.Rows, err))
	}

	root := markup.NodeSpec{
		Role:       "grid",
		Attributes: attributes(doc),
	}
	for r, row := range asList(rowsVal) {
		rs := markup.NodeSpec{Role: markup.RoleRow}

		cellsVal, err := jsonpath.Get(sel.Cells, row)
		if err == nil {
			for c, v := range asList(cellsVal) {
				cs := cellSpec(v, sel)
				if strings.ContainsAny(cs.ID, " \t\n,") {
					return nil, invalid(path, fmt.Errorf("row %d cell %d: id %q must not contain spaces or commas", r, c, cs.ID))
				}
				rs.Children = append(rs.Children, cs)
			}
		}
		root.Children = append(root.Children, rs)
	}

	return markup.NewDocument(path, markup.Build(root)), nil
}

func cellSpec(v any, sel Selectors) markup.NodeSpec {
	s := markup.NodeSpec{Role: markup.RoleGridCell, RovingTarget: true}
	switch t := v.(type) {
	case map[string]any:
		s.ID = scalar(t[sel.ID])
		s.Label = scalar(t[sel.Label])
	default:
		s.ID = scalar(t)
	}
	return s
}

func attributes(doc any) map[string]string {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := m[AttributesKey].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = scalar(v)
	}
	return out
}

// asList normalizes a selector result: wildcard selectors yield a list, plain
// paths may yield the list itself or a single value.
func asList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return t
	default:
		return []any{t}
	}
}

func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64, bool:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "jsondoc.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidConfig),
	}
}
