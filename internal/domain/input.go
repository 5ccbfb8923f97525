package domain

import (
	"fmt"
	"strings"
)

// Key is a navigation key understood by the cursor.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

var keyNames = map[Key]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyHome:  "home",
	KeyEnd:   "end",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "none"
}

// KeyEvent is one keydown delivered to a grid.
type KeyEvent struct {
	Key  Key
	Ctrl bool
}

func (e KeyEvent) String() string {
	if e.Ctrl {
		return "ctrl+" + e.Key.String()
	}
	return e.Key.String()
}

// Step is one entry of a key script: either a key event or a click on the
// cell with CellID.
type Step struct {
	Key    *KeyEvent
	CellID string
}

func (s Step) String() string {
	if s.Key != nil {
		return s.Key.String()
	}
	return "click:" + s.CellID
}

// ParseKeyScript parses a whitespace or comma separated list of steps, e.g.
// "down right ctrl+end click:b2".
func ParseKeyScript(script string) ([]Step, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	steps := make([]Step, 0, len(fields))
	for i, f := range fields {
		raw := strings.TrimSpace(f)

		if id, ok := cutClick(raw); ok {
			if id == "" {
				return nil, scriptError(i, f, "click needs a cell id")
			}
			steps = append(steps, Step{CellID: id})
			continue
		}

		tok := strings.ToLower(raw)

		ev := KeyEvent{}
		if rest, ok := strings.CutPrefix(tok, "ctrl+"); ok {
			ev.Ctrl = true
			tok = rest
		}
		ev.Key = parseKey(tok)
		if ev.Key == KeyNone {
			return nil, scriptError(i, f, "unknown key")
		}
		steps = append(steps, Step{Key: &ev})
	}
	return steps, nil
}

// cutClick matches the click prefix case-insensitively and keeps the id as
// written.
func cutClick(tok string) (string, bool) {
	const prefix = "click:"
	if len(tok) < len(prefix) || !strings.EqualFold(tok[:len(prefix)], prefix) {
		return "", false
	}
	return tok[len(prefix):], true
}

func parseKey(s string) Key {
	for k, name := range keyNames {
		if name == s {
			return k
		}
	}
	return KeyNone
}

func scriptError(i int, tok, msg string) error {
	return &OpError{
		Op:   "domain.parse_key_script",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("step %d %q: %s: %w", i, tok, msg, ErrInvalidConfig),
	}
}
