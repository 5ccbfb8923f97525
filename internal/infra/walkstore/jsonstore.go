package walkstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/ports"
)

// DefaultDir is relative to the workspace root.
const DefaultDir = ".ariagrid/walks"

type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex appends one line per saved walk to <dir>/index.jsonl.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

func WithDir(name string) Option {
	return func(s *JSONStore) {
		if strings.TrimSpace(name) != "" {
			s.dirName = name
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, opts ...Option) *JSONStore {
	s := &JSONStore{
		rootDir: root,
		dirName: DefaultDir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.WalkStore = (*JSONStore)(nil)

// Dir is where transcripts are written.
func (s *JSONStore) Dir() string { return filepath.Join(s.rootDir, s.dirName) }

func (s *JSONStore) SaveWalk(w domain.WalkArtifact) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "walkstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if w.StartedAt.IsZero() {
		w.StartedAt = s.now()
	}
	w.StartedAt = w.StartedAt.UTC()
	if w.Entries == nil {
		w.Entries = []domain.WalkEntry{}
	}

	slug := slugify(strings.TrimSuffix(filepath.Base(w.GridPath), filepath.Ext(w.GridPath)))
	if slug == "" {
		slug = "walk"
	}

	filename := fmt.Sprintf("%s_%s.json", w.StartedAt.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "walkstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "walkstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "walkstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, w)
	}
	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, w domain.WalkArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Grid      string    `json:"grid"`
		Steps     int       `json:"steps"`
		Failed    bool      `json:"failed"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Grid:      w.GridPath,
		Steps:     len(w.Entries),
		Failed:    w.Error != "",
		StartedAt: w.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "index.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
