package usecase

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dimanech/aria-grid/internal/domain"
)

type recordingInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (r *recordingInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	r.spec, r.force = spec, force
	return r.err
}

func TestInitWorkspace_PassesAbsoluteRoot(t *testing.T) {
	rec := &recordingInitializer{}
	tmp := t.TempDir()

	got, err := NewInitWorkspace(rec).Execute(tmp, true)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !filepath.IsAbs(got) || rec.spec.Root != got || !rec.force {
		t.Fatalf("unexpected call: root=%s spec=%+v force=%v", got, rec.spec, rec.force)
	}
}

func TestInitWorkspace_Errors(t *testing.T) {
	if _, err := NewInitWorkspace(&recordingInitializer{}).Execute("  ", false); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}

	boom := errors.New("disk full")
	_, err := NewInitWorkspace(&recordingInitializer{err: boom}).Execute(t.TempDir(), false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected initializer error, got %v", err)
	}
}
