package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dimanech/aria-grid/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Create ariagrid.yaml at root
	if err := os.WriteFile(filepath.Join(root, "ariagrid.yaml"), []byte("navigation:\n  cols: wrap\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_FromFilePath(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "ariagrid.yaml"), []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	grid := filepath.Join(root, "grids", "demo.yaml")
	if err := os.MkdirAll(filepath.Dir(grid), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(grid, []byte("grid: {}\n"), 0o644); err != nil {
		t.Fatalf("write grid: %v", err)
	}

	got, err := NewFinder().FindRoot(grid)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, "ariagrid.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := NewFinder().FindRoot(tmp)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestResolve_FallsBackToStartDir(t *testing.T) {
	tmp := t.TempDir()

	root, found, err := NewFinder().Resolve(tmp)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if found {
		t.Fatalf("expected no workspace")
	}
	if root != filepath.Clean(tmp) {
		t.Fatalf("expected root=%s, got=%s", tmp, root)
	}

	if _, _, err := NewFinder().Resolve(""); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig for empty start, got: %v", err)
	}
}
