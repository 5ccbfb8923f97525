package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONToWorkspaceLog(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	want := filepath.Join(root, ".ariagrid", "logs", "ariagrid.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time")
	}

	For("grid").Debug("grid.move", "to", "(1,2)")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	for _, w := range []string{`"msg":"logger.initialized"`, `"msg":"grid.move"`, `"component":"grid"`, `"source"`} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected log to contain %s, got:\n%s", w, s)
		}
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	root := t.TempDir()
	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("hidden.event")
	_ = cleanup()

	b, _ := os.ReadFile(filepath.Join(Dir(root), "ariagrid.log"))
	if strings.Contains(string(b), "hidden.event") {
		t.Fatalf("debug record written at info level:\n%s", b)
	}
}

func TestSetup_UnwritableRootFallsBackToDiscard(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, ".ariagrid")
	if err := os.WriteFile(blocker, []byte("file, not dir"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Setup(Config{Root: root}); err == nil {
		t.Fatalf("expected error")
	}
	if IsReady() == nil {
		t.Fatalf("expected logger not ready")
	}
	L().Info("still.safe")
}
