package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dimanech/aria-grid/internal/domain"
)

func TestFile_ReportsWritesToWatchedFileOnly(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "grid.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(target, []byte("grid: {}\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := File(ctx, target, WithDelay(20*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	select {
	case ev := <-events:
		t.Fatalf("unexpected event for sibling file: %+v", ev)
	case <-time.After(150 * time.Millisecond):
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("grid: {id: x}\n"), 0o644))
	}

	select {
	case ev := <-events:
		require.NoError(t, ev.Err)
		abs, _ := filepath.Abs(target)
		require.Equal(t, abs, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("no event after write")
	}
}

func TestFile_ClosesOnCancel(t *testing.T) {
	target := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(target, []byte(""), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	events, err := File(ctx, target)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-events:
		for ok {
			_, ok = <-events
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestFile_MissingDirectory(t *testing.T) {
	_, err := File(context.Background(), filepath.Join(t.TempDir(), "nope", "grid.yaml"))
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}
