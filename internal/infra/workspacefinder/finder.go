package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/infra/config"
	"github.com/dimanech/aria-grid/internal/ports"
)

// Finder locates a workspace root by searching for ariagrid.yaml upward.
type Finder struct {
	ConfigFile string // defaults to config.FileName
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func NewFinder() *Finder {
	return &Finder{ConfigFile: config.FileName}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	cur, err := startPoint(startDir)
	if err != nil {
		return "", err
	}

	name := f.ConfigFile
	if name == "" {
		name = config.FileName
	}

	for {
		if info, err := os.Stat(filepath.Join(cur, name)); err == nil && !info.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Resolve is FindRoot with a fallback: outside any workspace the start
// directory itself is used and found is false, so ad-hoc grid files still
// load with default settings.
func (f *Finder) Resolve(startDir string) (root string, found bool, err error) {
	root, err = f.FindRoot(startDir)
	if err == nil {
		return root, true, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return "", false, err
	}
	root, err = startPoint(startDir)
	if err != nil {
		return "", false, err
	}
	return root, false, nil
}

// startPoint makes startDir absolute; a file path yields its directory.
func startPoint(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}
