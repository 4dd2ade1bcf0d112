package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Repo structure the pipeline writes into:
// Root/
//  ├── packages/branding/icons/ (master copies)
//  ├── apps/<app>/app/, apps/<app>/public/ (web-app icons)
//  └── apps/mobile.pro/android/.../res/ (density-bucketed Android resources)

// Layout resolves repository-relative destinations against an injected root.
// Resolution is a pure function of (root, relative path); nothing here keeps
// process-global state.
type Layout struct {
	Root string
}

// NewLayout returns a Layout rooted at root, or at the current working
// directory when root is empty. The root must exist.
func NewLayout(root string) (Layout, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Layout{}, err
		}
		root = wd
	}
	info, err := os.Stat(root)
	if err != nil {
		return Layout{}, fmt.Errorf("repo root: %w", err)
	}
	if !info.IsDir() {
		return Layout{}, fmt.Errorf("repo root %s is not a directory", root)
	}
	return Layout{Root: root}, nil
}

// Resolve maps a slash-separated repository-relative path to an absolute
// destination under the root.
func (l Layout) Resolve(rel string) string {
	return filepath.Join(l.Root, filepath.FromSlash(rel))
}

// EnsureParent creates the destination's parent directory chain on demand.
func EnsureParent(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
