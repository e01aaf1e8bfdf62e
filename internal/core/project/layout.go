package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Fixed folder names under the project root.
const (
	SrcDir   = "src"
	ViewsDir = "views"
	APIDir   = "api"
)

// dirPerm is the permission used for every created folder.
const dirPerm fs.FileMode = 0o755

// Levels describes the first- and second-level folder answers of a session.
type Levels struct {
	FirstCreated  bool   // first-level folder was freshly created (not selected)
	First         string // created or selected first-level name
	SecondCreated bool   // a second-level folder was requested
	Second        string // second-level name, empty when not requested
}

// Layout derives every folder the scaffolder touches from one project root.
type Layout struct {
	Root string
}

// NewLayout creates a Layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{Root: filepath.Clean(root)}
}

// ViewsRoot returns <root>/src/views.
func (l Layout) ViewsRoot() string {
	return filepath.Join(l.Root, SrcDir, ViewsDir)
}

// APIRoot returns <root>/src/api.
func (l Layout) APIRoot() string {
	return filepath.Join(l.Root, SrcDir, APIDir)
}

// FirstLevelPath returns <views>/<first>.
func (l Layout) FirstLevelPath(first string) string {
	return filepath.Join(l.ViewsRoot(), first)
}

// TargetFolder returns the views folder template files are written to:
// the first-level path, plus the second level when one was requested.
func (l Layout) TargetFolder(lv Levels) string {
	p := l.FirstLevelPath(lv.First)
	if lv.SecondCreated {
		p = filepath.Join(p, lv.Second)
	}
	return p
}

// APITargetFolder returns the API folder mirroring the views hierarchy.
// When the first level was selected rather than created and no second level
// was requested, the result collapses to the API root.
func (l Layout) APITargetFolder(lv Levels) string {
	api := l.APIRoot()
	switch {
	case lv.SecondCreated:
		return filepath.Join(api, lv.First, lv.Second)
	case lv.FirstCreated:
		// A created first level gets its own API folder even without a
		// second level, so the API tree mirrors the views tree.
		return filepath.Join(api, lv.First)
	default:
		return api
	}
}

// ListViews returns the names of all entries directly under the views root,
// sorted by name.
func (l Layout) ListViews() ([]string, error) {
	root := l.ViewsRoot()
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrViewsRootNotFound, root)
		}
		return nil, fmt.Errorf("list %s: %w", root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// EnsureDir creates path and any missing parents. An existing directory is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("create directory %q: %w", path, err)
	}
	return nil
}
