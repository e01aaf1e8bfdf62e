package template

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Deployer writes a named template set into a destination folder.
type Deployer interface {
	// Deploy creates dest, the set's folders, and renders every file of
	// the set with data, overwriting files that already exist. The returned
	// Deployment lists what was written before any error occurred.
	Deploy(ctx context.Context, set, dest string, data any) (*Deployment, error)
}

// Deployment records the absolute paths a Deploy call produced.
type Deployment struct {
	Dirs  []string
	Files []string
}

// deployer is the concrete implementation of Deployer.
type deployer struct {
	manifest *Manifest
	renderer Renderer
}

// NewDeployer creates a Deployer for the sets in m, rendering with r.
func NewDeployer(m *Manifest, r Renderer) Deployer {
	return &deployer{manifest: m, renderer: r}
}

// Deploy implements Deployer. Context cancellation is checked before each file.
func (d *deployer) Deploy(ctx context.Context, setName, dest string, data any) (*Deployment, error) {
	dep := &Deployment{}

	set, err := d.manifest.Set(setName)
	if err != nil {
		return dep, err
	}

	dest = filepath.Clean(dest)
	for _, rel := range set.Dirs {
		if err := validateDeployPath(dest, rel); err != nil {
			return dep, err
		}
	}
	for _, f := range set.Files {
		if err := validateDeployPath(dest, f.Output); err != nil {
			return dep, err
		}
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return dep, fmt.Errorf("template deploy mkdir %q: %w", dest, err)
	}

	for _, rel := range set.Dirs {
		dir := filepath.Join(dest, filepath.FromSlash(rel))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return dep, fmt.Errorf("template deploy mkdir %q: %w", dir, err)
		}
		dep.Dirs = append(dep.Dirs, dir)
	}

	for _, f := range set.Files {
		if err := ctx.Err(); err != nil {
			return dep, err
		}

		content, err := d.renderer.Render(f.Template, data)
		if err != nil {
			return dep, fmt.Errorf("template render %q: %w", f.Template, err)
		}

		destPath := filepath.Join(dest, filepath.FromSlash(f.Output))
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return dep, fmt.Errorf("template deploy mkdir %q: %w", filepath.Dir(destPath), err)
		}
		if err := os.WriteFile(destPath, content, fs.FileMode(0o644)); err != nil {
			return dep, fmt.Errorf("template deploy write %q: %w", destPath, err)
		}
		dep.Files = append(dep.Files, destPath)
	}

	return dep, nil
}

// validateDeployPath ensures a relative output path does not escape dest.
func validateDeployPath(dest, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("resolve destination: %w", err)
	}

	absPath := filepath.Join(absDest, cleaned)
	if !strings.HasPrefix(absPath, absDest+string(filepath.Separator)) && absPath != absDest {
		return fmt.Errorf("%w: %q escapes %s", ErrPathTraversal, relPath, dest)
	}

	return nil
}
