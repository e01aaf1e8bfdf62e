package template

import (
	"fmt"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the name of the bundle manifest inside the template FS.
const ManifestFile = "manifest.yaml"

// Manifest describes the named template sets of a bundle.
type Manifest struct {
	Sets map[string]Set `yaml:"sets"`
}

// Set is a group of folders and files written together into one destination.
type Set struct {
	Dirs  []string `yaml:"dirs"`  // folders created under the destination
	Files []File   `yaml:"files"` // files rendered into the destination
}

// File maps a bundle template to its output path relative to the destination.
type File struct {
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
}

// LoadManifest reads and validates ManifestFile from fsys.
func LoadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ManifestFile, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.validate(fsys); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate(fsys fs.FS) error {
	if len(m.Sets) == 0 {
		return fmt.Errorf("%w: no template sets", ErrInvalidManifest)
	}
	for name, set := range m.Sets {
		if len(set.Files) == 0 && len(set.Dirs) == 0 {
			return fmt.Errorf("%w: set %q is empty", ErrInvalidManifest, name)
		}
		for i, f := range set.Files {
			if f.Template == "" || f.Output == "" {
				return fmt.Errorf("%w: set %q file %d needs template and output", ErrInvalidManifest, name, i)
			}
			if _, err := fs.Stat(fsys, f.Template); err != nil {
				return fmt.Errorf("%w: set %q: %s", ErrTemplateNotFound, name, f.Template)
			}
		}
	}
	return nil
}

// Set returns the template set with the given name.
func (m *Manifest) Set(name string) (Set, error) {
	s, ok := m.Sets[name]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	return s, nil
}

// SetNames returns the sorted names of all template sets.
func (m *Manifest) SetNames() []string {
	names := make([]string, 0, len(m.Sets))
	for name := range m.Sets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
