package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/modu-ai/scaffold/internal/template/bundle"
)

func TestLoadManifest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := LoadManifest(testFS())
		if err != nil {
			t.Fatalf("LoadManifest error: %v", err)
		}
		if got := m.SetNames(); !slices.Equal(got, []string{"api", "view"}) {
			t.Errorf("SetNames() = %v", got)
		}
		view, err := m.Set("view")
		if err != nil {
			t.Fatalf("Set(view) error: %v", err)
		}
		if len(view.Files) != 2 || view.Files[0].Output != "index.vue" || view.Files[1].Output != "columns.tsx" {
			t.Errorf("view files = %+v", view.Files)
		}
	})

	t.Run("missing_manifest", func(t *testing.T) {
		_, err := LoadManifest(fstest.MapFS{})
		if err == nil {
			t.Fatal("expected error for missing manifest")
		}
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		fsys := fstest.MapFS{ManifestFile: &fstest.MapFile{Data: []byte("sets: [unclosed")}}
		_, err := LoadManifest(fsys)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("no_sets", func(t *testing.T) {
		fsys := fstest.MapFS{ManifestFile: &fstest.MapFile{Data: []byte("sets: {}\n")}}
		_, err := LoadManifest(fsys)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("file_without_output", func(t *testing.T) {
		fsys := testFS()
		fsys[ManifestFile] = &fstest.MapFile{Data: []byte("sets:\n  api:\n    files:\n      - {template: index.ts.tmpl}\n")}
		_, err := LoadManifest(fsys)
		if !errors.Is(err, ErrInvalidManifest) {
			t.Errorf("expected ErrInvalidManifest, got: %v", err)
		}
	})

	t.Run("template_not_in_bundle", func(t *testing.T) {
		fsys := testFS()
		fsys[ManifestFile] = &fstest.MapFile{Data: []byte("sets:\n  api:\n    files:\n      - {template: nope.tmpl, output: nope.ts}\n")}
		_, err := LoadManifest(fsys)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})
}

// The embedded bundle must load and render with the contexts the workflow passes.
func TestBundle(t *testing.T) {
	m, err := LoadManifest(bundle.FS)
	if err != nil {
		t.Fatalf("LoadManifest(bundle) error: %v", err)
	}
	d := NewDeployer(m, NewRenderer(bundle.FS))
	root := t.TempDir()

	viewDir := filepath.Join(root, "src", "views", "firstLevel", "secondLevel")
	if _, err := d.Deploy(context.Background(), "view", viewDir, map[string]any{"ComponentName": "secondLevel"}); err != nil {
		t.Fatalf("Deploy(view) error: %v", err)
	}
	vue, err := os.ReadFile(filepath.Join(viewDir, "index.vue"))
	if err != nil {
		t.Fatalf("read index.vue: %v", err)
	}
	for _, want := range []string{`data-view="secondLevel"`, "name: 'SecondLevel'", "second-level-page"} {
		if !strings.Contains(string(vue), want) {
			t.Errorf("index.vue missing %q:\n%s", want, vue)
		}
	}
	if !strings.Contains(string(vue), `v-for="col in columns"`) {
		t.Errorf("index.vue lost its Vue markup:\n%s", vue)
	}

	apiDir := filepath.Join(root, "src", "api", "firstLevel", "secondLevel")
	if _, err := d.Deploy(context.Background(), "api", apiDir, map[string]any{}); err != nil {
		t.Fatalf("Deploy(api) error: %v", err)
	}
	for _, name := range []string{"index.ts", "model.d.ts"} {
		data, err := os.ReadFile(filepath.Join(apiDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestBundle_UnusualFolderNames(t *testing.T) {
	m, err := LoadManifest(bundle.FS)
	if err != nil {
		t.Fatalf("LoadManifest(bundle) error: %v", err)
	}
	d := NewDeployer(m, NewRenderer(bundle.FS))

	tests := []struct {
		name string
		want []string
	}{
		{"user's", []string{`data-view="user&#39;s"`, "name: 'UserS'", ".user-s-page {"}},
		{"[[x]]", []string{`data-view="[[x]]"`, "name: 'X'", `class="x-page"`}},
		{`a"b<c>`, []string{`data-view="a&#34;b&lt;c&gt;"`, "name: 'ABC'"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if _, err := d.Deploy(context.Background(), "view", dir, map[string]any{"ComponentName": tt.name}); err != nil {
				t.Fatalf("Deploy(view) error: %v", err)
			}
			vue, err := os.ReadFile(filepath.Join(dir, "index.vue"))
			if err != nil {
				t.Fatalf("read index.vue: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(vue), want) {
					t.Errorf("index.vue missing %q:\n%s", want, vue)
				}
			}
		})
	}
}
