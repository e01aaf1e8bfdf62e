package template

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		ManifestFile: &fstest.MapFile{Data: []byte(`
sets:
  view:
    dirs: [components]
    files:
      - {template: index.vue.tmpl, output: index.vue}
      - {template: columns.tsx.tmpl, output: columns.tsx}
  api:
    files:
      - {template: index.ts.tmpl, output: index.ts}
`)},
		"index.vue.tmpl":   &fstest.MapFile{Data: []byte("<template>[[ .ComponentName ]]</template>\n")},
		"columns.tsx.tmpl": &fstest.MapFile{Data: []byte("export const columns = [];\n")},
		"index.ts.tmpl":    &fstest.MapFile{Data: []byte("export {};\n")},
	}
}

func testDeployer(t *testing.T, fsys fstest.MapFS) Deployer {
	t.Helper()
	m, err := LoadManifest(fsys)
	if err != nil {
		t.Fatalf("LoadManifest error: %v", err)
	}
	return NewDeployer(m, NewRenderer(fsys))
}

func TestDeployerDeploy(t *testing.T) {
	t.Run("successful_deployment", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "src", "views", "user")
		d := testDeployer(t, testFS())

		dep, err := d.Deploy(context.Background(), "view", dest, map[string]any{"ComponentName": "user"})
		if err != nil {
			t.Fatalf("Deploy error: %v", err)
		}

		if len(dep.Dirs) != 1 || dep.Dirs[0] != filepath.Join(dest, "components") {
			t.Errorf("Dirs = %v", dep.Dirs)
		}
		if info, err := os.Stat(filepath.Join(dest, "components")); err != nil || !info.IsDir() {
			t.Errorf("components folder missing: %v", err)
		}

		content, err := os.ReadFile(filepath.Join(dest, "index.vue"))
		if err != nil {
			t.Fatalf("ReadFile error: %v", err)
		}
		if string(content) != "<template>user</template>\n" {
			t.Errorf("index.vue = %q", content)
		}
		if _, err := os.Stat(filepath.Join(dest, "columns.tsx")); err != nil {
			t.Errorf("columns.tsx missing: %v", err)
		}
		if len(dep.Files) != 2 {
			t.Errorf("Files = %v, want 2 entries", dep.Files)
		}
	})

	t.Run("overwrites_existing_files", func(t *testing.T) {
		dest := t.TempDir()
		if err := os.WriteFile(filepath.Join(dest, "index.ts"), []byte("stale"), 0o644); err != nil {
			t.Fatal(err)
		}
		d := testDeployer(t, testFS())

		for i := range 2 {
			if _, err := d.Deploy(context.Background(), "api", dest, map[string]any{}); err != nil {
				t.Fatalf("Deploy call %d error: %v", i+1, err)
			}
		}

		content, _ := os.ReadFile(filepath.Join(dest, "index.ts"))
		if string(content) != "export {};\n" {
			t.Errorf("index.ts = %q, want rendered content", content)
		}
	})

	t.Run("unknown_set", func(t *testing.T) {
		d := testDeployer(t, testFS())

		_, err := d.Deploy(context.Background(), "store", t.TempDir(), nil)
		if !errors.Is(err, ErrUnknownSet) {
			t.Errorf("expected ErrUnknownSet, got: %v", err)
		}
	})

	t.Run("render_failure_keeps_partial_output", func(t *testing.T) {
		dest := t.TempDir()
		d := testDeployer(t, testFS())

		// index.vue needs ComponentName.
		dep, err := d.Deploy(context.Background(), "view", dest, map[string]any{})
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Fatalf("expected ErrMissingTemplateKey, got: %v", err)
		}
		if len(dep.Dirs) != 1 {
			t.Errorf("components folder should be reported as created, got %v", dep.Dirs)
		}
		if len(dep.Files) != 0 {
			t.Errorf("no files expected, got %v", dep.Files)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		d := testDeployer(t, testFS())

		_, err := d.Deploy(ctx, "api", t.TempDir(), map[string]any{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got: %v", err)
		}
	})

	t.Run("path_traversal_rejected", func(t *testing.T) {
		fsys := testFS()
		fsys[ManifestFile] = &fstest.MapFile{Data: []byte(`
sets:
  evil:
    files:
      - {template: index.ts.tmpl, output: ../../escape.ts}
`)}
		d := testDeployer(t, fsys)
		dest := t.TempDir()

		_, err := d.Deploy(context.Background(), "evil", dest, map[string]any{})
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("expected ErrPathTraversal, got: %v", err)
		}
	})
}

func TestValidateDeployPath(t *testing.T) {
	dest := t.TempDir()

	tests := []struct {
		name    string
		rel     string
		wantErr bool
	}{
		{"plain_file", "index.vue", false},
		{"nested", "components/a.vue", false},
		{"dotdot_inside_name", "..hidden", false},
		{"parent", "..", true},
		{"escape", "../x", true},
		{"absolute", "/etc/passwd", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDeployPath(dest, tt.rel)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDeployPath(%q) error = %v, wantErr %v", tt.rel, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "path traversal") {
				t.Errorf("error %v should wrap ErrPathTraversal", err)
			}
		})
	}
}
