package template

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"index.vue.tmpl": &fstest.MapFile{
				Data: []byte("<div class=\"[[ .ComponentName ]]\">{{ title }}</div>\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]string{"ComponentName": "userList"}

		result, err := r.Render("index.vue.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "<div class=\"userList\">{{ title }}</div>\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("ts_template_literals_pass_through", func(t *testing.T) {
		fs := fstest.MapFS{
			"index.ts.tmpl": &fstest.MapFile{
				Data: []byte("request.get(`${BASE_URL}/${id}`);\nconst m: Item[][] = [];\n"),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("index.ts.tmpl", map[string]any{})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(result), "${BASE_URL}/${id}") {
			t.Errorf("template literal was altered: %q", result)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("Hello [[.Name]], your role is [[.Role]]"),
			},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Name": "GOOS"})
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("nonexistent.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("parse_error", func(t *testing.T) {
		fs := fstest.MapFS{
			"bad.tmpl": &fstest.MapFile{Data: []byte("[[ if .X ]]unterminated")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("bad.tmpl", map[string]bool{"X": true})
		if err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("default_delims_in_template_text", func(t *testing.T) {
		fs := fstest.MapFS{
			"leak.tmpl": &fstest.MapFile{Data: []byte("<div>{{ .ComponentName }}</div>[[ if .X ]]{{- .Y -}}[[ end ]]")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("leak.tmpl", map[string]any{"ComponentName": "a", "X": true, "Y": "b"})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("default_delims_inside_branch", func(t *testing.T) {
		fs := fstest.MapFS{
			"branch.tmpl": &fstest.MapFile{Data: []byte("[[ if .X ]]ok[[ else ]]{{ .Y }}[[ end ]]")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("branch.tmpl", map[string]any{"X": true})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("data_with_delims_is_rendered", func(t *testing.T) {
		fs := fstest.MapFS{
			"raw.tmpl": &fstest.MapFile{Data: []byte("<div data-view=\"[[ .Raw ]]\">{{ title }}</div>")},
		}
		r := NewRenderer(fs)

		result, err := r.Render("raw.tmpl", map[string]string{"Raw": "[[x]] {{ .Name }}"})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if want := "<div data-view=\"[[x]] {{ .Name }}\">{{ title }}</div>"; string(result) != want {
			t.Errorf("result = %q, want %q", result, want)
		}
	})

	t.Run("helper_funcs", func(t *testing.T) {
		fs := fstest.MapFS{
			"f.tmpl": &fstest.MapFile{Data: []byte("[[ pascal .N ]] [[ camel .N ]] [[ kebab .N ]]")},
		}
		r := NewRenderer(fs)

		result, err := r.Render("f.tmpl", map[string]string{"N": "user_list"})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(result) != "UserList userList user-list" {
			t.Errorf("result = %q", result)
		}
	})

	t.Run("empty_template", func(t *testing.T) {
		fs := fstest.MapFS{
			"empty.tmpl": &fstest.MapFile{Data: []byte("")},
		}
		r := NewRenderer(fs)

		result, err := r.Render("empty.tmpl", nil)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d bytes", len(result))
		}
	})
}

func TestCaseHelpers(t *testing.T) {
	tests := []struct {
		in                   string
		pascal, camel, kebab string
	}{
		{"user", "User", "user", "user"},
		{"user-list", "UserList", "userList", "user-list"},
		{"userList", "UserList", "userList", "user-list"},
		{"order_detail page", "OrderDetailPage", "orderDetailPage", "order-detail-page"},
		{"", "", "", ""},
		{"用户", "用户", "用户", "用户"},
		{"user's", "UserS", "userS", "user-s"},
		{"[[x]]", "X", "x", "x"},
		{"v2 list", "V2List", "v2List", "v2-list"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := PascalCase(tt.in); got != tt.pascal {
				t.Errorf("PascalCase(%q) = %q, want %q", tt.in, got, tt.pascal)
			}
			if got := CamelCase(tt.in); got != tt.camel {
				t.Errorf("CamelCase(%q) = %q, want %q", tt.in, got, tt.camel)
			}
			if got := KebabCase(tt.in); got != tt.kebab {
				t.Errorf("KebabCase(%q) = %q, want %q", tt.in, got, tt.kebab)
			}
		})
	}
}
