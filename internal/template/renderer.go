package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
	"text/template/parse"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Template delimiters. Vue "{{ }}" interpolation and TS "${}" literals in the
// bundled templates must pass through untouched.
const (
	LeftDelim  = "[["
	RightDelim = "]]"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	"pascal": PascalCase,
	"camel":  CamelCase,
	"kebab":  KebabCase,
}

// unexpandedTokenPattern detects a field action written with the default
// "{{ }}" delimiters, which the parser leaves as literal text.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{-?\s*\.[A-Za-z_][A-Za-z0-9_.]*\s*-?\}\}`)

// Renderer renders text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the bundle FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if the template text holds a field
	// action in the wrong delimiters.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Delims(LeftDelim, RightDelim).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	if tmpl.Tree == nil {
		return []byte{}, nil
	}
	// Only literal template text is scanned; rendered data may hold anything.
	if tok := literalToken(tmpl.Tree.Root); tok != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(tok), templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	return buf.Bytes(), nil
}

// literalToken returns the first unexpanded token in the text nodes of n.
func literalToken(n parse.Node) []byte {
	switch n := n.(type) {
	case *parse.ListNode:
		if n == nil {
			return nil
		}
		for _, c := range n.Nodes {
			if tok := literalToken(c); tok != nil {
				return tok
			}
		}
	case *parse.TextNode:
		return unexpandedTokenPattern.Find(n.Text)
	case *parse.IfNode:
		return branchToken(&n.BranchNode)
	case *parse.RangeNode:
		return branchToken(&n.BranchNode)
	case *parse.WithNode:
		return branchToken(&n.BranchNode)
	}
	return nil
}

func branchToken(b *parse.BranchNode) []byte {
	if tok := literalToken(b.List); tok != nil {
		return tok
	}
	return literalToken(b.ElseList)
}

// splitWords breaks an identifier into words on any rune that is not a
// letter or digit and on lower-to-upper case transitions
// ("userList-page" -> user, List, page).
func splitWords(s string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

// PascalCase converts an identifier to PascalCase ("user-list" -> "UserList").
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(cases.Title(language.Und, cases.NoLower).String(w))
	}
	return b.String()
}

// CamelCase converts an identifier to camelCase ("user-list" -> "userList").
func CamelCase(s string) string {
	p := PascalCase(s)
	if p == "" {
		return p
	}
	r := []rune(p)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// KebabCase converts an identifier to kebab-case ("UserList" -> "user-list").
func KebabCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}
