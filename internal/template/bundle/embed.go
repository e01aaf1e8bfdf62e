// Package bundle embeds the boilerplate templates and their manifest.
package bundle

import "embed"

// FS holds manifest.yaml and every *.tmpl file the manifest references.
//
//go:embed manifest.yaml *.tmpl
var FS embed.FS
