// Package template renders the bundled boilerplate templates and writes
// named template sets into a destination folder.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template is not in the bundle.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates template execution referenced a key the data lacks.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template text holds a field action in "{{ }}" delimiters.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrPathTraversal indicates an output path escapes its destination folder.
	ErrPathTraversal = errors.New("template: path traversal")

	// ErrUnknownSet indicates the manifest has no template set with the given name.
	ErrUnknownSet = errors.New("template: unknown template set")

	// ErrInvalidManifest indicates the bundle manifest is malformed.
	ErrInvalidManifest = errors.New("template: invalid manifest")
)
