// Package project resolves the project root a scaffolding session works in
// and derives the views and API folder layout from the session answers.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidRoot indicates the given project root path is invalid or inaccessible.
	ErrInvalidRoot = errors.New("invalid project root path")

	// ErrViewsRootNotFound indicates src/views does not exist under the project root.
	ErrViewsRootNotFound = errors.New("views directory not found")
)
