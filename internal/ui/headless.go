package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether a session runs without a TTY. Headless
// sessions use the line-oriented prompter and plain spinner output.
type HeadlessManager struct {
	forced *bool
	in     io.Reader
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of in. Readers that are not files are always headless.
func NewHeadlessManager(in io.Reader) *HeadlessManager {
	return &HeadlessManager{in: in}
}

// IsHeadless returns true when the UI should operate in headless mode.
// ForceHeadless overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	f, ok := h.in.(*os.File)
	if !ok || f == nil {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}
