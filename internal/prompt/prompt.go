// Package prompt asks the questions of a scaffolding session. Terminal
// renders huh forms on a TTY; Line speaks a plain line protocol over any
// reader/writer pair and is used for pipes, scripts and tests.
package prompt

import (
	"context"
	"errors"

	"github.com/modu-ai/scaffold/internal/locale"
)

// Error definitions for the prompt package.
var (
	// ErrCancelled is returned when the user aborts a question.
	ErrCancelled = errors.New("prompt: cancelled by user")
	// ErrNoChoices is returned when Select is given an empty list.
	ErrNoChoices = errors.New("prompt: no choices to select from")
)

// Prompter asks one question at a time. Titles are looked up by message ID
// in the prompter's locale catalog.
type Prompter interface {
	// Confirm asks a yes/no question; def is returned for an empty answer.
	Confirm(ctx context.Context, id locale.MessageID, def bool) (bool, error)
	// Input asks for free text and returns it verbatim.
	Input(ctx context.Context, id locale.MessageID) (string, error)
	// Select asks the user to pick one of choices.
	Select(ctx context.Context, id locale.MessageID, choices []string) (string, error)
}
