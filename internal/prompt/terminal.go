package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/scaffold/internal/locale"
	"github.com/modu-ai/scaffold/internal/ui"
)

// Terminal is a Prompter backed by huh forms. Each question runs as its own
// form so that a question is never pending while another is shown.
type Terminal struct {
	cat   *locale.Catalog
	theme *huh.Theme
	in    io.Reader
	out   io.Writer
}

// NewTerminal creates a Terminal prompter reading keys from in and drawing to out.
func NewTerminal(cat *locale.Catalog, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{cat: cat, theme: newScaffoldTheme(), in: in, out: out}
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(ctx context.Context, id locale.MessageID, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(t.cat.Text(id)).
		Affirmative(t.cat.Text(locale.Yes)).
		Negative(t.cat.Text(locale.No)).
		Value(&value)

	if err := t.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

// Input implements Prompter.
func (t *Terminal) Input(ctx context.Context, id locale.MessageID) (string, error) {
	var value string
	field := huh.NewInput().
		Title(t.cat.Text(id)).
		Value(&value)

	if err := t.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Select implements Prompter.
func (t *Terminal) Select(ctx context.Context, id locale.MessageID, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	value := choices[0]
	field := huh.NewSelect[string]().
		Title(t.cat.Text(id)).
		Options(huh.NewOptions(choices...)...).
		Value(&value)

	if err := t.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

func (t *Terminal) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(t.theme).
		WithInput(t.in).
		WithOutput(t.out).
		WithAccessible(false)

	return formError(form.RunWithContext(ctx))
}

// formError maps huh errors to package errors.
func formError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted):
		return ErrCancelled
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("prompt: %w", err)
	}
}

// newScaffoldTheme creates a huh.Theme in the shared brand colours.
func newScaffoldTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ui.ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ui.ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ui.ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ui.ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	return t
}
