// Package ui provides terminal presentation for scaffolding sessions:
// headless detection, the shared colour theme, and an ora-style spinner
// with succeed/fail lines.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand colours shared by the spinner and the prompt theme.
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorMuted     = "#6B7280"
	ColorText      = "#F9FAFB"
	ColorBorder    = "#4B5563"
)

// ThemeColors holds the hex colours of a Theme.
type ThemeColors struct {
	Primary string
	Success string
	Error   string
}

// ThemeConfig configures NewTheme.
type ThemeConfig struct {
	NoColor bool
}

// Theme is the colour palette used by every UI component.
type Theme struct {
	Colors  ThemeColors
	NoColor bool
}

// NewTheme creates a Theme from cfg.
func NewTheme(cfg ThemeConfig) *Theme {
	return &Theme{
		Colors: ThemeColors{
			Primary: ColorPrimary,
			Success: ColorSuccess,
			Error:   ColorError,
		},
		NoColor: cfg.NoColor,
	}
}

// SuccessMark returns the check mark printed by Spinner.Succeed.
func (t *Theme) SuccessMark() string {
	return t.mark("✔", t.Colors.Success)
}

// FailMark returns the cross printed by Spinner.Fail.
func (t *Theme) FailMark() string {
	return t.mark("✖", t.Colors.Error)
}

func (t *Theme) mark(symbol, color string) string {
	if t.NoColor {
		return symbol
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(symbol)
}
