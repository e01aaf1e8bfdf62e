package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner reports progress of one long-running step.
type Spinner interface {
	// Println prints a status line above the spinner.
	Println(line string)
	// Succeed stops the spinner and prints a success line.
	Succeed(msg string)
	// Fail stops the spinner and prints a failure line.
	Fail(msg string)
}

// Progress creates spinners.
type Progress interface {
	Spinner(title string) Spinner
}

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress that writes to w.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Spinner creates an indeterminate spinner.
// In headless mode it prints the title as a log line.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newHeadlessSpinner(p.theme, title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

// --- interactiveSpinner ---

// spinnerLineMsg is sent to show a status line above the spinner.
type spinnerLineMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	lines   []string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerLineMsg:
		m.lines = append(m.lines, string(msg))
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	for _, l := range m.lines {
		b.WriteString(l + "\n")
	}
	b.WriteString(m.spinner.View() + " " + m.title + "\n")
	return b.String()
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
// Status lines are redrawn with the spinner and written out once it stops.
type interactiveSpinner struct {
	theme   *Theme
	program *tea.Program
	writer  io.Writer
	mu      sync.Mutex
	lines   []string
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	m := newSpinnerModel(theme, title)
	p := tea.NewProgram(m, tea.WithOutput(w))

	s := &interactiveSpinner{theme: theme, program: p, writer: w}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// Println shows line above the spinner.
func (s *interactiveSpinner) Println(line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	s.program.Send(spinnerLineMsg(line))
}

// Succeed stops the spinner and prints msg with a check mark.
func (s *interactiveSpinner) Succeed(msg string) {
	s.finish(s.theme.SuccessMark() + " " + msg)
}

// Fail stops the spinner and prints msg with a cross.
func (s *interactiveSpinner) Fail(msg string) {
	s.finish(s.theme.FailMark() + " " + msg)
}

func (s *interactiveSpinner) finish(line string) {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()

		s.mu.Lock()
		defer s.mu.Unlock()
		for _, l := range s.lines {
			_, _ = fmt.Fprintln(s.writer, l)
		}
		_, _ = fmt.Fprintln(s.writer, line)
	})
}

// --- headlessSpinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	theme   *Theme
	writer  io.Writer
	stopped bool
}

// newHeadlessSpinner creates a headless spinner that prints the title.
func newHeadlessSpinner(theme *Theme, title string, w io.Writer) *headlessSpinner {
	s := &headlessSpinner{
		theme:  theme,
		writer: w,
	}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return s
}

// Println writes line as-is.
func (s *headlessSpinner) Println(line string) {
	_, _ = fmt.Fprintln(s.writer, line)
}

// Succeed prints msg with a check mark.
func (s *headlessSpinner) Succeed(msg string) {
	s.finish(s.theme.SuccessMark() + " " + msg)
}

// Fail prints msg with a cross.
func (s *headlessSpinner) Fail(msg string) {
	s.finish(s.theme.FailMark() + " " + msg)
}

func (s *headlessSpinner) finish(line string) {
	if s.stopped {
		return
	}
	s.stopped = true
	_, _ = fmt.Fprintln(s.writer, line)
}
