package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/modu-ai/scaffold/internal/locale"
)

// Line is a Prompter that writes "? <title>" to w and reads one line per
// answer from r. Invalid confirm and select answers are asked again.
type Line struct {
	r   *bufio.Reader
	w   io.Writer
	cat *locale.Catalog

	// pending holds a read left running by a cancelled question; the next
	// question takes its result instead of starting a second reader.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewLine creates a Line prompter.
func NewLine(r io.Reader, w io.Writer, cat *locale.Catalog) *Line {
	return &Line{r: bufio.NewReader(r), w: w, cat: cat}
}

// Confirm implements Prompter.
func (l *Line) Confirm(ctx context.Context, id locale.MessageID, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	for {
		l.printf("? %s %s ", l.cat.Text(id), hint)
		answer, err := l.readLine(ctx)
		if err != nil {
			return false, err
		}
		if v, ok := parseConfirm(answer, def); ok {
			return v, nil
		}
		l.printf(">> %s\n", l.cat.Text(locale.InvalidConfirm))
	}
}

// Input implements Prompter.
func (l *Line) Input(ctx context.Context, id locale.MessageID) (string, error) {
	l.printf("? %s ", l.cat.Text(id))
	return l.readLine(ctx)
}

// Select implements Prompter. The answer may be a choice or its 1-based number.
func (l *Line) Select(ctx context.Context, id locale.MessageID, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	l.printf("? %s\n", l.cat.Text(id))
	for i, c := range choices {
		l.printf("  %d) %s\n", i+1, c)
	}

	for {
		l.printf("  > ")
		answer, err := l.readLine(ctx)
		if err != nil {
			return "", err
		}
		if v, ok := matchChoice(answer, choices); ok {
			return v, nil
		}
		l.printf(">> %s\n", l.cat.Text(locale.InvalidChoice))
	}
}

// readLine reads one answer without its line terminator. A final line
// without a newline is accepted; EOF before any input is an error. The
// read is abandoned when ctx is done.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if l.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := l.r.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		l.pending = ch
	}

	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-l.pending:
		l.pending = nil
	}

	line, err := res.line, res.err
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *Line) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.w, format, args...)
}

// parseConfirm interprets a yes/no answer. The second result is false when
// the answer is not recognised.
func parseConfirm(answer string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, true
	case "y", "yes", "是", "true":
		return true, true
	case "n", "no", "否", "false":
		return false, true
	default:
		return false, false
	}
}

// matchChoice resolves an answer to one of choices, by exact name first
// and then by 1-based index.
func matchChoice(answer string, choices []string) (string, bool) {
	if slices.Contains(choices, answer) {
		return answer, true
	}
	trimmed := strings.TrimSpace(answer)
	if slices.Contains(choices, trimmed) {
		return trimmed, true
	}
	if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= len(choices) {
		return choices[n-1], true
	}
	return "", false
}
