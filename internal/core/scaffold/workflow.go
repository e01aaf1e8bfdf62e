package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"golang.org/x/text/unicode/norm"

	"github.com/modu-ai/scaffold/internal/core/project"
	"github.com/modu-ai/scaffold/internal/locale"
	"github.com/modu-ai/scaffold/internal/prompt"
	"github.com/modu-ai/scaffold/internal/template"
	"github.com/modu-ai/scaffold/internal/ui"
)

// Template set names in the bundle manifest.
const (
	ViewSet = "view"
	APISet  = "api"
)

// Options wires a Workflow to its collaborators. Root must be an absolute,
// existing project root; see project.ResolveRoot.
type Options struct {
	Root     string
	Prompter prompt.Prompter
	Deployer template.Deployer
	Progress ui.Progress
	Catalog  *locale.Catalog
	Out      io.Writer // status lines
	ErrOut   io.Writer // error detail of failed steps
	Logger   *slog.Logger
}

// session is the mutable state of one Run.
type session struct {
	answers Answers
	steps   []StepResult
}

type stateFunc func(ctx context.Context, s *session) (State, error)

// Workflow drives the interview. A Workflow may be run more than once; each
// Run starts a fresh session.
type Workflow struct {
	opts   Options
	layout project.Layout
	states map[State]stateFunc
}

// New creates a Workflow. Nil writers discard output and a nil logger
// discards logs.
func New(opts Options) *Workflow {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.ErrOut == nil {
		opts.ErrOut = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Catalog == nil {
		opts.Catalog = locale.NewCatalog(locale.Default)
	}

	w := &Workflow{opts: opts, layout: project.NewLayout(opts.Root)}
	w.states = map[State]stateFunc{
		StateAskFirstLevel:  w.askFirstLevel,
		StateAskSecondLevel: w.askSecondLevel,
		StateAskTemplates:   w.askTemplates,
		StateAskAPI:         w.askAPI,
	}
	return w
}

// Run asks every question in order and performs the side effects of each
// answer. Folder creation, listing and prompt errors end the session and are
// returned; file-creation failures are recorded in Result.Steps instead.
func (w *Workflow) Run(ctx context.Context) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, &PanicError{Value: r}
		}
	}()

	s := &session{}
	state := StateAskFirstLevel
	for state != StateDone {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fn, ok := w.states[state]
		if !ok {
			return nil, fmt.Errorf("scaffold: no handler for %s", state)
		}

		w.opts.Logger.Debug("scaffold state", "state", state.String())
		next, err := fn(ctx, s)
		if err != nil {
			w.opts.Logger.Debug("scaffold session aborted", "state", state.String(), "error", err)
			return nil, err
		}
		state = next
	}

	return &Result{Answers: s.answers, Steps: s.steps}, nil
}

func (w *Workflow) askFirstLevel(ctx context.Context, s *session) (State, error) {
	wants, err := w.opts.Prompter.Confirm(ctx, locale.AskFirstLevel, true)
	if err != nil {
		return StateDone, err
	}
	s.answers.WantsFirstLevel = wants

	if wants {
		name, err := w.opts.Prompter.Input(ctx, locale.AskFirstLevelName)
		if err != nil {
			return StateDone, err
		}
		s.answers.FirstLevelName = normalizeName(name)

		dir := w.layout.FirstLevelPath(s.answers.FirstLevelName)
		if err := project.EnsureDir(dir); err != nil {
			return StateDone, err
		}
		w.println(w.opts.Catalog.Format(locale.FirstLevelCreated, dir))
		return StateAskSecondLevel, nil
	}

	entries, err := w.layout.ListViews()
	if err != nil {
		return StateDone, err
	}
	if len(entries) == 0 {
		return StateDone, fmt.Errorf("%w: %s", ErrNoEntries, w.layout.ViewsRoot())
	}

	selected, err := w.opts.Prompter.Select(ctx, locale.AskSelectFirstLevel, entries)
	if err != nil {
		return StateDone, err
	}
	s.answers.FirstLevelName = selected
	w.opts.Logger.Debug("first-level folder selected", "name", selected)
	return StateAskSecondLevel, nil
}

func (w *Workflow) askSecondLevel(ctx context.Context, s *session) (State, error) {
	wants, err := w.opts.Prompter.Confirm(ctx, locale.AskSecondLevel, true)
	if err != nil {
		return StateDone, err
	}
	s.answers.WantsSecondLevel = wants
	if !wants {
		return StateAskTemplates, nil
	}

	name, err := w.opts.Prompter.Input(ctx, locale.AskSecondLevelName)
	if err != nil {
		return StateDone, err
	}
	s.answers.SecondLevelName = normalizeName(name)

	dir := w.layout.TargetFolder(s.answers.Levels())
	if err := project.EnsureDir(dir); err != nil {
		return StateDone, err
	}
	w.println(w.opts.Catalog.Format(locale.SecondLevelCreated, dir))
	return StateAskTemplates, nil
}

func (w *Workflow) askTemplates(ctx context.Context, s *session) (State, error) {
	wants, err := w.opts.Prompter.Confirm(ctx, locale.AskTemplateFiles, true)
	if err != nil {
		return StateDone, err
	}
	s.answers.WantsTemplateFiles = wants
	if !wants {
		return StateAskAPI, nil
	}

	target := w.layout.TargetFolder(s.answers.Levels())
	sp := w.opts.Progress.Spinner(w.opts.Catalog.Text(locale.CreatingTemplates))
	data := map[string]any{"ComponentName": filepath.Base(target)}

	res := w.deploy(ctx, sp, StepTemplateFiles, ViewSet, target, data)
	s.steps = append(s.steps, w.finish(sp, res, locale.TemplatesCreated, locale.TemplatesFailed))
	return StateAskAPI, nil
}

func (w *Workflow) askAPI(ctx context.Context, s *session) (State, error) {
	wants, err := w.opts.Prompter.Confirm(ctx, locale.AskAPIFiles, true)
	if err != nil {
		return StateDone, err
	}
	s.answers.WantsAPIFiles = wants
	if !wants {
		return StateDone, nil
	}

	dir := w.layout.APITargetFolder(s.answers.Levels())
	sp := w.opts.Progress.Spinner(w.opts.Catalog.Text(locale.CreatingAPIFiles))

	res := StepResult{Step: StepAPIFiles, Dir: dir}
	if err := project.EnsureDir(dir); err != nil {
		res.Err = err
	} else {
		sp.Println(w.opts.Catalog.Format(locale.APIDirCreated, dir))
		res = w.deploy(ctx, sp, StepAPIFiles, APISet, dir, map[string]any{})
	}
	s.steps = append(s.steps, w.finish(sp, res, locale.APIFilesCreated, locale.APIFilesFailed))
	return StateDone, nil
}

// deploy writes one template set and reports created folders on sp.
func (w *Workflow) deploy(ctx context.Context, sp ui.Spinner, step Step, set, dest string, data map[string]any) StepResult {
	res := StepResult{Step: step, Dir: dest}

	dep, err := w.opts.Deployer.Deploy(ctx, set, dest, data)
	if dep != nil {
		for _, d := range dep.Dirs {
			sp.Println(w.opts.Catalog.Format(locale.DirCreated, filepath.Base(d), d))
		}
		res.Files = dep.Files
	}
	res.Err = err
	return res
}

// finish stops sp with the outcome of res and returns res with OK set.
func (w *Workflow) finish(sp ui.Spinner, res StepResult, okID, failID locale.MessageID) StepResult {
	if res.Err != nil {
		sp.Fail(w.opts.Catalog.Text(failID))
		_, _ = fmt.Fprintln(w.opts.ErrOut, res.Err)
		w.opts.Logger.Debug("scaffold step failed", "step", string(res.Step), "dir", res.Dir, "error", res.Err)
		return res
	}

	res.OK = true
	sp.Succeed(w.opts.Catalog.Text(okID))
	w.opts.Logger.Debug("scaffold step completed", "step", string(res.Step), "dir", res.Dir, "files", len(res.Files))
	return res
}

func (w *Workflow) println(line string) {
	_, _ = fmt.Fprintln(w.opts.Out, line)
}

// normalizeName returns name in Unicode NFC so that folder names typed on
// different platforms compare equal.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}
