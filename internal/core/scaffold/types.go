// Package scaffold runs one interactive scaffolding session: it asks the
// folder and file questions in a fixed order, creates the views folders,
// and deploys the view and API template sets.
package scaffold

import (
	"errors"
	"fmt"

	"github.com/modu-ai/scaffold/internal/core/project"
)

// State is a step of the session state machine.
type State int

const (
	// StateAskFirstLevel asks whether to create or select the first-level folder.
	StateAskFirstLevel State = iota
	// StateAskSecondLevel asks whether to create a second-level folder.
	StateAskSecondLevel
	// StateAskTemplates asks whether to write the view template files.
	StateAskTemplates
	// StateAskAPI asks whether to write the API files.
	StateAskAPI
	// StateDone ends the session.
	StateDone
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateAskFirstLevel:
		return "ask_first_level"
	case StateAskSecondLevel:
		return "ask_second_level"
	case StateAskTemplates:
		return "ask_templates"
	case StateAskAPI:
		return "ask_api"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Answers is the record accumulated across the interview.
type Answers struct {
	WantsFirstLevel    bool
	FirstLevelName     string // entered, or selected from src/views
	WantsSecondLevel   bool
	SecondLevelName    string
	WantsTemplateFiles bool
	WantsAPIFiles      bool
}

// Levels converts the folder answers for path derivation.
func (a Answers) Levels() project.Levels {
	return project.Levels{
		FirstCreated:  a.WantsFirstLevel,
		First:         a.FirstLevelName,
		SecondCreated: a.WantsSecondLevel,
		Second:        a.SecondLevelName,
	}
}

// Step names a file-creation step whose failure does not end the session.
type Step string

const (
	StepTemplateFiles Step = "template_files"
	StepAPIFiles      Step = "api_files"
)

// StepResult is the outcome of one file-creation step.
type StepResult struct {
	Step  Step
	OK    bool
	Err   error
	Dir   string   // folder the files were written to
	Files []string // files written before any failure
}

// Result is the outcome of a completed session.
type Result struct {
	Answers Answers
	Steps   []StepResult
}

// Failed reports whether any file-creation step failed.
func (r *Result) Failed() bool {
	for _, s := range r.Steps {
		if !s.OK {
			return true
		}
	}
	return false
}

// ErrNoEntries is returned when src/views exists but has nothing to select.
var ErrNoEntries = errors.New("scaffold: no entries under views directory")

// PanicError carries a value recovered from a panic during the session.
type PanicError struct {
	Value any
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
