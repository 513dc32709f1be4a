package session

import (
	"github.com/lox/teamgen/internal/partition"
	"github.com/lox/teamgen/internal/roster"
)

// Kind identifies which view a session is in.
type Kind int

const (
	Setup Kind = iota
	Results
)

func (k Kind) String() string {
	switch k {
	case Setup:
		return "setup"
	case Results:
		return "results"
	default:
		return "unknown"
	}
}

// State is the session's current state. It is one of SetupState or
// ResultsState.
type State interface {
	Kind() Kind
	isState()
}

// SetupState is the form-editing state. Previous holds the input of the last
// successful generation, or nil if nothing has been generated yet.
type SetupState struct {
	Previous *roster.ValidatedInput
}

func (SetupState) Kind() Kind { return Setup }
func (SetupState) isState() {}

// ResultsState holds a generated team set and the input it was built from.
type ResultsState struct {
	Input roster.ValidatedInput
	Teams partition.TeamSet
}

func (ResultsState) Kind() Kind { return Results }
func (ResultsState) isState() {}
