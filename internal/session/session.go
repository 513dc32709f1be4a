// Package session sequences the setup → results → regenerate/back flow and
// keeps the last valid input so it can be reused.
package session

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/teamgen/internal/partition"
	"github.com/lox/teamgen/internal/roster"
)

var (
	// ErrInvalidTransition is returned when an operation is not available in
	// the session's current state.
	ErrInvalidTransition = errors.New("operation not available in current state")

	// ErrNoPreviousInput is returned by Regenerate when no teams have been
	// generated yet.
	ErrNoPreviousInput = errors.New("no previous input to regenerate from")
)

// Session owns one user's setup/results flow. It is not safe for concurrent
// use; every call is expected to come from the UI's event loop.
type Session struct {
	partitioner *partition.Partitioner
	logger      *log.Logger
	state       State
}

// New creates a session in the Setup state with no previous input.
func New(partitioner *partition.Partitioner, logger *log.Logger) *Session {
	return &Session{
		partitioner: partitioner,
		logger:      logger.WithPrefix("session"),
		state:       SetupState{},
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Kind is shorthand for State().Kind().
func (s *Session) Kind() Kind {
	return s.state.Kind()
}

// Teams returns a copy of the current team set, or nil outside Results.
func (s *Session) Teams() partition.TeamSet {
	if rs, ok := s.state.(ResultsState); ok {
		return rs.Teams.Clone()
	}
	return nil
}

// Previous returns the input of the last successful generation.
func (s *Session) Previous() (roster.ValidatedInput, bool) {
	switch st := s.state.(type) {
	case ResultsState:
		return st.Input.Clone(), true
	case SetupState:
		if st.Previous != nil {
			return st.Previous.Clone(), true
		}
	}
	return roster.ValidatedInput{}, false
}

// SetupDefaults returns the values the setup form should start with: the last
// successful input, or the default form when nothing has been generated.
func (s *Session) SetupDefaults() roster.Input {
	if prev, ok := s.Previous(); ok {
		return prev.Input()
	}
	return roster.DefaultInput()
}

// SubmitSetup validates the raw form values and, if they pass, generates a
// new team set and moves to Results.
//
// A validation failure is returned as a roster.ValidationError and leaves the
// session untouched. Calling SubmitSetup outside Setup returns
// ErrInvalidTransition.
func (s *Session) SubmitSetup(rawNames []string, teamCount, playersPerTeam int) (partition.TeamSet, error) {
	if _, ok := s.state.(SetupState); !ok {
		return nil, fmt.Errorf("submit setup from %s: %w", s.Kind(), ErrInvalidTransition)
	}

	cfg := roster.NewTeamConfig(teamCount, playersPerTeam)
	validated, err := roster.Validate(rawNames, cfg)
	if err != nil {
		s.logger.Debug("Setup rejected", "error", err)
		return nil, err
	}

	teams := s.partitioner.Partition(validated.Players, cfg.TeamCount)
	s.state = ResultsState{Input: validated, Teams: teams}

	s.logger.Info("Teams generated",
		"players", len(validated.Players),
		"teams", cfg.TeamCount,
		"playersPerTeam", cfg.PlayersPerTeam)

	return teams.Clone(), nil
}

// Regenerate draws a new team set from the stored input without
// re-validating it. It is only available in Results: before the first
// generation it returns ErrNoPreviousInput, and from Setup after a generation
// it returns ErrInvalidTransition.
func (s *Session) Regenerate() (partition.TeamSet, error) {
	rs, ok := s.state.(ResultsState)
	if !ok {
		if _, hasPrev := s.Previous(); hasPrev {
			return nil, fmt.Errorf("regenerate from %s: %w", s.Kind(), ErrInvalidTransition)
		}
		return nil, fmt.Errorf("regenerate from %s: %w", s.Kind(), ErrNoPreviousInput)
	}

	teams := s.partitioner.Partition(rs.Input.Players, rs.Input.Config.TeamCount)
	s.state = ResultsState{Input: rs.Input, Teams: teams}

	s.logger.Info("Teams regenerated", "players", len(rs.Input.Players), "teams", rs.Input.Config.TeamCount)

	return teams.Clone(), nil
}

// BackToSetup discards the current team set and returns to Setup. The stored
// input is kept and returned so the form can be pre-filled with it.
func (s *Session) BackToSetup() (roster.Input, error) {
	rs, ok := s.state.(ResultsState)
	if !ok {
		return roster.Input{}, fmt.Errorf("back to setup from %s: %w", s.Kind(), ErrInvalidTransition)
	}

	prev := rs.Input
	s.state = SetupState{Previous: &prev}

	s.logger.Debug("Returned to setup", "players", len(prev.Players))

	return prev.Input(), nil
}
