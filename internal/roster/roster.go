// Package roster holds the setup-form data model and validates it before
// teams are generated.
package roster

const (
	// MinTeamCount is the smallest number of teams a config can ask for.
	MinTeamCount = 2
	// MinPlayersPerTeam is the smallest advisory team size.
	MinPlayersPerTeam = 1

	defaultTeamCount      = 2
	defaultPlayersPerTeam = 5
)

// TeamConfig describes how many teams to build.
//
// PlayersPerTeam is advisory metadata collected by the setup form. It is
// carried through generation and shown back to the user, but partitioning is
// driven by TeamCount alone.
type TeamConfig struct {
	TeamCount      int
	PlayersPerTeam int
}

// NewTeamConfig builds a config, clamping both values to their minimums the
// same way the setup form does when it receives out-of-range input.
func NewTeamConfig(teamCount, playersPerTeam int) TeamConfig {
	return TeamConfig{
		TeamCount:      max(MinTeamCount, teamCount),
		PlayersPerTeam: max(MinPlayersPerTeam, playersPerTeam),
	}
}

// Input is the raw state of the setup form: one entry per name slot, blank
// slots included.
type Input struct {
	Names  []string
	Config TeamConfig
}

// DefaultInput returns the form state shown before anything was generated:
// a single empty name slot, two teams, five players per team.
func DefaultInput() Input {
	return Input{
		Names:  []string{""},
		Config: TeamConfig{TeamCount: defaultTeamCount, PlayersPerTeam: defaultPlayersPerTeam},
	}
}

// Clone returns a copy that shares no memory with in.
func (in Input) Clone() Input {
	names := make([]string, len(in.Names))
	copy(names, in.Names)
	return Input{Names: names, Config: in.Config}
}

// ValidatedInput is a roster that passed Validate: every name is trimmed and
// non-empty and there are at least Config.TeamCount of them.
type ValidatedInput struct {
	Players []string
	Config  TeamConfig
}

// Clone returns a copy that shares no memory with v.
func (v ValidatedInput) Clone() ValidatedInput {
	players := make([]string, len(v.Players))
	copy(players, v.Players)
	return ValidatedInput{Players: players, Config: v.Config}
}

// Input converts the validated roster back into form values, e.g. to pre-fill
// the setup form after returning from the results view.
func (v ValidatedInput) Input() Input {
	names := make([]string, len(v.Players))
	copy(names, v.Players)
	return Input{Names: names, Config: v.Config}
}
