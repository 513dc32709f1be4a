package partition

import "math"

// Team is the ordered list of players assigned to one team. Order reflects
// assignment order only.
type Team []string

// TeamSet is the result of one partition: exactly teamCount teams whose sizes
// differ by at most one.
type TeamSet []Team

// Sizes returns the number of players in each team, by team index.
func (ts TeamSet) Sizes() []int {
	sizes := make([]int, len(ts))
	for i, team := range ts {
		sizes[i] = len(team)
	}
	return sizes
}

// TotalPlayers returns the number of players across all teams.
func (ts TeamSet) TotalPlayers() int {
	total := 0
	for _, team := range ts {
		total += len(team)
	}
	return total
}

// AverageSize returns the mean team size rounded to one decimal place, or 0
// for an empty set.
func (ts TeamSet) AverageSize() float64 {
	if len(ts) == 0 {
		return 0
	}
	avg := float64(ts.TotalPlayers()) / float64(len(ts))
	return math.Round(avg*10) / 10
}

// Members returns every player in team order, flattened into a new slice.
func (ts TeamSet) Members() []string {
	members := make([]string, 0, ts.TotalPlayers())
	for _, team := range ts {
		members = append(members, team...)
	}
	return members
}

// Clone returns a deep copy of ts.
func (ts TeamSet) Clone() TeamSet {
	if ts == nil {
		return nil
	}
	out := make(TeamSet, len(ts))
	for i, team := range ts {
		out[i] = append(Team(nil), team...)
	}
	return out
}
