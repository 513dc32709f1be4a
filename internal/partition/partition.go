// Package partition splits a list of players into a fixed number of randomly
// assembled, size-balanced teams.
package partition

import (
	"fmt"

	"github.com/lox/teamgen/internal/randutil"
)

// Source is the randomness a partition draws from. *math/rand/v2.Rand
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Partition shuffles a copy of players uniformly at random and deals them
// round-robin into teamCount teams: the i-th shuffled player joins team
// i mod teamCount. The first len(players) mod teamCount teams end up with one
// extra player.
//
// The caller must have validated its input. A nil rng, teamCount < 1 or fewer
// players than teams are programming errors and panic.
func Partition(rng Source, players []string, teamCount int) TeamSet {
	if rng == nil {
		panic("rng is required for partitioning")
	}
	if teamCount < 1 {
		panic(fmt.Sprintf("team count must be positive, got %d", teamCount))
	}
	if len(players) < teamCount {
		panic(fmt.Sprintf("cannot split %d players into %d teams", len(players), teamCount))
	}

	shuffled := make([]string, len(players))
	copy(shuffled, players)
	Shuffle(rng, shuffled)

	teams := make(TeamSet, teamCount)
	base := len(shuffled) / teamCount
	for i := range teams {
		teams[i] = make(Team, 0, base+1)
	}
	for i, player := range shuffled {
		teams[i%teamCount] = append(teams[i%teamCount], player)
	}

	return teams
}

// Shuffle permutes s in place with a Fisher-Yates shuffle, so every ordering
// is equally likely.
func Shuffle(rng Source, s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Partitioner draws successive partitions from a single random source, so
// repeated calls on the same roster produce fresh arrangements.
type Partitioner struct {
	rng Source
}

// Option configures a Partitioner.
type Option func(*Partitioner)

// WithSeed makes the Partitioner's sequence of draws reproducible.
func WithSeed(seed int64) Option {
	return func(p *Partitioner) {
		p.rng = randutil.New(seed)
	}
}

// WithSource uses rng as the Partitioner's randomness.
func WithSource(rng Source) Option {
	return func(p *Partitioner) {
		p.rng = rng
	}
}

// New creates a Partitioner. Without options it is seeded from entropy.
func New(opts ...Option) *Partitioner {
	p := &Partitioner{}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = randutil.NewEntropy()
	}
	return p
}

// Partition splits players into teamCount teams. See the package-level
// Partition for the contract.
func (p *Partitioner) Partition(players []string, teamCount int) TeamSet {
	return Partition(p.rng, players, teamCount)
}
