package partition

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lox/teamgen/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identitySource never swaps, leaving the shuffle order equal to the input.
type identitySource struct{}

func (identitySource) IntN(n int) int { return n - 1 }

// zeroSource always swaps with the first element.
type zeroSource struct{}

func (zeroSource) IntN(int) int { return 0 }

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("P%d", i+1)
	}
	return out
}

func TestPartitionRoundRobin(t *testing.T) {
	t.Run("identity order deals round robin", func(t *testing.T) {
		teams := Partition(identitySource{}, []string{"A", "B", "C", "D", "E"}, 2)

		require.Len(t, teams, 2)
		assert.Equal(t, Team{"A", "C", "E"}, teams[0])
		assert.Equal(t, Team{"B", "D"}, teams[1])
	})

	t.Run("shuffle order drives assignment", func(t *testing.T) {
		teams := Partition(zeroSource{}, []string{"A", "B", "C", "D"}, 2)

		assert.Equal(t, Team{"B", "D"}, teams[0])
		assert.Equal(t, Team{"C", "A"}, teams[1])
	})
}

func TestPartitionInvariants(t *testing.T) {
	rng := randutil.New(1234)

	for n := 2; n <= 20; n++ {
		for k := 2; k <= n; k++ {
			players := names(n)
			teams := Partition(rng, players, k)

			require.Len(t, teams, k, "n=%d k=%d", n, k)
			assert.Equal(t, n, teams.TotalPlayers(), "n=%d k=%d", n, k)
			assert.ElementsMatch(t, players, teams.Members(), "n=%d k=%d", n, k)

			for i, size := range teams.Sizes() {
				want := n / k
				if i < n%k {
					want++
				}
				assert.Equal(t, want, size, "n=%d k=%d team=%d", n, k, i)
			}
		}
	}
}

func TestPartitionFiveIntoTwo(t *testing.T) {
	teams := New().Partition([]string{"A", "B", "C", "D", "E"}, 2)

	require.Len(t, teams, 2)
	assert.ElementsMatch(t, []int{3, 2}, teams.Sizes())
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, teams.Members())
}

func TestPartitionKeepsDuplicates(t *testing.T) {
	players := []string{"Sam", "Sam", "Alex", "Sam"}
	teams := Partition(randutil.New(9), players, 2)

	assert.ElementsMatch(t, players, teams.Members())
}

func TestPartitionDoesNotMutateInput(t *testing.T) {
	players := names(8)
	original := append([]string(nil), players...)

	Partition(randutil.New(3), players, 3)

	assert.Equal(t, original, players)
}

func TestPartitionPreconditions(t *testing.T) {
	assert.PanicsWithValue(t, "rng is required for partitioning", func() {
		Partition(nil, names(4), 2)
	})
	assert.Panics(t, func() {
		Partition(randutil.New(1), names(4), 0)
	})
	assert.Panics(t, func() {
		Partition(randutil.New(1), names(2), 3)
	})
}

func TestShuffleIsUniform(t *testing.T) {
	const trials = 60000
	rng := randutil.New(7)
	counts := map[string]int{}

	for i := 0; i < trials; i++ {
		s := []string{"A", "B", "C"}
		Shuffle(rng, s)
		counts[strings.Join(s, "")]++
	}

	require.Len(t, counts, 6, "every permutation of three players should appear")
	expected := trials / 6
	for perm, got := range counts {
		assert.InDelta(t, expected, got, float64(expected)*0.05, "permutation %s", perm)
	}
}

func TestPartitionerDrawsFreshRandomness(t *testing.T) {
	p := New(WithSeed(99))
	players := names(6)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		teams := p.Partition(players, 2)
		assert.ElementsMatch(t, []int{3, 3}, teams.Sizes())
		assert.ElementsMatch(t, players, teams.Members())
		seen[fmt.Sprint(teams)] = true
	}

	assert.Greater(t, len(seen), 1, "repeated partitions should not all be identical")
}

func TestPartitionerSeedIsReproducible(t *testing.T) {
	a := New(WithSeed(5))
	b := New(WithSeed(5))

	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Partition(names(7), 3), b.Partition(names(7), 3))
	}
}

func TestPartitionerWithSource(t *testing.T) {
	p := New(WithSource(identitySource{}))

	assert.Equal(t, TeamSet{{"A", "C"}, {"B", "D"}}, p.Partition([]string{"A", "B", "C", "D"}, 2))
}

func TestTeamSetHelpers(t *testing.T) {
	ts := TeamSet{{"A", "B", "C"}, {"D", "E"}, {}}

	assert.Equal(t, []int{3, 2, 0}, ts.Sizes())
	assert.Equal(t, 5, ts.TotalPlayers())
	assert.Equal(t, 1.7, ts.AverageSize())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ts.Members())

	clone := ts.Clone()
	clone[0][0] = "Z"
	assert.Equal(t, "A", ts[0][0])

	assert.Zero(t, TeamSet(nil).AverageSize())
	assert.Nil(t, TeamSet(nil).Clone())
}
