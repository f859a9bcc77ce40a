package valuation

import (
	"math"
	"testing"

	"draft-value/internal/model"

	"github.com/stretchr/testify/assert"
)

func binomCDF(k, n int, p float64) float64 {
	total := 0.0
	for i := 0; i <= k; i++ {
		total += choose(n, i) * math.Pow(p, float64(i)) * math.Pow(1-p, float64(n-i))
	}
	return total
}

func choose(n, k int) float64 {
	out := 1.0
	for i := 1; i <= k; i++ {
		out *= float64(n-k+i) / float64(i)
	}
	return out
}

func TestStartProbability(t *testing.T) {
	tests := []struct {
		name     string
		rank     int
		starters int
		rate     float64
		want     float64
	}{
		{name: "inside starters", rank: 3, starters: 10, rate: 0.05, want: 1},
		{name: "first backup", rank: 10, starters: 10, rate: 0.05, want: 1 - binomCDF(0, 10, 0.05)},
		{name: "deep backup", rank: 12, starters: 10, rate: 0.05, want: 1 - binomCDF(2, 12, 0.05)},
		{name: "no injuries", rank: 12, starters: 10, rate: 0, want: 0},
		{name: "no slots", rank: 0, starters: 0, rate: 0.05, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, startProbability(tt.rank, tt.starters, tt.rate), 1e-9)
		})
	}
}

func TestIndependentStartProbabilityNonFlex(t *testing.T) {
	players := twoPositionFixture()
	roster := twoPositionRoster()
	roster.FlexPositions = nil
	e := NewEngine(players, flatScoring, roster, constantInjuries(0.1))

	assert.Equal(t, 1.0, e.IndependentStartProbability(findPlayer(players, "q2"), 1))
	// q4 is rank 3 with 2 starters ahead of it: needs 2+ of 3 ahead hurt.
	assert.InDelta(t, 1-binomCDF(1, 3, 0.1), e.IndependentStartProbability(findPlayer(players, "q4"), 1), 1e-9)
}

func TestIndependentStartProbabilityFlex(t *testing.T) {
	players := []*model.Player{
		seasonPlayer("r1", model.PositionRB, 200),
		seasonPlayer("r2", model.PositionRB, 190),
		seasonPlayer("r3", model.PositionRB, 150),
		seasonPlayer("w1", model.PositionWR, 180),
		seasonPlayer("w2", model.PositionWR, 120),
	}
	roster := model.RosterSettings{
		Teams:         1,
		RosterSize:    5,
		RB:            1,
		WR:            1,
		Flex:          1,
		FlexPositions: []model.Position{model.PositionRB, model.PositionWR},
	}
	injuries := constantInjuries(0.1)
	injuries[model.PositionWR] = make([]float64, model.SeasonWeeks)
	for i := range injuries[model.PositionWR] {
		injuries[model.PositionWR][i] = 0.3
	}
	e := NewEngine(players, flatScoring, roster, injuries)

	// r3: third rb (rank 2, 1 starter); fourth in flex set (rank 3, 2 flex starters).
	direct := 1 - binomCDF(1, 2, 0.1)
	flexRate := (0.1 + 0.3) / 2
	flex := 1 - binomCDF(1, 3, flexRate)
	want := (1-direct)*flex + direct

	got := e.IndependentStartProbability(findPlayer(players, "r3"), 4)
	assert.InDelta(t, want, got, 1e-9)
	assert.Equal(t, got, e.IndependentStartProbability(findPlayer(players, "r3"), 4), "memoized")

	noFlex := roster
	noFlex.Flex = 0
	e.Reconfigure(flatScoring, noFlex)
	assert.InDelta(t, direct, e.IndependentStartProbability(findPlayer(players, "r3"), 4), 1e-9)
}

func TestRankTiesResolveByID(t *testing.T) {
	players := []*model.Player{
		seasonPlayer("b", model.PositionTE, 100),
		seasonPlayer("a", model.PositionTE, 100),
	}
	roster := model.RosterSettings{Teams: 1, RosterSize: 2, TE: 1}
	e := NewEngine(players, flatScoring, roster, constantInjuries(0.2))

	assert.Equal(t, 1.0, e.IndependentStartProbability(findPlayer(players, "a"), 1))
	assert.InDelta(t, 0.2, e.IndependentStartProbability(findPlayer(players, "b"), 1), 1e-9)
}

func TestRosterStartProbabilityUsesOnlyTeammates(t *testing.T) {
	players := twoPositionFixture()
	e := NewEngine(players, flatScoring, twoPositionRoster(), constantInjuries(0.1))

	q1, q5 := findPlayer(players, "q1"), findPlayer(players, "q5")
	// League-wide q5 is fifth; on a team with only q1 it is the first backup.
	assert.InDelta(t, 0.1, e.RosterStartProbability(q5, []*model.Player{q1, q5}, 1), 1e-9)
	assert.Equal(t, 1.0, e.RosterStartProbability(q1, []*model.Player{q1, q5}, 1))
}
