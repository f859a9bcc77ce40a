package league

import (
	"fmt"
	"testing"

	"draft-value/internal/injury"
	"draft-value/internal/logger"
	"draft-value/internal/model"

	"github.com/stretchr/testify/require"
)

// seasonRecords projects the same weekly "pts" total in every week.
func seasonRecords(id string, pos model.Position, season float64) []model.Projection {
	out := make([]model.Projection, 0, model.SeasonWeeks)
	for week := 1; week <= model.SeasonWeeks; week++ {
		out = append(out, model.Projection{
			ID:       id,
			Player:   "Player " + id,
			Team:     "FA",
			Position: pos,
			Week:     week,
			Stats:    map[string]float64{"pts": season / model.SeasonWeeks},
		})
	}
	return out
}

// standardRecords is 190 players that exactly cover a default ten-team league
// plus a pool of leftovers at every position.
func standardRecords() []model.Projection {
	var out []model.Projection
	for i := 0; i < 40; i++ {
		out = append(out, seasonRecords(fmt.Sprintf("qb%02d", i), model.PositionQB, float64(400-5*i))...)
	}
	for i := 0; i < 60; i++ {
		out = append(out, seasonRecords(fmt.Sprintf("rb%02d", i), model.PositionRB, float64(300-2*i))...)
		out = append(out, seasonRecords(fmt.Sprintf("wr%02d", i), model.PositionWR, float64(299-2*i))...)
	}
	for i := 0; i < 30; i++ {
		out = append(out, seasonRecords(fmt.Sprintf("te%02d", i), model.PositionTE, float64(150-i))...)
	}
	return out
}

// noInjuries makes every simulated injury rate 0 so values are exact.
var noInjuries = map[model.Position]injury.Stats{
	model.PositionQB: {Likelihood: 0, DurationMean: 1},
	model.PositionRB: {Likelihood: 0, DurationMean: 1},
	model.PositionWR: {Likelihood: 0, DurationMean: 1},
	model.PositionTE: {Likelihood: 0, DurationMean: 1},
}

func newTestLeague(t *testing.T, opts ...Option) *League {
	t.Helper()
	base := []Option{
		WithScoring(model.ScoringSettings{"pts": 1}),
		WithInjuryStats(noInjuries),
		WithInjurySimulation(200, 7),
		WithLogger(logger.Discard()),
	}
	l, err := New("test", standardRecords(), append(base, opts...)...)
	require.NoError(t, err)
	return l
}

func auctionRoster(budget float64) model.RosterSettings {
	r := model.DefaultRoster()
	r.AuctionBudget = &budget
	return r
}

// requirePartition checks every player sits in exactly one of the pool or a roster.
func requirePartition(t *testing.T, l *League) {
	t.Helper()
	seen := map[string]int{}
	for _, p := range l.Available() {
		require.Nil(t, p.TeamID, p.ID)
		seen[p.ID]++
	}
	for _, team := range l.Teams() {
		for _, p := range team.Players() {
			require.NotNil(t, p.TeamID, p.ID)
			require.Equal(t, team.ID, *p.TeamID)
			seen[p.ID]++
		}
	}
	require.Len(t, seen, l.UniverseSize())
	for id, n := range seen {
		require.Equal(t, 1, n, id)
	}
}

func price(v float64) *float64 { return &v }
