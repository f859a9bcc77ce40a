// Package leaguetest builds deterministic leagues for tests in other packages.
package leaguetest

import (
	"fmt"
	"testing"

	"draft-value/internal/injury"
	"draft-value/internal/league"
	"draft-value/internal/logger"
	"draft-value/internal/model"

	"github.com/stretchr/testify/require"
)

// SeasonRecords projects the same weekly "pts" in every week so the season total is season.
func SeasonRecords(id string, pos model.Position, season float64) []model.Projection {
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

// StandardRecords is 190 players for a default ten-team league: 40 qbs, 60 rbs,
// 60 wrs and 30 tes with evenly spaced season totals.
func StandardRecords() []model.Projection {
	var out []model.Projection
	for i := 0; i < 40; i++ {
		out = append(out, SeasonRecords(fmt.Sprintf("qb%02d", i), model.PositionQB, float64(400-5*i))...)
	}
	for i := 0; i < 60; i++ {
		out = append(out, SeasonRecords(fmt.Sprintf("rb%02d", i), model.PositionRB, float64(300-2*i))...)
		out = append(out, SeasonRecords(fmt.Sprintf("wr%02d", i), model.PositionWR, float64(299-2*i))...)
	}
	for i := 0; i < 30; i++ {
		out = append(out, SeasonRecords(fmt.Sprintf("te%02d", i), model.PositionTE, float64(150-i))...)
	}
	return out
}

// NoInjuries zeroes every simulated injury rate.
var NoInjuries = map[model.Position]injury.Stats{
	model.PositionQB: {Likelihood: 0, DurationMean: 1},
	model.PositionRB: {Likelihood: 0, DurationMean: 1},
	model.PositionWR: {Likelihood: 0, DurationMean: 1},
	model.PositionTE: {Likelihood: 0, DurationMean: 1},
}

// New builds a league over StandardRecords scoring "pts" one-for-one with no
// injuries; opts are applied after those defaults.
func New(t testing.TB, opts ...league.Option) *league.League {
	t.Helper()
	base := []league.Option{
		league.WithScoring(model.ScoringSettings{"pts": 1}),
		league.WithInjuryStats(NoInjuries),
		league.WithInjurySimulation(200, 7),
		league.WithLogger(logger.Discard()),
	}
	l, err := league.New("test", StandardRecords(), append(base, opts...)...)
	require.NoError(t, err)
	return l
}

func Auction(budget float64) model.RosterSettings {
	r := model.DefaultRoster()
	r.AuctionBudget = &budget
	return r
}
