package valuation

import (
	"fmt"

	"draft-value/internal/injury"
	"draft-value/internal/model"
)

// flatScoring scores one "pts" stat one-for-one so fixtures read as fantasy points.
var flatScoring = model.ScoringSettings{"pts": 1}

// seasonPlayer projects the same weekly points in every week of the season.
func seasonPlayer(id string, pos model.Position, season float64) *model.Player {
	var p *model.Player
	for week := 1; week <= model.SeasonWeeks; week++ {
		proj := model.Projection{
			ID:       id,
			Player:   "Player " + id,
			Team:     "FA",
			Position: pos,
			Week:     week,
			Stats:    map[string]float64{"pts": season / model.SeasonWeeks},
		}
		if p == nil {
			p = model.NewPlayer(proj)
		} else {
			p.MergeProjection(proj)
		}
	}
	return p
}

func constantInjuries(rate float64) injury.Table {
	table := injury.Table{}
	for _, pos := range model.ValuedPositions {
		weeks := make([]float64, model.SeasonWeeks)
		for i := range weeks {
			weeks[i] = rate
		}
		table[pos] = weeks
	}
	return table
}

// twoPositionRoster is a two-team qb/rb league small enough to partition by hand.
func twoPositionRoster() model.RosterSettings {
	return model.RosterSettings{
		Teams:         2,
		RosterSize:    3,
		QB:            1,
		RB:            1,
		FlexPositions: []model.Position{model.PositionRB},
	}
}

// twoPositionFixture is ten players: five qbs and five rbs.
func twoPositionFixture() []*model.Player {
	return []*model.Player{
		seasonPlayer("q1", model.PositionQB, 300),
		seasonPlayer("q2", model.PositionQB, 280),
		seasonPlayer("q3", model.PositionQB, 250),
		seasonPlayer("q4", model.PositionQB, 200),
		seasonPlayer("q5", model.PositionQB, 150),
		seasonPlayer("r1", model.PositionRB, 250),
		seasonPlayer("r2", model.PositionRB, 220),
		seasonPlayer("r3", model.PositionRB, 200),
		seasonPlayer("r4", model.PositionRB, 180),
		seasonPlayer("r5", model.PositionRB, 100),
	}
}

// standardUniverse is 190 players with interleaved rb/wr season totals so flex
// and bench spots split between the two positions.
func standardUniverse() []*model.Player {
	var players []*model.Player
	for i := 0; i < 40; i++ {
		players = append(players, seasonPlayer(fmt.Sprintf("qb%02d", i), model.PositionQB, float64(400-5*i)))
	}
	for i := 0; i < 60; i++ {
		players = append(players, seasonPlayer(fmt.Sprintf("rb%02d", i), model.PositionRB, float64(300-2*i)))
		players = append(players, seasonPlayer(fmt.Sprintf("wr%02d", i), model.PositionWR, float64(299-2*i)))
	}
	for i := 0; i < 30; i++ {
		players = append(players, seasonPlayer(fmt.Sprintf("te%02d", i), model.PositionTE, float64(150-i)))
	}
	return players
}

func findPlayer(players []*model.Player, id string) *model.Player {
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
