package valuation

import (
	"fmt"
	"math"
	"sort"

	"draft-value/internal/model"
)

// qbBenchShare is the slice of bench spots treated as backup quarterbacks.
// QBs cannot be flexed, so without it their replacement level sits too high
// compared to how rosters are actually built.
const qbBenchShare = 0.10

// ComputeReplacementLevels partitions the whole universe into starters, flex and
// bench, then records the best leftover player at each position. The result is
// stored on the engine and returned.
func (e *Engine) ComputeReplacementLevels() (map[model.Position]float64, error) {
	season := make(map[string]float64, len(e.players))
	for _, p := range e.players {
		season[p.ID] = e.SeasonPoints(p)
	}
	levels, err := ReplacementLevels(e.players, e.roster, func(p *model.Player) float64 {
		return season[p.ID]
	})
	if err != nil {
		return nil, err
	}
	e.SetReplacementLevels(levels)
	return e.ReplacementLevels(), nil
}

// ReplacementLevels runs the replacement partition over players. Players must be in
// tie-break order (ascending id); equal season totals keep that order.
func ReplacementLevels(players []*model.Player, roster model.RosterSettings, seasonPoints func(*model.Player) float64) (map[model.Position]float64, error) {
	remaining := append([]*model.Player(nil), players...)
	sort.SliceStable(remaining, func(i, j int) bool {
		return seasonPoints(remaining[i]) > seasonPoints(remaining[j])
	})

	totalBench := float64(roster.Teams * (roster.RosterSize - roster.StarterSlots()))
	starters := map[model.Position]int{}
	for _, pos := range model.ValuedPositions {
		starters[pos] = roster.Slots(pos) * roster.Teams
	}
	starters[model.PositionQB] += int(math.RoundToEven(qbBenchShare * totalBench))
	bench := int(math.RoundToEven((1 - qbBenchShare) * totalBench))

	removed := 0
	for _, pos := range model.ValuedPositions {
		var n int
		remaining, n = removeTop(remaining, starters[pos], func(p *model.Player) bool {
			return p.Position == pos
		})
		removed += n
	}

	var n int
	remaining, n = removeTop(remaining, roster.Flex*roster.Teams+bench, func(p *model.Player) bool {
		return roster.FlexEligible(p.Position)
	})
	removed += n

	expected := roster.Teams * (roster.RosterSize - roster.Kicker - roster.Defense)
	if removed != expected {
		return nil, fmt.Errorf("%w: rostered %d players, expected %d", ErrInvalidConfiguration, removed, expected)
	}

	levels := make(map[model.Position]float64, len(model.ValuedPositions))
	for _, pos := range model.ValuedPositions {
		levels[pos] = 0
		for _, p := range remaining {
			if p.Position == pos {
				levels[pos] = seasonPoints(p)
				break
			}
		}
	}
	return levels, nil
}

// removeTop drops the first n matching players, preserving order of the rest.
func removeTop(players []*model.Player, n int, match func(*model.Player) bool) ([]*model.Player, int) {
	if n <= 0 {
		return players, 0
	}
	out := make([]*model.Player, 0, len(players))
	taken := 0
	for _, p := range players {
		if taken < n && match(p) {
			taken++
			continue
		}
		out = append(out, p)
	}
	return out, taken
}
