package valuation

import (
	"sort"

	"draft-value/internal/model"

	"gonum.org/v1/gonum/stat/distuv"
)

// IndependentStartProbability is the chance p starts in week, judged against the
// whole league rather than any one roster.
func (e *Engine) IndependentStartProbability(p *model.Player, week int) float64 {
	key := cacheKey{playerID: p.ID, week: week}
	if pct, ok := e.cache.startPcts[key]; ok {
		return pct
	}
	pct := e.twoTierStart(p, week, e.roster.Teams, func(positions []model.Position) int {
		return e.leagueRank(week, positions, p)
	})
	e.cache.startPcts[key] = pct
	return pct
}

// RosterStartProbability is the chance p starts in week for a single team whose
// roster is members; p must be one of them.
func (e *Engine) RosterStartProbability(p *model.Player, members []*model.Player, week int) float64 {
	return e.twoTierStart(p, week, 1, func(positions []model.Position) int {
		return e.rankAmong(week, positions, members, p)
	})
}

// twoTierStart combines a direct start at p's position with a fallback start
// through a flex slot.
func (e *Engine) twoTierStart(p *model.Player, week, teams int, rank func([]model.Position) int) float64 {
	pos := p.Position
	if !pos.Valued() {
		return 0
	}

	direct := startProbability(
		rank([]model.Position{pos}),
		e.roster.Slots(pos)*teams,
		e.injuries.Rate(pos, week),
	)
	if !e.roster.FlexEligible(pos) || direct == 1 || e.roster.Flex == 0 {
		return direct
	}

	flex := startProbability(
		rank(e.roster.FlexPositions),
		e.roster.FlexStarterSlots()*teams,
		e.injuries.WeightedRate(e.flexWeights(), week),
	)
	return (1-direct)*flex + direct
}

func (e *Engine) flexWeights() map[model.Position]int {
	w := make(map[model.Position]int, len(e.roster.FlexPositions))
	for _, p := range e.roster.FlexPositions {
		w[p] = e.roster.Slots(p)
	}
	return w
}

// startProbability is the chance that more than rank-starters of the rank players
// ahead are injured, opening a starting slot.
func startProbability(rank, starters int, injuryRate float64) float64 {
	if rank < starters {
		return 1
	}
	if rank == 0 || injuryRate <= 0 {
		return 0
	}
	if injuryRate >= 1 {
		return 1
	}
	ahead := distuv.Binomial{N: float64(rank), P: injuryRate}
	pct := 1 - ahead.CDF(float64(rank-starters))
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// leagueRank returns p's 0-based rank in week among universe players at positions.
// The ranking for each (week, position set) is built once and reused.
func (e *Engine) leagueRank(week int, positions []model.Position, p *model.Player) int {
	key := rankKey{week: week, positions: positionsKey(positions)}
	table, ok := e.cache.ranks[key]
	if !ok {
		ranked := e.rankWeek(week, positions, e.players)
		table = make(map[string]int, len(ranked))
		for i, rp := range ranked {
			table[rp.ID] = i
		}
		e.cache.ranks[key] = table
	}
	if r, ok := table[p.ID]; ok {
		return r
	}
	// Not at one of the positions: everyone in the set is ahead.
	return len(table)
}

func (e *Engine) rankAmong(week int, positions []model.Position, members []*model.Player, p *model.Player) int {
	sorted := append([]*model.Player(nil), members...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	ranked := e.rankWeek(week, positions, sorted)
	for i, rp := range ranked {
		if rp.ID == p.ID {
			return i
		}
	}
	return len(ranked)
}

// rankWeek orders the players at positions by descending week points. players must
// already be in id order; sorting is stable, so ties resolve by ascending id.
func (e *Engine) rankWeek(week int, positions []model.Position, players []*model.Player) []*model.Player {
	in := make(map[model.Position]bool, len(positions))
	for _, p := range positions {
		in[p] = true
	}
	ranked := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if in[p.Position] {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return e.WeeklyPoints(ranked[i], week) > e.WeeklyPoints(ranked[j], week)
	})
	return ranked
}
