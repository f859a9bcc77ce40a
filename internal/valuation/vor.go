package valuation

import "draft-value/internal/model"

// ValueOverReplacement sums injury-weighted weekly points above the weekly
// replacement baseline. Weeks below the baseline count as 0, never negative.
// In auction mode each week is also weighted by the league-wide start probability.
func (e *Engine) ValueOverReplacement(p *model.Player, auction bool) float64 {
	if !p.Position.Valued() {
		return 0
	}
	return e.seasonValue(p, func(week int) float64 {
		if !auction {
			return 1
		}
		return e.IndependentStartProbability(p, week)
	})
}

// MarginalValue is what candidate adds to a team currently holding roster.
// With an open starting or flex slot it is plain value over replacement;
// otherwise the candidate only competes with teammates for a lineup spot.
func (e *Engine) MarginalValue(candidate *model.Player, roster []*model.Player) float64 {
	if !candidate.Position.Valued() {
		return 0
	}

	members := make([]*model.Player, 0, len(roster)+1)
	counts := map[model.Position]int{}
	for _, p := range roster {
		if p.ID == candidate.ID {
			continue
		}
		members = append(members, p)
		counts[p.Position]++
	}
	members = append(members, candidate)

	if e.hasOpenSlot(candidate.Position, counts) {
		return e.ValueOverReplacement(candidate, false)
	}
	return e.seasonValue(candidate, func(week int) float64 {
		return e.RosterStartProbability(candidate, members, week)
	})
}

func (e *Engine) hasOpenSlot(pos model.Position, counts map[model.Position]int) bool {
	if counts[pos] < e.roster.Slots(pos) {
		return true
	}
	if !e.roster.FlexEligible(pos) || e.roster.Flex == 0 {
		return false
	}
	overflow := 0
	for _, fp := range e.roster.FlexPositions {
		if extra := counts[fp] - e.roster.Slots(fp); extra > 0 {
			overflow += extra
		}
	}
	return overflow < e.roster.Flex
}

func (e *Engine) seasonValue(p *model.Player, startWeight func(week int) float64) float64 {
	weeklyReplacement := e.replacement[p.Position] / model.SeasonWeeks
	total := 0.0
	for week := 1; week <= model.SeasonWeeks; week++ {
		healthy := 1 - e.injuries.Rate(p.Position, week)
		value := healthy * (e.WeeklyPoints(p, week) - weeklyReplacement)
		if value <= 0 {
			continue
		}
		value *= startWeight(week)
		if value > 0 {
			total += value
		}
	}
	return total
}
