package valuation

import (
	"sort"

	"draft-value/internal/model"
)

// Allocation is the result of splitting the remaining auction budget across the
// available players in proportion to their auction-mode value.
type Allocation struct {
	Budget     float64
	TotalValue float64
	Values     map[string]float64
	// Degenerate is set when no value remains; every price is then 0.
	Degenerate bool
}

// RemainingBudget is the league-wide money left for valued players once each team
// holds back a dollar per kicker and defense slot.
func RemainingBudget(roster model.RosterSettings, spent float64) float64 {
	if !roster.HasAuction() {
		return 0
	}
	perTeam := *roster.AuctionBudget - float64(roster.Kicker+roster.Defense)
	return perTeam*float64(roster.Teams) - spent
}

// AllocateAuction prices every available player. It returns an empty allocation
// when the league has no auction budget.
func (e *Engine) AllocateAuction(available []*model.Player, spent float64) Allocation {
	alloc := Allocation{Values: map[string]float64{}}
	if !e.roster.HasAuction() {
		return alloc
	}

	players := append([]*model.Player(nil), available...)
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	values := make([]float64, len(players))
	for i, p := range players {
		values[i] = e.ValueOverReplacement(p, true)
		alloc.TotalValue += values[i]
	}
	alloc.Budget = RemainingBudget(e.roster, spent)

	if alloc.TotalValue <= 0 {
		alloc.Degenerate = true
		for _, p := range players {
			alloc.Values[p.ID] = 0
		}
		return alloc
	}
	for i, p := range players {
		alloc.Values[p.ID] = values[i] * alloc.Budget / alloc.TotalValue
	}
	return alloc
}
