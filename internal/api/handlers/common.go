package handlers

import (
	"draft-value/internal/api/models"
	"draft-value/internal/league"
)

func leagueResponse(l *league.League) models.LeagueResponse {
	roster := l.Roster()
	resp := models.LeagueResponse{
		Name:              l.Name(),
		Scoring:           l.Scoring(),
		Roster:            roster,
		UniverseSize:      l.UniverseSize(),
		Available:         len(l.Available()),
		ReplacementLevels: l.ReplacementLevels(),
		AuctionSpent:      l.AuctionBudgetSpent(),
	}
	if roster.HasAuction() {
		left := l.RemainingAuctionBudget()
		resp.RemainingBudget = &left
	}
	return resp
}
