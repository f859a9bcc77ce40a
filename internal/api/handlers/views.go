package handlers

import (
	"draft-value/internal/api/models"
	"draft-value/internal/league"
	"draft-value/internal/model"
)

func playerView(l *league.League, p *model.Player) models.PlayerView {
	v := models.PlayerView{
		ID:           p.ID,
		Name:         p.Name,
		NFLTeam:      p.NFLTeam,
		Position:     p.Position,
		SeasonPoints: l.SeasonPoints(p),
		VOR:          l.ValueOverReplacement(p, false),
	}
	if id, ok := l.DraftedBy(p.ID); ok {
		v.TeamID = &id
	}
	if price, ok := l.AuctionValue(p); ok {
		v.AuctionValue = &price
	}
	return v
}

func rankedViews(l *league.League, ranked []league.Ranked) []models.RankedPlayer {
	out := make([]models.RankedPlayer, 0, len(ranked))
	for i, r := range ranked {
		out = append(out, models.RankedPlayer{Rank: i + 1, Value: r.Value, Player: playerView(l, r.Player)})
	}
	return out
}

func teamView(l *league.League, t *league.Team) models.TeamView {
	v := models.TeamView{ID: t.ID, Name: t.DisplayName(), Players: []models.RosterEntry{}, Spent: t.Spent()}
	for _, p := range t.Players() {
		entry := models.RosterEntry{Player: playerView(l, p)}
		if price, ok := t.Price(p.ID); ok {
			entry.Price = &price
		}
		v.Players = append(v.Players, entry)
	}
	return v
}

func toTeamRef(r models.TeamRef) league.TeamRef {
	if r.TeamID != nil {
		return league.TeamID(*r.TeamID)
	}
	return league.TeamNamed(r.TeamName)
}
