package models

import (
	"time"

	"draft-value/internal/model"
)

// PlayerView is a player with its current valuation.
type PlayerView struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	NFLTeam      string         `json:"nfl_team"`
	Position     model.Position `json:"position"`
	TeamID       *int           `json:"team_id,omitempty"`
	SeasonPoints float64        `json:"season_points"`
	VOR          float64        `json:"vor"`
	AuctionValue *float64       `json:"auction_value,omitempty"`
}

// RankedPlayer is a player with the value it was ranked by.
type RankedPlayer struct {
	Rank   int        `json:"rank"`
	Value  float64    `json:"value"`
	Player PlayerView `json:"player"`
}

type RankedResponse struct {
	Players []RankedPlayer `json:"players"`
}

type PlayersResponse struct {
	Players []PlayerView `json:"players"`
}

type RosterEntry struct {
	Player PlayerView `json:"player"`
	Price  *float64   `json:"price,omitempty"`
}

type TeamView struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Players []RosterEntry `json:"players"`
	Spent   float64       `json:"spent"`
}

type TeamsResponse struct {
	Teams []TeamView `json:"teams"`
}

type BestPickResponse struct {
	Team  TeamView       `json:"team"`
	Picks []RankedPlayer `json:"picks"`
}

type DraftResponse struct {
	Team   TeamView   `json:"team"`
	Player PlayerView `json:"player"`
}

// LeagueResponse summarizes the active league.
type LeagueResponse struct {
	Name              string                     `json:"name"`
	Scoring           model.ScoringSettings      `json:"scoring"`
	Roster            model.RosterSettings       `json:"roster"`
	UniverseSize      int                        `json:"universe_size"`
	Available         int                        `json:"available"`
	ReplacementLevels map[model.Position]float64 `json:"replacement_levels"`
	AuctionSpent      float64                    `json:"auction_spent"`
	RemainingBudget   *float64                   `json:"remaining_budget,omitempty"`
}

type MockPick struct {
	Pick     int            `json:"pick"`
	Round    int            `json:"round"`
	TeamID   int            `json:"team_id"`
	Strategy string         `json:"strategy"`
	PlayerID string         `json:"player_id"`
	Player   string         `json:"player"`
	Position model.Position `json:"position"`
	VOR      float64        `json:"vor"`
	Added    float64        `json:"added"`
}

type MockTeam struct {
	TeamID   int     `json:"team_id"`
	Name     string  `json:"name"`
	Strategy string  `json:"strategy"`
	Picks    int     `json:"picks"`
	Added    float64 `json:"added"`
}

type MockResponse struct {
	Rounds int        `json:"rounds"`
	Teams  []MockTeam `json:"teams"`
	Ledger []MockPick `json:"ledger,omitempty"`
}

type SavedLeague struct {
	Name      string    `json:"name"`
	Players   int       `json:"players"`
	Drafted   int       `json:"drafted"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SavedLeaguesResponse struct {
	Leagues []SavedLeague `json:"leagues"`
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
