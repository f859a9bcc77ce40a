package models

import "draft-value/internal/model"

// BestAvailableQuery is the query string for GET /api/v1/players.
type BestAvailableQuery struct {
	Position string `form:"position"`
	Limit    int    `form:"limit"`
	Auction  bool   `form:"auction"`
}

type SearchQuery struct {
	Q string `form:"q" binding:"required"`
}

type LookupQuery struct {
	Name string `form:"name" binding:"required"`
}

type BestPickQuery struct {
	Limit int `form:"limit"`
}

// TeamRef names a team by id or display name; TeamID wins when both are set.
type TeamRef struct {
	TeamID   *int   `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

// DraftRequest is the body for POST /api/v1/draft.
type DraftRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	TeamRef
	// Price is the auction price paid; omit for snake drafts.
	Price *float64 `json:"price,omitempty"`
}

type UndraftRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	TeamRef
}

// SettingsRequest replaces scoring overrides and/or roster settings.
type SettingsRequest struct {
	Scoring model.ScoringSettings `json:"scoring,omitempty"`
	Roster  *model.RosterSettings `json:"roster,omitempty"`
}

// RecalculateRequest selects what POST /api/v1/recalculate recomputes.
type RecalculateRequest struct {
	ReplacementLevels bool `json:"replacement_levels"`
	AuctionValues     bool `json:"auction_values"`
}

// StrategyConfig defines a strategy and its parameters
type StrategyConfig struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// MockRequest runs a mock draft on a copy of the current league.
type MockRequest struct {
	Default    StrategyConfig         `json:"default"`
	Strategies map[int]StrategyConfig `json:"strategies,omitempty"`
	Rounds     int                    `json:"rounds,omitempty"`
	// IncludeLedger returns every pick, not just team totals.
	IncludeLedger bool `json:"include_ledger,omitempty"`
}
