package mockdraft

import "draft-value/internal/model"

// PickRow is one row of per-pick output.
type PickRow struct {
	Pick  int
	Round int

	TeamID   int
	TeamName string
	Strategy string

	PlayerID string
	Player   string
	Position model.Position

	// VOR is league-wide value over replacement at pick time; Added is what
	// the player added to the picking team's roster.
	VOR      float64
	Added    float64
	CumAdded float64
}

type TeamTotal struct {
	TeamID   int
	TeamName string
	Strategy string
	Picks    int
	Added    float64
}

type Result struct {
	Ledger []PickRow
	Teams  []TeamTotal
	// Rounds actually completed; a draft stops early when the pool runs dry.
	Rounds int
}
