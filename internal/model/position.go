package model

import "strings"

// Position is a player's roster position.
// Keep these values stable; they are the keys used in projection feeds and roster settings.
type Position string

const (
	PositionQB      Position = "qb"
	PositionRB      Position = "rb"
	PositionWR      Position = "wr"
	PositionTE      Position = "te"
	PositionKicker  Position = "k"
	PositionDefense Position = "def"
)

// ValuedPositions are the positions the valuation engine prices, in the order
// replacement levels are carved out of the player pool.
var ValuedPositions = []Position{PositionQB, PositionWR, PositionRB, PositionTE}

func ParsePosition(s string) (Position, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "qb":
		return PositionQB, true
	case "rb":
		return PositionRB, true
	case "wr":
		return PositionWR, true
	case "te":
		return PositionTE, true
	case "k", "pk", "kicker":
		return PositionKicker, true
	case "def", "dst", "d/st", "defense":
		return PositionDefense, true
	default:
		return "", false
	}
}

// Valued reports whether the position takes part in replacement-level valuation.
func (p Position) Valued() bool {
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE:
		return true
	default:
		return false
	}
}
