package model

import (
	"errors"
	"fmt"
	"sort"
)

// SeasonWeeks is the number of regular-season weeks that count toward value.
const SeasonWeeks = 16

// ScoringSettings maps a lowercased stat category to its point multiplier.
type ScoringSettings map[string]float64

// DefaultScoring is standard (non-PPR) scoring.
func DefaultScoring() ScoringSettings {
	return ScoringSettings{
		"pass yds": 0.04,
		"pass tds": 4.0,
		"int":      -2.0,
		"rush yds": 0.1,
		"rush tds": 6.0,
		"rec":      0.0,
		"rec yds":  0.1,
		"rec tds":  6.0,
		"fum":      -2.0,
	}
}

// MergeScoring overlays override onto base; keys present in override win.
func MergeScoring(base, override ScoringSettings) ScoringSettings {
	out := make(ScoringSettings, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Categories returns the scoring categories in a stable order.
func (s ScoringSettings) Categories() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RosterSettings describes league size and lineup requirements.
// Slot counts are per team.
type RosterSettings struct {
	Teams         int        `json:"teams"`
	RosterSize    int        `json:"roster_size"`
	Defense       int        `json:"defense"`
	Kicker        int        `json:"kicker"`
	QB            int        `json:"qb"`
	RB            int        `json:"rb"`
	WR            int        `json:"wr"`
	TE            int        `json:"te"`
	Flex          int        `json:"flex"`
	FlexPositions []Position `json:"flex_positions"`
	// AuctionBudget is per team; nil means a snake (non-auction) draft.
	AuctionBudget *float64 `json:"auction_budget,omitempty"`
}

func DefaultRoster() RosterSettings {
	return RosterSettings{
		Teams:         10,
		RosterSize:    16,
		Defense:       1,
		Kicker:        1,
		QB:            1,
		RB:            2,
		WR:            2,
		TE:            1,
		Flex:          1,
		FlexPositions: []Position{PositionRB, PositionWR, PositionTE},
	}
}

// Slots returns the per-team starter count for a position.
func (r RosterSettings) Slots(p Position) int {
	switch p {
	case PositionQB:
		return r.QB
	case PositionRB:
		return r.RB
	case PositionWR:
		return r.WR
	case PositionTE:
		return r.TE
	case PositionKicker:
		return r.Kicker
	case PositionDefense:
		return r.Defense
	default:
		return 0
	}
}

// StarterSlots is the number of dedicated starting slots per team, flex included.
func (r RosterSettings) StarterSlots() int {
	return r.Defense + r.Kicker + r.QB + r.RB + r.WR + r.TE + r.Flex
}

func (r RosterSettings) FlexEligible(p Position) bool {
	for _, fp := range r.FlexPositions {
		if fp == p {
			return true
		}
	}
	return false
}

// FlexStarterSlots is the per-team number of starting slots at flex-eligible positions,
// excluding the flex slots themselves.
func (r RosterSettings) FlexStarterSlots() int {
	total := 0
	for _, p := range r.FlexPositions {
		total += r.Slots(p)
	}
	return total
}

func (r RosterSettings) HasAuction() bool {
	return r.AuctionBudget != nil && *r.AuctionBudget > 0
}

func (r RosterSettings) Validate() error {
	if r.Teams <= 0 {
		return errors.New("teams must be > 0")
	}
	if r.RosterSize <= 0 {
		return errors.New("roster_size must be > 0")
	}
	counts := map[string]int{
		"defense": r.Defense,
		"kicker":  r.Kicker,
		"qb":      r.QB,
		"rb":      r.RB,
		"wr":      r.WR,
		"te":      r.TE,
		"flex":    r.Flex,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s must be >= 0", name)
		}
	}
	if r.StarterSlots() > r.RosterSize {
		return fmt.Errorf("starting slots (%d) exceed roster_size (%d)", r.StarterSlots(), r.RosterSize)
	}
	for _, p := range r.FlexPositions {
		if !p.Valued() {
			return fmt.Errorf("flex position %q is not one of qb/rb/wr/te", p)
		}
	}
	if r.AuctionBudget != nil && *r.AuctionBudget < float64(r.Kicker+r.Defense) {
		return errors.New("auction_budget must cover kicker and defense minimum bids")
	}
	return nil
}

// Clone returns a copy that shares no slices or pointers with r.
func (r RosterSettings) Clone() RosterSettings {
	out := r
	out.FlexPositions = append([]Position(nil), r.FlexPositions...)
	if r.AuctionBudget != nil {
		b := *r.AuctionBudget
		out.AuctionBudget = &b
	}
	return out
}
