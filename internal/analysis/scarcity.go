// Package analysis summarizes the available pool per position so a drafter can
// see where value is about to run out.
package analysis

import (
	"math"
	"sort"

	"draft-value/internal/league"
	"draft-value/internal/model"

	"gonum.org/v1/gonum/stat"
)

// PositionSummary describes the value left at one position.
type PositionSummary struct {
	Position    model.Position `json:"position"`
	Available   int            `json:"available"`
	Replacement float64        `json:"replacement_level"`
	// AboveReplacement counts available players with positive value.
	AboveReplacement int `json:"above_replacement"`

	MaxVOR  float64 `json:"max_vor"`
	MeanVOR float64 `json:"mean_vor"`
	P05VOR  float64 `json:"p05_vor"`
	P95VOR  float64 `json:"p95_vor"`

	// DropOff is the value lost by waiting one full round: the best value now
	// minus the value of the player ranked `teams` places lower.
	DropOff float64 `json:"drop_off"`
}

// Summarize builds a summary from the available values at a position.
func Summarize(pos model.Position, values []float64, replacement float64, teams int) PositionSummary {
	s := PositionSummary{Position: pos, Available: len(values), Replacement: replacement}
	if len(values) == 0 {
		return s
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	s.MaxVOR = sorted[len(sorted)-1]
	s.MeanVOR = stat.Mean(sorted, nil)
	s.P05VOR = percentileSorted(sorted, 0.05)
	s.P95VOR = percentileSorted(sorted, 0.95)
	for _, v := range sorted {
		if v > 0 {
			s.AboveReplacement++
		}
	}

	next := len(sorted) - 1 - teams
	if teams <= 0 || next < 0 {
		next = 0
	}
	s.DropOff = s.MaxVOR - sorted[next]
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Scarcity summarizes every valued position in the league's available pool,
// ordered by the steepest drop-off first.
func Scarcity(l *league.League) []PositionSummary {
	levels := l.ReplacementLevels()
	teams := l.Roster().Teams

	out := make([]PositionSummary, 0, len(model.ValuedPositions))
	for _, pos := range model.ValuedPositions {
		ranked := l.BestAvailable(pos, 0, false)
		values := make([]float64, len(ranked))
		for i, r := range ranked {
			values[i] = r.Value
		}
		out = append(out, Summarize(pos, values, levels[pos], teams))
	}
	RankByDropOff(out)
	return out
}

// RankByDropOff sorts summaries by descending drop-off, then by position name.
func RankByDropOff(summaries []PositionSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].DropOff != summaries[j].DropOff {
			return summaries[i].DropOff > summaries[j].DropOff
		}
		return summaries[i].Position < summaries[j].Position
	})
}
