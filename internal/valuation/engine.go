// Package valuation turns weekly projections into injury- and lineup-adjusted
// value over a positional replacement baseline.
package valuation

import (
	"errors"
	"sort"

	"draft-value/internal/injury"
	"draft-value/internal/model"
)

// ErrInvalidConfiguration means the roster settings cannot partition the player pool.
var ErrInvalidConfiguration = errors.New("invalid roster configuration")

// Engine computes points, replacement levels, start probabilities and values for a
// fixed player universe. It memoizes per (player, week) and is not safe for
// concurrent use; callers serialize access.
type Engine struct {
	scoring  model.ScoringSettings
	roster   model.RosterSettings
	injuries injury.Table

	// players is the universe ordered by id; ranking ties resolve in this order.
	players     []*model.Player
	replacement map[model.Position]float64
	cache       *Cache
}

func NewEngine(players []*model.Player, scoring model.ScoringSettings, roster model.RosterSettings, injuries injury.Table) *Engine {
	e := &Engine{
		scoring:     scoring,
		roster:      roster.Clone(),
		injuries:    injuries,
		replacement: map[model.Position]float64{},
		cache:       NewCache(),
	}
	e.SetPlayers(players)
	return e
}

// SetPlayers replaces the universe. Cached values are dropped because rankings and
// merged projections may have changed.
func (e *Engine) SetPlayers(players []*model.Player) {
	sorted := append([]*model.Player(nil), players...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	e.players = sorted
	e.cache.Reset()
}

// Reconfigure swaps scoring and roster settings and clears every cache.
// Replacement levels must be recomputed afterwards.
func (e *Engine) Reconfigure(scoring model.ScoringSettings, roster model.RosterSettings) {
	e.scoring = scoring
	e.roster = roster.Clone()
	e.cache.Reset()
}

func (e *Engine) Scoring() model.ScoringSettings { return e.scoring }
func (e *Engine) Roster() model.RosterSettings   { return e.roster }
func (e *Engine) Injuries() injury.Table         { return e.injuries }
func (e *Engine) Players() []*model.Player       { return e.players }

// ReplacementLevel returns the season-point baseline for a position.
func (e *Engine) ReplacementLevel(p model.Position) float64 {
	return e.replacement[p]
}

// ReplacementLevels returns a copy of the current baselines.
func (e *Engine) ReplacementLevels() map[model.Position]float64 {
	out := make(map[model.Position]float64, len(e.replacement))
	for k, v := range e.replacement {
		out[k] = v
	}
	return out
}

// SetReplacementLevels installs precomputed baselines (used when restoring state).
func (e *Engine) SetReplacementLevels(levels map[model.Position]float64) {
	e.replacement = make(map[model.Position]float64, len(levels))
	for k, v := range levels {
		e.replacement[k] = v
	}
}
