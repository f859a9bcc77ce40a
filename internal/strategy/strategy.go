// Package strategy holds the pick rules mock-draft teams follow.
package strategy

import (
	"fmt"
	"sort"
	"strings"

	"draft-value/internal/league"
	"draft-value/internal/model"
)

// Context is what a strategy sees when it is on the clock.
type Context struct {
	// Round is 0-based; Pick is the 0-based overall pick number.
	Round  int
	Pick   int
	Team   *league.Team
	League *league.League
}

// Strategy picks one available player, or nil when nothing is worth taking.
type Strategy interface {
	Name() string
	Choose(ctx Context) *model.Player
}

// Info describes a registered strategy.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Params documents the accepted params keys.
	Params map[string]string `json:"params,omitempty"`
}

var registry = map[string]Info{
	"vor": {
		Name:        "vor",
		Description: "Best league-wide value over replacement, ignoring the team's roster.",
	},
	"need": {
		Name:        "need",
		Description: "Best value added to the team's current roster.",
	},
	"points": {
		Name:        "points",
		Description: "Most projected season points, ignoring replacement level and roster.",
	},
	"schedule": {
		Name:        "schedule",
		Description: "Follows a per-round position plan, falling back to the best value.",
		Params:      map[string]string{"positions": "comma-separated positions by round, e.g. rb,rb,wr,qb"},
	},
}

// Available lists the registered strategies ordered by name.
func Available() []Info {
	out := make([]Info, 0, len(registry))
	for _, info := range registry {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// New builds a strategy by name.
func New(name string, params map[string]any) (Strategy, error) {
	switch name {
	case "", "vor":
		return VORStrategy{}, nil
	case "need":
		return NeedStrategy{}, nil
	case "points":
		return PointsStrategy{}, nil
	case "schedule":
		raw, _ := params["positions"].(string)
		return NewScheduleStrategy(raw)
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

type VORStrategy struct{}

func (VORStrategy) Name() string { return "vor" }

func (VORStrategy) Choose(ctx Context) *model.Player {
	return first(ctx.League.BestAvailable("", 1, false))
}

type NeedStrategy struct{}

func (NeedStrategy) Name() string { return "need" }

func (NeedStrategy) Choose(ctx Context) *model.Player {
	return first(ctx.Team.BestPick(1))
}

// PointsStrategy drafts like a naive manager reading raw projections.
type PointsStrategy struct{}

func (PointsStrategy) Name() string { return "points" }

func (PointsStrategy) Choose(ctx Context) *model.Player {
	var best *model.Player
	bestPts := 0.0
	for _, p := range ctx.League.Available() {
		if !p.Position.Valued() {
			continue
		}
		if pts := ctx.League.SeasonPoints(p); best == nil || pts > bestPts {
			best, bestPts = p, pts
		}
	}
	return best
}

func first(ranked []league.Ranked) *model.Player {
	if len(ranked) == 0 {
		return nil
	}
	return ranked[0].Player
}

// Parse builds a strategy from a compact form: a bare name, or
// "schedule:rb,rb,wr" with the plan after the colon.
func Parse(raw string) (Strategy, error) {
	name, rest, _ := strings.Cut(strings.TrimSpace(raw), ":")
	name = strings.ToLower(strings.TrimSpace(name))
	var params map[string]any
	if rest != "" {
		params = map[string]any{"positions": rest}
	}
	return New(name, params)
}
