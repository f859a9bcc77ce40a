package strategy

import (
	"fmt"
	"strings"

	"draft-value/internal/model"
)

// ScheduleStrategy takes the best player at a planned position each round.
// Rounds past the plan, or with nothing left at the planned position, fall back
// to the best value for the team.
type ScheduleStrategy struct {
	Positions []model.Position
}

// NewScheduleStrategy parses a plan such as "rb,rb,wr,qb".
func NewScheduleStrategy(plan string) (*ScheduleStrategy, error) {
	s := &ScheduleStrategy{}
	for _, raw := range strings.Split(plan, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		pos, ok := model.ParsePosition(raw)
		if !ok || !pos.Valued() {
			return nil, fmt.Errorf("invalid position %q in schedule", raw)
		}
		s.Positions = append(s.Positions, pos)
	}
	if len(s.Positions) == 0 {
		return nil, fmt.Errorf("schedule needs at least one position")
	}
	return s, nil
}

func (s *ScheduleStrategy) Name() string { return "schedule" }

func (s *ScheduleStrategy) Choose(ctx Context) *model.Player {
	if ctx.Round >= 0 && ctx.Round < len(s.Positions) {
		if p := first(ctx.League.BestAvailable(s.Positions[ctx.Round], 1, false)); p != nil {
			return p
		}
	}
	return NeedStrategy{}.Choose(ctx)
}
