package league

import (
	"fmt"
	"sort"

	"draft-value/internal/injury"
	"draft-value/internal/logger"
	"draft-value/internal/model"
)

// Snapshot is the serializable state of a league: enough to rebuild it exactly,
// including the simulated injury table and every roster with its prices.
type Snapshot struct {
	Name         string                       `json:"name"`
	Scoring      model.ScoringSettings        `json:"scoring"`
	Roster       model.RosterSettings         `json:"roster"`
	Projections  []model.Projection           `json:"projections"`
	Injuries     map[model.Position][]float64 `json:"injuries"`
	Replacement  map[model.Position]float64   `json:"replacement_levels"`
	Teams        []TeamSnapshot               `json:"teams"`
	AuctionSpent float64                      `json:"auction_spent"`
}

type TeamSnapshot struct {
	ID      int           `json:"id"`
	Name    string        `json:"name,omitempty"`
	Entries []RosterEntry `json:"players"`
}

type RosterEntry struct {
	PlayerID string   `json:"player_id"`
	Price    *float64 `json:"price,omitempty"`
}

// Snapshot captures the current state. Projections are ordered by player id
// then week.
func (l *League) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Snapshot{
		Name:         l.name,
		Scoring:      model.MergeScoring(l.engine.Scoring(), nil),
		Roster:       l.engine.Roster().Clone(),
		Injuries:     map[model.Position][]float64{},
		Replacement:  l.engine.ReplacementLevels(),
		AuctionSpent: l.auctionSpent,
	}
	for _, p := range l.engine.Players() {
		weeks := make([]int, 0, len(p.ProjectionsByWeek))
		for w := range p.ProjectionsByWeek {
			weeks = append(weeks, w)
		}
		sort.Ints(weeks)
		for _, w := range weeks {
			s.Projections = append(s.Projections, p.ProjectionsByWeek[w])
		}
	}
	for pos, weeks := range l.injuries {
		s.Injuries[pos] = append([]float64(nil), weeks...)
	}
	for id := 0; id < len(l.teams); id++ {
		t := l.teams[id]
		ts := TeamSnapshot{ID: t.ID, Name: t.Name}
		for _, p := range t.players {
			entry := RosterEntry{PlayerID: p.ID}
			if price, ok := t.prices[p.ID]; ok {
				v := price
				entry.Price = &v
			}
			ts.Entries = append(ts.Entries, entry)
		}
		s.Teams = append(s.Teams, ts)
	}
	return s
}

// Restore rebuilds a league from a snapshot without re-running the injury
// simulation. Scoring, roster and team names always come from the snapshot.
// A snapshot without an injury table is simulated afresh using the options.
func Restore(s Snapshot, opts ...Option) (*League, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logger.GetLogger()
	}
	roster := s.Roster.Clone()
	restored := Options{
		Scoring:      s.Scoring,
		Roster:       &roster,
		TeamNames:    map[int]string{},
		InjuryTrials: o.InjuryTrials,
		InjurySeed:   o.InjurySeed,
		Logger:       o.Logger,
	}
	for _, ts := range s.Teams {
		restored.TeamNames[ts.ID] = ts.Name
	}

	l, err := newLeague(s.Name, s.Projections, restored)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", s.Name, err)
	}

	table := injury.Table{}
	for pos, weeks := range s.Injuries {
		table[pos] = append([]float64(nil), weeks...)
	}
	if len(table) == 0 {
		table, err = injury.NewSimulator(o.InjuryTrials, o.InjurySeed, o.Logger).SimulateAll(injury.DefaultStats)
		if err != nil {
			return nil, fmt.Errorf("restore %s: injury simulation: %w", s.Name, err)
		}
	}
	if err := l.initValuation(table); err != nil {
		return nil, fmt.Errorf("restore %s: %w", s.Name, err)
	}

	for _, ts := range s.Teams {
		t, err := l.teamLocked(ts.ID)
		if err != nil {
			return nil, fmt.Errorf("restore %s: %w", s.Name, err)
		}
		for _, e := range ts.Entries {
			p, ok := l.universe[e.PlayerID]
			if !ok {
				return nil, fmt.Errorf("restore %s: %w: player %s", s.Name, ErrNotFound, e.PlayerID)
			}
			if err := t.addLocked(p, e.Price); err != nil {
				return nil, fmt.Errorf("restore %s: %w", s.Name, err)
			}
		}
	}
	l.recalculateAuctionLocked()
	return l, nil
}
