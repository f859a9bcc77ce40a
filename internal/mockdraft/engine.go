// Package mockdraft simulates a snake draft where each team follows a pick strategy.
package mockdraft

import (
	"context"
	"fmt"

	"draft-value/internal/league"
	"draft-value/internal/strategy"

	"github.com/sirupsen/logrus"
)

type Engine struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{log: log}
}

// Order returns the team on the clock at each pick of a snake draft.
func Order(teams, rounds int) []int {
	out := make([]int, 0, teams*rounds)
	for r := 0; r < rounds; r++ {
		for i := 0; i < teams; i++ {
			if r%2 == 0 {
				out = append(out, i)
			} else {
				out = append(out, teams-1-i)
			}
		}
	}
	return out
}

// Run drafts on l in place. strategies maps team id to its strategy; teams
// without one use fallback. rounds <= 0 drafts until every roster is full.
// A team whose roster is full is skipped when it comes on the clock.
func (e *Engine) Run(ctx context.Context, l *league.League, strategies map[int]strategy.Strategy, fallback strategy.Strategy, rounds int) (*Result, error) {
	if l == nil {
		return nil, fmt.Errorf("league is nil")
	}
	if fallback == nil {
		fallback = strategy.VORStrategy{}
	}
	roster := l.Roster()
	teams := l.Teams()

	// open slots per team; rosters that are already partly drafted fill up first
	open := make([]int, len(teams))
	maxOpen := 0
	for i, t := range teams {
		open[i] = roster.RosterSize - t.Len()
		if open[i] < 0 {
			open[i] = 0
		}
		if open[i] > maxOpen {
			maxOpen = open[i]
		}
	}
	if rounds <= 0 || rounds > maxOpen {
		rounds = maxOpen
	}

	totals := make([]TeamTotal, len(teams))
	stratFor := make([]strategy.Strategy, len(teams))
	for i, t := range teams {
		s, ok := strategies[t.ID]
		if !ok || s == nil {
			s = fallback
		}
		stratFor[i] = s
		totals[i] = TeamTotal{TeamID: t.ID, TeamName: t.DisplayName(), Strategy: s.Name()}
	}

	res := &Result{}
	for pick, idx := range Order(len(teams), rounds) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if open[idx] == 0 {
			continue
		}
		round := pick / len(teams)
		team := teams[idx]
		s := stratFor[idx]

		p := s.Choose(strategy.Context{Round: round, Pick: pick, Team: team, League: l})
		if p == nil {
			e.log.WithFields(logrus.Fields{"pick": pick, "team_id": team.ID}).Info("Mock draft stopped: nothing left to pick")
			break
		}
		vor := l.ValueOverReplacement(p, false)
		added := team.ValueFromPlayer(p)
		if _, err := l.Draft(p.ID, league.TeamID(team.ID), nil); err != nil {
			return nil, fmt.Errorf("pick %d (%s): %w", pick, s.Name(), err)
		}

		open[idx]--
		totals[idx].Picks++
		totals[idx].Added += added
		res.Ledger = append(res.Ledger, PickRow{
			Pick:     pick,
			Round:    round,
			TeamID:   team.ID,
			TeamName: team.DisplayName(),
			Strategy: s.Name(),
			PlayerID: p.ID,
			Player:   p.Name,
			Position: p.Position,
			VOR:      vor,
			Added:    added,
			CumAdded: totals[idx].Added,
		})
		res.Rounds = round + 1
	}
	res.Teams = totals

	e.log.WithFields(logrus.Fields{"picks": len(res.Ledger), "rounds": res.Rounds}).Info("Mock draft complete")
	return res, nil
}

// Simulate runs a mock draft on a copy of l, leaving l untouched.
func (e *Engine) Simulate(ctx context.Context, l *league.League, strategies map[int]strategy.Strategy, fallback strategy.Strategy, rounds int) (*Result, error) {
	copyOf, err := league.Restore(l.Snapshot(), league.WithLogger(e.log))
	if err != nil {
		return nil, fmt.Errorf("copy league: %w", err)
	}
	return e.Run(ctx, copyOf, strategies, fallback, rounds)
}
