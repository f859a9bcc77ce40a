// Package league holds one draft session: settings, the player universe, the
// available pool and the teams drafting from it.
package league

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"draft-value/internal/injury"
	"draft-value/internal/logger"
	"draft-value/internal/model"
	"draft-value/internal/valuation"

	"github.com/sirupsen/logrus"
)

// League is the sole owner of the available pool and every roster. All exported
// methods, including those on Team, serialize on one lock so a player is never
// observed half-moved between the pool and a roster.
type League struct {
	mu sync.Mutex

	name     string
	universe map[string]*model.Player
	// available holds every undrafted player; drafted players live on a Team.
	available map[string]*model.Player
	teams     map[int]*Team
	injuries  injury.Table
	engine    *valuation.Engine

	auctionValues map[string]float64
	auctionSpent  float64

	log *logrus.Entry
}

// Ranked pairs a player with the value it was ranked by.
type Ranked struct {
	Player *model.Player
	Value  float64
}

// New builds a league from projection records: it merges records into players,
// simulates injuries, computes replacement levels and, for auction leagues,
// prices every player.
func New(name string, records []model.Projection, opts ...Option) (*League, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logger.GetLogger()
	}
	l, err := newLeague(name, records, o)
	if err != nil {
		return nil, err
	}

	stats := o.InjuryStats
	if stats == nil {
		stats = injury.DefaultStats
	}
	sim := injury.NewSimulator(o.InjuryTrials, o.InjurySeed, o.Logger)
	table, err := sim.SimulateAll(stats)
	if err != nil {
		return nil, fmt.Errorf("injury simulation: %w", err)
	}
	if err := l.initValuation(table); err != nil {
		return nil, err
	}
	return l, nil
}

func newLeague(name string, records []model.Projection, o Options) (*League, error) {
	scoring := model.MergeScoring(model.DefaultScoring(), o.Scoring)
	roster := model.DefaultRoster()
	if o.Roster != nil {
		roster = o.Roster.Clone()
	}
	if err := roster.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	l := &League{
		name:          name,
		universe:      map[string]*model.Player{},
		available:     map[string]*model.Player{},
		teams:         map[int]*Team{},
		auctionValues: map[string]float64{},
		log:           o.Logger.WithField("league", name),
	}
	for _, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			continue
		}
		if p, ok := l.universe[rec.ID]; ok {
			p.MergeProjection(rec)
			continue
		}
		l.universe[rec.ID] = model.NewPlayer(rec)
	}
	for id, p := range l.universe {
		l.available[id] = p
	}
	for id := 0; id < roster.Teams; id++ {
		l.teams[id] = newTeam(id, o.TeamNames[id], l)
	}

	players := make([]*model.Player, 0, len(l.universe))
	for _, p := range l.universe {
		players = append(players, p)
	}
	l.engine = valuation.NewEngine(players, scoring, roster, nil)
	return l, nil
}

func (l *League) initValuation(table injury.Table) error {
	l.injuries = table
	l.engine = valuation.NewEngine(l.engine.Players(), l.engine.Scoring(), l.engine.Roster(), table)
	levels, err := l.engine.ComputeReplacementLevels()
	if err != nil {
		return fmt.Errorf("league %s: %w", l.name, err)
	}
	l.log.WithFields(logrus.Fields{
		"players":     len(l.universe),
		"teams":       len(l.teams),
		"replacement": levels,
	}).Info("League initialized")
	l.recalculateAuctionLocked()
	return nil
}

func (l *League) Name() string { return l.name }

func (l *League) String() string {
	return fmt.Sprintf("League %s, %d teams", l.name, len(l.teams))
}

func (l *League) Scoring() model.ScoringSettings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.MergeScoring(l.engine.Scoring(), nil)
}

func (l *League) Roster() model.RosterSettings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Roster().Clone()
}

func (l *League) ReplacementLevels() map[model.Position]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.ReplacementLevels()
}

// InjuryTable returns a copy of the simulated weekly injury probabilities.
func (l *League) InjuryTable() injury.Table {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(injury.Table, len(l.injuries))
	for pos, weeks := range l.injuries {
		out[pos] = append([]float64(nil), weeks...)
	}
	return out
}

func (l *League) UniverseSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.universe)
}

// Available returns the undrafted players ordered by id.
func (l *League) Available() []*model.Player {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.availableLocked()
}

func (l *League) availableLocked() []*model.Player {
	out := make([]*model.Player, 0, len(l.available))
	for _, p := range l.available {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *League) IsAvailable(playerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.available[playerID]
	return ok
}

func (l *League) WeeklyPoints(p *model.Player, week int) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.WeeklyPoints(p, week)
}

func (l *League) SeasonPoints(p *model.Player) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.SeasonPoints(p)
}

func (l *League) ValueOverReplacement(p *model.Player, auction bool) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.ValueOverReplacement(p, auction)
}

func (l *League) IndependentStartProbability(p *model.Player, week int) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.IndependentStartProbability(p, week)
}

// AuctionValue returns the player's current price; ok is false for drafted
// players and non-auction leagues.
func (l *League) AuctionValue(p *model.Player) (float64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.auctionValues[p.ID]
	return v, ok
}

func (l *League) AuctionBudgetSpent() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.auctionSpent
}

// RemainingAuctionBudget is the league-wide budget still available for valued players.
func (l *League) RemainingAuctionBudget() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return valuation.RemainingBudget(l.engine.Roster(), l.auctionSpent)
}

// BestAvailable ranks undrafted players by value over replacement, or by auction
// value when auction is set. An empty position ranks every position.
func (l *League) BestAvailable(position model.Position, n int, auction bool) []Ranked {
	l.mu.Lock()
	defer l.mu.Unlock()

	ranked := make([]Ranked, 0, len(l.available))
	for _, p := range l.availableLocked() {
		if position != "" && p.Position != position {
			continue
		}
		var v float64
		if auction {
			v = l.auctionValues[p.ID]
		} else {
			v = l.engine.ValueOverReplacement(p, false)
		}
		ranked = append(ranked, Ranked{Player: p, Value: v})
	}
	return topN(ranked, n)
}

// RecalculateAuctionValues reprices every available player against the budget
// that is left. It is a no-op for non-auction leagues.
func (l *League) RecalculateAuctionValues() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recalculateAuctionLocked()
}

func (l *League) recalculateAuctionLocked() {
	if !l.engine.Roster().HasAuction() {
		return
	}
	alloc := l.engine.AllocateAuction(l.availableLocked(), l.auctionSpent)
	if alloc.Degenerate {
		l.log.WithField("available", len(l.available)).Warn("No auction value left in the pool; pricing all players at 0")
	}
	l.auctionValues = alloc.Values
	l.log.WithFields(logrus.Fields{
		"budget":      alloc.Budget,
		"total_value": alloc.TotalValue,
		"spent":       l.auctionSpent,
	}).Debug("Auction values recalculated")
}

// RecalculateReplacementLevels recomputes baselines over the whole universe and
// then reprices the auction.
func (l *League) RecalculateReplacementLevels() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.engine.ComputeReplacementLevels(); err != nil {
		return err
	}
	l.recalculateAuctionLocked()
	return nil
}

// UpdateSettings replaces scoring overrides and/or roster settings, drops every
// memoized value and recomputes replacement levels and auction values. A nil
// argument keeps the current setting. The team count is fixed for the session.
func (l *League) UpdateSettings(scoring model.ScoringSettings, roster *model.RosterSettings) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prevScoring, prevRoster := l.engine.Scoring(), l.engine.Roster()
	nextScoring, nextRoster := prevScoring, prevRoster
	if scoring != nil {
		nextScoring = model.MergeScoring(prevScoring, scoring)
	}
	if roster != nil {
		nextRoster = roster.Clone()
		if err := nextRoster.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		if nextRoster.Teams != prevRoster.Teams {
			return fmt.Errorf("%w: team count cannot change from %d", ErrInvalidConfiguration, prevRoster.Teams)
		}
		for _, t := range l.teams {
			if len(t.players) > nextRoster.RosterSize {
				return fmt.Errorf("%w: %s already holds %d players", ErrInvalidConfiguration, t, len(t.players))
			}
		}
	}

	l.engine.Reconfigure(nextScoring, nextRoster)
	if _, err := l.engine.ComputeReplacementLevels(); err != nil {
		l.engine.Reconfigure(prevScoring, prevRoster)
		if _, rerr := l.engine.ComputeReplacementLevels(); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	if !nextRoster.HasAuction() {
		l.auctionValues = map[string]float64{}
	}
	l.recalculateAuctionLocked()
	l.log.Info("League settings updated")
	return nil
}

func topN(ranked []Ranked, n int) []Ranked {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Player.ID < ranked[j].Player.ID
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
