package league

import (
	"fmt"

	"draft-value/internal/model"

	"github.com/sirupsen/logrus"
)

// DefaultBestPicks is how many candidates BestPick returns when n <= 0.
const DefaultBestPicks = 5

// Team is one drafting roster. It is owned by its League and shares the
// league's lock.
type Team struct {
	ID   int
	Name string

	league *League
	// players is kept in draft order.
	players []*model.Player
	prices  map[string]float64
}

func newTeam(id int, name string, l *League) *Team {
	return &Team{ID: id, Name: name, league: l, prices: map[string]float64{}}
}

// DisplayName is the team's name, or "Team N" when it has none.
func (t *Team) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("Team %d", t.ID)
}

func (t *Team) String() string { return t.DisplayName() }

// Players returns the roster in draft order.
func (t *Team) Players() []*model.Player {
	t.league.mu.Lock()
	defer t.league.mu.Unlock()
	return append([]*model.Player(nil), t.players...)
}

// Price returns what was paid for a rostered player; ok is false for unpriced picks.
func (t *Team) Price(playerID string) (float64, bool) {
	t.league.mu.Lock()
	defer t.league.mu.Unlock()
	v, ok := t.prices[playerID]
	return v, ok
}

// Spent is the sum of recorded prices on the roster.
func (t *Team) Spent() float64 {
	t.league.mu.Lock()
	defer t.league.mu.Unlock()
	return t.spentLocked()
}

func (t *Team) spentLocked() float64 {
	total := 0.0
	for _, v := range t.prices {
		total += v
	}
	return total
}

func (t *Team) Len() int {
	t.league.mu.Lock()
	defer t.league.mu.Unlock()
	return len(t.players)
}

// AddPlayer moves p from the available pool onto the roster. A non-nil price is
// charged against the league's auction budget and every auction value is
// recalculated.
func (t *Team) AddPlayer(p *model.Player, price *float64) error {
	t.league.mu.Lock()
	defer t.league.mu.Unlock()
	return t.addLocked(p, price)
}

func (t *Team) addLocked(p *model.Player, price *float64) error {
	l := t.league
	if _, ok := l.available[p.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotAvailable, p)
	}
	if len(t.players) >= l.engine.Roster().RosterSize {
		return fmt.Errorf("%w: %s has %d players", ErrRosterFull, t, len(t.players))
	}

	delete(l.available, p.ID)
	id := t.ID
	p.TeamID = &id
	t.players = append(t.players, p)
	delete(l.auctionValues, p.ID)

	entry := l.log.WithFields(logrus.Fields{"team_id": t.ID, "player_id": p.ID})
	if price != nil {
		t.prices[p.ID] = *price
		l.auctionSpent += *price
		l.recalculateAuctionLocked()
		entry = entry.WithField("price", *price)
	}
	entry.Info("Player drafted")
	return nil
}

// RemovePlayer returns a rostered player to the available pool. A recorded price
// is refunded to the auction budget.
func (t *Team) RemovePlayer(playerID string) error {
	t.league.mu.Lock()
	defer t.league.mu.Unlock()
	return t.removeLocked(playerID)
}

func (t *Team) removeLocked(playerID string) error {
	l := t.league
	idx := -1
	for i, p := range t.players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s on %s", ErrNotOnRoster, playerID, t)
	}

	p := t.players[idx]
	t.players = append(t.players[:idx], t.players[idx+1:]...)
	p.TeamID = nil
	l.available[p.ID] = p

	if price, ok := t.prices[p.ID]; ok {
		delete(t.prices, p.ID)
		l.auctionSpent -= price
	}
	l.recalculateAuctionLocked()
	l.log.WithFields(logrus.Fields{"team_id": t.ID, "player_id": p.ID}).Info("Player released")
	return nil
}

// ValueFromPlayer is the value candidate would add to this roster as it stands.
func (t *Team) ValueFromPlayer(candidate *model.Player) float64 {
	t.league.mu.Lock()
	defer t.league.mu.Unlock()
	return t.league.engine.MarginalValue(candidate, t.players)
}

// BestPick ranks available players by the value they would add to this roster.
func (t *Team) BestPick(n int) []Ranked {
	t.league.mu.Lock()
	defer t.league.mu.Unlock()
	return t.bestPickLocked(n)
}

func (t *Team) bestPickLocked(n int) []Ranked {
	if n <= 0 {
		n = DefaultBestPicks
	}
	l := t.league
	ranked := make([]Ranked, 0, len(l.available))
	for _, p := range l.availableLocked() {
		ranked = append(ranked, Ranked{Player: p, Value: l.engine.MarginalValue(p, t.players)})
	}
	return topN(ranked, n)
}
