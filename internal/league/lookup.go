package league

import (
	"fmt"
	"sort"
	"strings"

	"draft-value/internal/model"
)

// TeamRef selects a team by id or, when ID is nil, by display name.
type TeamRef struct {
	ID   *int
	Name string
}

func TeamID(id int) TeamRef { return TeamRef{ID: &id} }

func TeamNamed(name string) TeamRef { return TeamRef{Name: name} }

func (r TeamRef) String() string {
	if r.ID != nil {
		return fmt.Sprintf("team %d", *r.ID)
	}
	return fmt.Sprintf("team %q", r.Name)
}

// Player looks a player up by id in the whole universe, drafted or not.
func (l *League) Player(id string) (*model.Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.universe[id]
	if !ok {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, id)
	}
	return p, nil
}

// DraftedBy reports the team holding the player, if any.
func (l *League) DraftedBy(playerID string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.universe[playerID]
	if !ok || p.TeamID == nil {
		return 0, false
	}
	return *p.TeamID, true
}

// PlayerByName returns the single player whose name matches exactly, ignoring case.
func (l *League) PlayerByName(name string) (*model.Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var matches []*model.Player
	for _, p := range l.universe {
		if strings.EqualFold(p.Name, name) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: player named %q", ErrNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d players named %q", ErrAmbiguousMatch, len(matches), name)
	}
}

// PlayerFuzzyMatch returns every player whose name contains substr, ignoring case,
// ordered by name then id.
func (l *League) PlayerFuzzyMatch(substr string) ([]*model.Player, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	needle := strings.ToLower(substr)
	var matches []*model.Player
	for _, p := range l.universe {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no player name contains %q", ErrNotFound, substr)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

func (l *League) Team(id int) (*Team, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.teamLocked(id)
}

func (l *League) teamLocked(id int) (*Team, error) {
	t, ok := l.teams[id]
	if !ok {
		return nil, fmt.Errorf("%w: team %d", ErrNotFound, id)
	}
	return t, nil
}

// Teams returns every team ordered by id.
func (l *League) Teams() []*Team {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*Team, 0, len(l.teams))
	for id := 0; id < len(l.teams); id++ {
		out = append(out, l.teams[id])
	}
	return out
}

// TeamByName matches a team's display name exactly.
func (l *League) TeamByName(name string) (*Team, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.teamByNameLocked(name)
}

func (l *League) teamByNameLocked(name string) (*Team, error) {
	for id := 0; id < len(l.teams); id++ {
		if t := l.teams[id]; t.DisplayName() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: team named %q", ErrNotFound, name)
}

func (l *League) resolveLocked(ref TeamRef) (*Team, error) {
	if ref.ID != nil {
		return l.teamLocked(*ref.ID)
	}
	if ref.Name == "" {
		return nil, fmt.Errorf("%w: empty team reference", ErrNotFound)
	}
	return l.teamByNameLocked(ref.Name)
}

// Draft moves an available player onto the referenced team, optionally at price.
func (l *League) Draft(playerID string, ref TeamRef, price *float64) (*Team, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.resolveLocked(ref)
	if err != nil {
		return nil, err
	}
	p, ok := l.universe[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	if err := t.addLocked(p, price); err != nil {
		return nil, err
	}
	return t, nil
}

// Undraft returns a player from the referenced team to the available pool.
func (l *League) Undraft(playerID string, ref TeamRef) (*Team, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.resolveLocked(ref)
	if err != nil {
		return nil, err
	}
	if err := t.removeLocked(playerID); err != nil {
		return nil, err
	}
	return t, nil
}

// BestPick ranks available players for the referenced team.
func (l *League) BestPick(ref TeamRef, n int) (*Team, []Ranked, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, err := l.resolveLocked(ref)
	if err != nil {
		return nil, nil, err
	}
	return t, t.bestPickLocked(n), nil
}
