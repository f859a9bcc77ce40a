package model

import "fmt"

// Player is a member of the league's player universe.
// Weekly projections are merged by week as new feed records arrive.
type Player struct {
	ID                string
	Name              string
	NFLTeam           string
	Position          Position
	ProjectionsByWeek map[int]Projection

	// TeamID is nil while the player is in the available pool.
	TeamID *int
}

func NewPlayer(p Projection) *Player {
	pl := &Player{
		ID:                p.ID,
		Name:              p.Player,
		NFLTeam:           p.Team,
		Position:          p.Position,
		ProjectionsByWeek: map[int]Projection{},
	}
	pl.MergeProjection(p)
	return pl
}

// MergeProjection stores p under its week. A later projection for the same week
// replaces the earlier one.
func (pl *Player) MergeProjection(p Projection) {
	if pl.ProjectionsByWeek == nil {
		pl.ProjectionsByWeek = map[int]Projection{}
	}
	pl.ProjectionsByWeek[p.Week] = p
}

func (pl *Player) Drafted() bool { return pl.TeamID != nil }

func (pl *Player) String() string {
	return fmt.Sprintf("%s, %s, %s", pl.Name, pl.Position, pl.NFLTeam)
}
