package strategy

import (
	"testing"

	"draft-value/internal/league"
	"draft-value/internal/league/leaguetest"
	"draft-value/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(t *testing.T, l *league.League, round int) Context {
	t.Helper()
	team, err := l.Team(0)
	require.NoError(t, err)
	return Context{Round: round, Team: team, League: l}
}

func TestBuiltinStrategies(t *testing.T) {
	l := leaguetest.New(t)
	ctx := contextFor(t, l, 0)

	cases := []struct {
		name string
		want string
	}{
		{"vor", "rb00"},
		{"need", "rb00"},
		{"points", "qb00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.name, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.name, s.Name())
			p := s.Choose(ctx)
			require.NotNil(t, p)
			assert.Equal(t, tc.want, p.ID)
		})
	}
}

func TestNeedFollowsRoster(t *testing.T) {
	l := leaguetest.New(t)
	for _, id := range []string{"rb00", "rb01", "rb02", "wr00", "wr01"} {
		_, err := l.Draft(id, league.TeamID(0), nil)
		require.NoError(t, err)
	}

	p := NeedStrategy{}.Choose(contextFor(t, l, 5))
	require.NotNil(t, p)
	assert.NotEqual(t, model.PositionRB, p.Position)
	assert.NotEqual(t, model.PositionWR, p.Position)
}

func TestScheduleStrategy(t *testing.T) {
	l := leaguetest.New(t)
	s, err := New("schedule", map[string]any{"positions": "WR, qb"})
	require.NoError(t, err)

	assert.Equal(t, "wr00", s.Choose(contextFor(t, l, 0)).ID)
	assert.Equal(t, "qb00", s.Choose(contextFor(t, l, 1)).ID)
	assert.Equal(t, "rb00", s.Choose(contextFor(t, l, 5)).ID)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("bogus", nil)
	assert.Error(t, err)

	_, err = New("schedule", map[string]any{"positions": "rb,k"})
	assert.Error(t, err)

	_, err = New("schedule", nil)
	assert.Error(t, err)
}

func TestAvailable(t *testing.T) {
	var names []string
	for _, info := range Available() {
		names = append(names, info.Name)
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, []string{"need", "points", "schedule", "vor"}, names)
}

func TestParse(t *testing.T) {
	s, err := Parse("Schedule: rb,wr")
	require.NoError(t, err)
	sched, ok := s.(*ScheduleStrategy)
	require.True(t, ok)
	assert.Equal(t, []model.Position{model.PositionRB, model.PositionWR}, sched.Positions)

	s, err = Parse("need")
	require.NoError(t, err)
	assert.Equal(t, "need", s.Name())

	s, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, "vor", s.Name())

	_, err = Parse("schedule")
	assert.Error(t, err)
}
