package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamDisplayName(t *testing.T) {
	l := newTestLeague(t, WithTeamNames(map[int]string{0: "Sharks"}))

	named, err := l.Team(0)
	require.NoError(t, err)
	unnamed, err := l.Team(1)
	require.NoError(t, err)

	assert.Equal(t, "Sharks", named.DisplayName())
	assert.Equal(t, "Team 1", unnamed.DisplayName())
}

func TestBestPickEmptyRosterMatchesVOR(t *testing.T) {
	l := newTestLeague(t)

	team, picks, err := l.BestPick(TeamID(0), 0)
	require.NoError(t, err)
	require.Len(t, picks, DefaultBestPicks)
	assert.Equal(t, []string{"rb00", "rb01", "wr00", "rb02", "wr01"}, ids(picks))

	for _, pick := range picks {
		assert.InDelta(t, l.ValueOverReplacement(pick.Player, false), pick.Value, 1e-9)
		assert.InDelta(t, pick.Value, team.ValueFromPlayer(pick.Player), 1e-9)
	}
}

func TestValueFromPlayerFilledSlot(t *testing.T) {
	l := newTestLeague(t)
	team, err := l.Team(0)
	require.NoError(t, err)

	backup, err := l.Player("qb01")
	require.NoError(t, err)
	require.Greater(t, team.ValueFromPlayer(backup), 0.0)

	_, err = l.Draft("qb00", TeamID(0), nil)
	require.NoError(t, err)

	// One qb slot, no flex for qbs and no injuries: a backup never starts.
	assert.Equal(t, 0.0, team.ValueFromPlayer(backup))
	for _, pick := range team.BestPick(40) {
		if pick.Player.ID == "qb01" {
			assert.Equal(t, 0.0, pick.Value)
		}
	}
}

func TestValueFromPlayerOpenFlex(t *testing.T) {
	l := newTestLeague(t)
	for _, id := range []string{"rb00", "rb01"} {
		_, err := l.Draft(id, TeamID(0), nil)
		require.NoError(t, err)
	}
	team, err := l.Team(0)
	require.NoError(t, err)
	third, err := l.Player("rb02")
	require.NoError(t, err)

	assert.InDelta(t, 110, team.ValueFromPlayer(third), 1e-9)
}

func TestRemovePlayerRestoresPool(t *testing.T) {
	l := newTestLeague(t)
	team, err := l.Team(4)
	require.NoError(t, err)
	p, err := l.Player("te00")
	require.NoError(t, err)

	require.NoError(t, team.AddPlayer(p, nil))
	assert.ErrorIs(t, team.AddPlayer(p, nil), ErrNotAvailable)
	require.NoError(t, team.RemovePlayer("te00"))

	assert.ErrorIs(t, team.RemovePlayer("te00"), ErrNotOnRoster)
	assert.Empty(t, team.Players())
	assert.True(t, l.IsAvailable("te00"))
	requirePartition(t, l)
}
