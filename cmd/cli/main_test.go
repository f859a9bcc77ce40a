package main

import (
	"context"
	"path/filepath"
	"testing"

	"draft-value/internal/league"
	"draft-value/internal/league/leaguetest"
	"draft-value/internal/logger"
	"draft-value/internal/model"
	"draft-value/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRef(t *testing.T) {
	id := func(n int) *int { return &n }
	cases := []struct {
		raw  string
		want league.TeamRef
	}{
		{"3", league.TeamRef{ID: id(3)}},
		{" 4 ", league.TeamRef{ID: id(4)}},
		{"0", league.TeamRef{ID: id(0)}},
		{"Team 3", league.TeamRef{Name: "Team 3"}},
		{"Gridiron Gurus", league.TeamRef{Name: "Gridiron Gurus"}},
		{"3a", league.TeamRef{Name: "3a"}},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, teamRef(tc.raw))
		})
	}
}

func TestParsePositionFlag(t *testing.T) {
	cases := []struct {
		raw     string
		want    model.Position
		wantErr bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"RB", model.PositionRB, false},
		{"te", model.PositionTE, false},
		{"k", "", true},
		{"dst", "", true},
		{"xx", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := parsePosition(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Josh Allen", truncate("Josh Allen", 24))
	assert.Equal(t, "Amon-Ra St. B…", truncate("Amon-Ra St. Brown", 14))
	assert.Equal(t, "Jaxon Smith-Nj…", truncate("Jaxon Smith-Njigba", 15))
}

func saveTestLeague(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "leagues.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.Save(context.Background(), leaguetest.New(t).Snapshot()))
	return dbPath
}

func reloadTestLeague(t *testing.T, dbPath string) *league.League {
	t.Helper()
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	snap, err := st.Load(context.Background(), "test")
	require.NoError(t, err)
	l, err := league.Restore(snap, league.WithLogger(logger.Discard()))
	require.NoError(t, err)
	return l
}

func TestCmdDraftAndUndraft(t *testing.T) {
	dbPath := saveTestLeague(t)
	log := logger.Discard()

	err := cmdDraft([]string{"--db", dbPath, "--league", "test", "--player", "rb00", "--team", "Team 2", "--price", "12.5"}, log, false)
	require.NoError(t, err)

	l := reloadTestLeague(t, dbPath)
	teamID, ok := l.DraftedBy("rb00")
	require.True(t, ok)
	assert.Equal(t, 2, teamID)
	team, err := l.Team(2)
	require.NoError(t, err)
	price, ok := team.Price("rb00")
	require.True(t, ok)
	assert.Equal(t, 12.5, price)

	err = cmdDraft([]string{"--db", dbPath, "--league", "test", "--player", "rb00", "--team", "2"}, log, true)
	require.NoError(t, err)

	l = reloadTestLeague(t, dbPath)
	assert.True(t, l.IsAvailable("rb00"))
	team, err = l.Team(2)
	require.NoError(t, err)
	assert.Equal(t, 0, team.Len())
}

func TestCmdDraftErrors(t *testing.T) {
	dbPath := saveTestLeague(t)
	log := logger.Discard()

	cases := []struct {
		name string
		args []string
		undo bool
	}{
		{"missing league", []string{"--db", dbPath, "--player", "rb00", "--team", "1"}, false},
		{"missing player", []string{"--db", dbPath, "--league", "test", "--team", "1"}, false},
		{"missing team", []string{"--db", dbPath, "--league", "test", "--player", "rb00"}, true},
		{"unknown league", []string{"--db", dbPath, "--league", "other", "--player", "rb00", "--team", "1"}, false},
		{"unknown team name", []string{"--db", dbPath, "--league", "test", "--player", "rb00", "--team", "Nobody"}, false},
		{"unknown team id", []string{"--db", dbPath, "--league", "test", "--player", "rb00", "--team", "42"}, false},
		{"undraft undrafted player", []string{"--db", dbPath, "--league", "test", "--player", "rb00", "--team", "1"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, cmdDraft(tc.args, log, tc.undo))
		})
	}

	assert.True(t, reloadTestLeague(t, dbPath).IsAvailable("rb00"))
}
