package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"draft-value/internal/api/handlers"
	"draft-value/internal/api/models"
	"draft-value/internal/league"
	"draft-value/internal/league/leaguetest"
	"draft-value/internal/logger"
	"draft-value/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	router  *gin.Engine
	session *handlers.Session
}

func newFixture(t *testing.T, l *league.League) fixture {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "leagues.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	session := handlers.NewSession(l)
	return fixture{
		router:  NewRouter(Deps{Session: session, Store: st, Logger: logger.Discard(), CORSOrigins: []string{"*"}}),
		session: session,
	}
}

func (f fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[models.ErrorResponse](t, w).Error.Code
}

func intPtr(i int) *int { return &i }

func TestHealth(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))
	w := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNoLeagueLoaded(t *testing.T) {
	f := newFixture(t, nil)
	w := f.do(t, http.MethodGet, "/api/v1/players", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "NO_LEAGUE", errorCode(t, w))
}

func TestBestAvailable(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))

	w := f.do(t, http.MethodGet, "/api/v1/players?limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.RankedResponse](t, w)
	require.Len(t, resp.Players, 3)
	assert.Equal(t, "rb00", resp.Players[0].Player.ID)
	assert.Equal(t, "rb01", resp.Players[1].Player.ID)
	assert.Equal(t, "wr00", resp.Players[2].Player.ID)
	assert.Equal(t, 1, resp.Players[0].Rank)
	assert.InDelta(t, 114, resp.Players[0].Value, 1e-9)

	w = f.do(t, http.MethodGet, "/api/v1/players?position=te&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[models.RankedResponse](t, w)
	require.Len(t, resp.Players, 2)
	assert.Equal(t, "te00", resp.Players[0].Player.ID)

	w = f.do(t, http.MethodGet, "/api/v1/players?position=k", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/players?auction=true", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlayerLookups(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))

	w := f.do(t, http.MethodGet, "/api/v1/players/search?q=rb0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.PlayersResponse](t, w).Players, 10)

	w = f.do(t, http.MethodGet, "/api/v1/players/search?q=kicker", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/players/lookup?name=player%20QB00", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "qb00", decode[models.PlayerView](t, w).ID)

	w = f.do(t, http.MethodGet, "/api/v1/players/lookup?name=Player", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/players/te03", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[models.PlayerView](t, w)
	assert.Equal(t, "te03", view.ID)
	assert.InDelta(t, 147, view.SeasonPoints, 1e-9)

	w = f.do(t, http.MethodGet, "/api/v1/players/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestDraftAndUndraft(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))

	w := f.do(t, http.MethodPost, "/api/v1/draft", models.DraftRequest{
		PlayerID: "rb00", TeamRef: models.TeamRef{TeamID: intPtr(0)},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.DraftResponse](t, w)
	require.Len(t, resp.Team.Players, 1)
	require.NotNil(t, resp.Player.TeamID)
	assert.Equal(t, 0, *resp.Player.TeamID)

	w = f.do(t, http.MethodPost, "/api/v1/draft", models.DraftRequest{
		PlayerID: "rb00", TeamRef: models.TeamRef{TeamName: "Team 1"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "NOT_AVAILABLE", errorCode(t, w))

	w = f.do(t, http.MethodPost, "/api/v1/draft", models.DraftRequest{PlayerID: "rb01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/draft", models.DraftRequest{
		PlayerID: "rb01", TeamRef: models.TeamRef{TeamName: "Nobody"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/players?limit=1", nil)
	assert.Equal(t, "rb01", decode[models.RankedResponse](t, w).Players[0].Player.ID)

	w = f.do(t, http.MethodPost, "/api/v1/undraft", models.UndraftRequest{
		PlayerID: "rb00", TeamRef: models.TeamRef{TeamID: intPtr(1)},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "NOT_ON_ROSTER", errorCode(t, w))

	w = f.do(t, http.MethodPost, "/api/v1/undraft", models.UndraftRequest{
		PlayerID: "rb00", TeamRef: models.TeamRef{TeamName: "Team 0"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[models.DraftResponse](t, w)
	assert.Empty(t, resp.Team.Players)
	assert.Nil(t, resp.Player.TeamID)
}

func TestAuctionDraftPrice(t *testing.T) {
	f := newFixture(t, leaguetest.New(t, league.WithRoster(leaguetest.Auction(200))))

	price := 50.0
	w := f.do(t, http.MethodPost, "/api/v1/draft", models.DraftRequest{
		PlayerID: "rb00", TeamRef: models.TeamRef{TeamID: intPtr(2)}, Price: &price,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.InDelta(t, 50, decode[models.DraftResponse](t, w).Team.Spent, 1e-9)

	w = f.do(t, http.MethodGet, "/api/v1/league", nil)
	require.Equal(t, http.StatusOK, w.Code)
	lr := decode[models.LeagueResponse](t, w)
	require.NotNil(t, lr.RemainingBudget)
	assert.InDelta(t, 1930, *lr.RemainingBudget, 1e-6)

	w = f.do(t, http.MethodGet, "/api/v1/players?auction=true&limit=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	neg := -1.0
	w = f.do(t, http.MethodPost, "/api/v1/draft", models.DraftRequest{
		PlayerID: "rb01", TeamRef: models.TeamRef{TeamID: intPtr(2)}, Price: &neg,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTeams(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))

	w := f.do(t, http.MethodGet, "/api/v1/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[models.TeamsResponse](t, w).Teams, 10)

	w = f.do(t, http.MethodGet, "/api/v1/teams/Team%203", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[models.TeamView](t, w).ID)

	w = f.do(t, http.MethodGet, "/api/v1/teams/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/teams/4/best-pick", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bp := decode[models.BestPickResponse](t, w)
	require.Len(t, bp.Picks, league.DefaultBestPicks)
	ids := make([]string, 0, len(bp.Picks))
	for _, p := range bp.Picks {
		ids = append(ids, p.Player.ID)
	}
	assert.Equal(t, []string{"rb00", "rb01", "wr00", "rb02", "wr01"}, ids)
}

func TestSettingsAndRecalculate(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))

	w := f.do(t, http.MethodPut, "/api/v1/settings", map[string]any{"scoring": map[string]float64{"pts": 2}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	lr := decode[models.LeagueResponse](t, w)
	assert.InDelta(t, 630, lr.ReplacementLevels["qb"], 1e-6)

	roster := leaguetest.Auction(200)
	roster.Teams = 12
	w = f.do(t, http.MethodPut, "/api/v1/settings", models.SettingsRequest{Roster: &roster})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INVALID_CONFIGURATION", errorCode(t, w))

	w = f.do(t, http.MethodPost, "/api/v1/recalculate", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/recalculate", models.RecalculateRequest{AuctionValues: true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/positions", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStrategiesAndMock(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))

	w := f.do(t, http.MethodGet, "/api/v1/strategies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Strategies []models.StrategyInfo `json:"strategies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	names := make([]string, 0, len(listed.Strategies))
	for _, s := range listed.Strategies {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "vor")
	assert.Contains(t, names, "schedule")

	w = f.do(t, http.MethodPost, "/api/v1/mock", models.MockRequest{
		Default:       models.StrategyConfig{Name: "vor"},
		Strategies:    map[int]models.StrategyConfig{0: {Name: "points"}},
		Rounds:        2,
		IncludeLedger: true,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	mock := decode[models.MockResponse](t, w)
	assert.Equal(t, 2, mock.Rounds)
	assert.Len(t, mock.Teams, 10)
	assert.Len(t, mock.Ledger, 20)
	assert.Equal(t, 1, mock.Ledger[0].Pick)
	assert.Equal(t, "points", mock.Ledger[0].Strategy)

	// the served league is untouched
	w = f.do(t, http.MethodGet, "/api/v1/league", nil)
	assert.Equal(t, 190, decode[models.LeagueResponse](t, w).Available)

	w = f.do(t, http.MethodPost, "/api/v1/mock", models.MockRequest{Default: models.StrategyConfig{Name: "nope"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveLoadLeagues(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))

	w := f.do(t, http.MethodPost, "/api/v1/draft", models.DraftRequest{
		PlayerID: "qb00", TeamRef: models.TeamRef{TeamID: intPtr(5)},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodPost, "/api/v1/leagues/home/save", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/leagues", nil)
	require.Equal(t, http.StatusOK, w.Code)
	saved := decode[models.SavedLeaguesResponse](t, w)
	require.Len(t, saved.Leagues, 1)
	assert.Equal(t, "home", saved.Leagues[0].Name)
	assert.Equal(t, 1, saved.Leagues[0].Drafted)

	f.session.Replace(leaguetest.New(t))
	w = f.do(t, http.MethodPost, "/api/v1/leagues/home/load", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "home", decode[models.LeagueResponse](t, w).Name)

	w = f.do(t, http.MethodGet, "/api/v1/teams/5", nil)
	team := decode[models.TeamView](t, w)
	require.Len(t, team.Players, 1)
	assert.Equal(t, "qb00", team.Players[0].Player.ID)

	w = f.do(t, http.MethodPost, "/api/v1/leagues/missing/load", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/leagues/home", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = f.do(t, http.MethodDelete, "/api/v1/leagues/home", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/players", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t, leaguetest.New(t))
	w := f.do(t, http.MethodGet, "/api/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}
