package handlers

import (
	"fmt"
	"net/http"

	"draft-value/internal/api/models"
	"draft-value/internal/model"

	"github.com/gin-gonic/gin"
)

const defaultBoardSize = 25

type PlayerHandler struct {
	session *Session
}

func NewPlayerHandler(s *Session) *PlayerHandler {
	return &PlayerHandler{session: s}
}

// BestAvailable handles GET /api/v1/players
func (h *PlayerHandler) BestAvailable(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	var q models.BestAvailableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	var pos model.Position
	if q.Position != "" {
		parsed, ok := model.ParsePosition(q.Position)
		if !ok || !parsed.Valued() {
			badRequest(c, fmt.Errorf("position %q is not valued", q.Position))
			return
		}
		pos = parsed
	}
	if q.Limit <= 0 {
		q.Limit = defaultBoardSize
	}
	if q.Auction && !l.Roster().HasAuction() {
		badRequest(c, fmt.Errorf("league has no auction budget"))
		return
	}
	c.JSON(http.StatusOK, models.RankedResponse{Players: rankedViews(l, l.BestAvailable(pos, q.Limit, q.Auction))})
}

// Search handles GET /api/v1/players/search?q=
func (h *PlayerHandler) Search(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	var q models.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	matches, err := l.PlayerFuzzyMatch(q.Q)
	if err != nil {
		writeError(c, err)
		return
	}
	resp := models.PlayersResponse{Players: make([]models.PlayerView, 0, len(matches))}
	for _, p := range matches {
		resp.Players = append(resp.Players, playerView(l, p))
	}
	c.JSON(http.StatusOK, resp)
}

// Lookup handles GET /api/v1/players/lookup?name=
func (h *PlayerHandler) Lookup(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	var q models.LookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	p, err := l.PlayerByName(q.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, playerView(l, p))
}

// Get handles GET /api/v1/players/:id
func (h *PlayerHandler) Get(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	p, err := l.Player(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, playerView(l, p))
}
