package handlers

import (
	"net/http"

	"draft-value/internal/analysis"
	"draft-value/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LeagueHandler serves league settings, recalculation and position reports.
type LeagueHandler struct {
	session *Session
	log     *logrus.Logger
}

func NewLeagueHandler(s *Session, log *logrus.Logger) *LeagueHandler {
	return &LeagueHandler{session: s, log: log}
}

// GetLeague handles GET /api/v1/league
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, leagueResponse(l))
}

// UpdateSettings handles PUT /api/v1/settings
func (h *LeagueHandler) UpdateSettings(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	var req models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := l.UpdateSettings(req.Scoring, req.Roster); err != nil {
		writeError(c, err)
		return
	}
	h.log.WithField("league", l.Name()).Info("Settings updated via API")
	c.JSON(http.StatusOK, leagueResponse(l))
}

// Recalculate handles POST /api/v1/recalculate. An empty body recomputes both.
func (h *LeagueHandler) Recalculate(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	req := models.RecalculateRequest{ReplacementLevels: true, AuctionValues: true}
	if c.Request.ContentLength > 0 {
		req = models.RecalculateRequest{}
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	if req.ReplacementLevels {
		if err := l.RecalculateReplacementLevels(); err != nil {
			writeError(c, err)
			return
		}
	} else if req.AuctionValues {
		l.RecalculateAuctionValues()
	}
	c.JSON(http.StatusOK, leagueResponse(l))
}

// Positions handles GET /api/v1/positions
func (h *LeagueHandler) Positions(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"positions": analysis.Scarcity(l)})
}
