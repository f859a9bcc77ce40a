package handlers

import (
	"fmt"
	"net/http"

	"draft-value/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DraftHandler struct {
	session *Session
	log     *logrus.Logger
}

func NewDraftHandler(s *Session, log *logrus.Logger) *DraftHandler {
	return &DraftHandler{session: s, log: log}
}

// Draft handles POST /api/v1/draft
func (h *DraftHandler) Draft(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	var req models.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.TeamID == nil && req.TeamName == "" {
		badRequest(c, fmt.Errorf("team_id or team_name is required"))
		return
	}
	if req.Price != nil && *req.Price < 0 {
		badRequest(c, fmt.Errorf("price must be >= 0"))
		return
	}

	t, err := l.Draft(req.PlayerID, toTeamRef(req.TeamRef), req.Price)
	if err != nil {
		writeError(c, err)
		return
	}
	p, err := l.Player(req.PlayerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DraftResponse{Team: teamView(l, t), Player: playerView(l, p)})
}

// Undraft handles POST /api/v1/undraft
func (h *DraftHandler) Undraft(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	var req models.UndraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.TeamID == nil && req.TeamName == "" {
		badRequest(c, fmt.Errorf("team_id or team_name is required"))
		return
	}

	t, err := l.Undraft(req.PlayerID, toTeamRef(req.TeamRef))
	if err != nil {
		writeError(c, err)
		return
	}
	p, err := l.Player(req.PlayerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DraftResponse{Team: teamView(l, t), Player: playerView(l, p)})
}
