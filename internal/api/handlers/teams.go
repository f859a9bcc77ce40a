package handlers

import (
	"net/http"
	"strconv"

	"draft-value/internal/api/models"
	"draft-value/internal/league"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	session *Session
}

func NewTeamHandler(s *Session) *TeamHandler {
	return &TeamHandler{session: s}
}

// teamParam reads :id as a numeric id, or as a display name otherwise.
func teamParam(c *gin.Context) league.TeamRef {
	raw := c.Param("id")
	if id, err := strconv.Atoi(raw); err == nil {
		return league.TeamID(id)
	}
	return league.TeamNamed(raw)
}

func resolveTeam(l *league.League, ref league.TeamRef) (*league.Team, error) {
	if ref.ID != nil {
		return l.Team(*ref.ID)
	}
	return l.TeamByName(ref.Name)
}

// List handles GET /api/v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	resp := models.TeamsResponse{}
	for _, t := range l.Teams() {
		resp.Teams = append(resp.Teams, teamView(l, t))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	t, err := resolveTeam(l, teamParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, teamView(l, t))
}

// BestPick handles GET /api/v1/teams/:id/best-pick
func (h *TeamHandler) BestPick(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	var q models.BestPickQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	t, picks, err := l.BestPick(teamParam(c), q.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.BestPickResponse{Team: teamView(l, t), Picks: rankedViews(l, picks)})
}
