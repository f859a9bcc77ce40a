package handlers

import (
	"net/http"
	"sort"

	"draft-value/internal/api/models"
	"draft-value/internal/mockdraft"
	"draft-value/internal/strategy"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StrategyHandler lists pick strategies and runs mock drafts.
type StrategyHandler struct {
	session *Session
	engine  *mockdraft.Engine
}

func NewStrategyHandler(s *Session, log *logrus.Logger) *StrategyHandler {
	return &StrategyHandler{session: s, engine: mockdraft.New(log)}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	infos := strategy.Available()
	out := make([]models.StrategyInfo, 0, len(infos))
	for _, info := range infos {
		si := models.StrategyInfo{Name: info.Name, Description: info.Description, Parameters: []models.ParameterInfo{}}
		keys := make([]string, 0, len(info.Params))
		for k := range info.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			si.Parameters = append(si.Parameters, models.ParameterInfo{Name: k, Type: "string", Description: info.Params[k]})
		}
		out = append(out, si)
	}
	c.JSON(http.StatusOK, gin.H{"strategies": out})
}

// RunMock handles POST /api/v1/mock. The served league is not changed.
func (h *StrategyHandler) RunMock(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	var req models.MockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	fallback, err := strategy.New(req.Default.Name, req.Default.Params)
	if err != nil {
		badRequest(c, err)
		return
	}
	perTeam := map[int]strategy.Strategy{}
	for id, cfg := range req.Strategies {
		s, err := strategy.New(cfg.Name, cfg.Params)
		if err != nil {
			badRequest(c, err)
			return
		}
		perTeam[id] = s
	}

	res, err := h.engine.Simulate(c.Request.Context(), l, perTeam, fallback, req.Rounds)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.MockResponse{Rounds: res.Rounds}
	for _, t := range res.Teams {
		resp.Teams = append(resp.Teams, models.MockTeam{
			TeamID: t.TeamID, Name: t.TeamName, Strategy: t.Strategy, Picks: t.Picks, Added: t.Added,
		})
	}
	if req.IncludeLedger {
		for _, r := range res.Ledger {
			resp.Ledger = append(resp.Ledger, models.MockPick{
				Pick: r.Pick + 1, Round: r.Round + 1, TeamID: r.TeamID, Strategy: r.Strategy,
				PlayerID: r.PlayerID, Player: r.Player, Position: r.Position, VOR: r.VOR, Added: r.Added,
			})
		}
	}
	c.JSON(http.StatusOK, resp)
}
