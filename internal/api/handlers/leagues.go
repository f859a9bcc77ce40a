package handlers

import (
	"context"
	"net/http"
	"strings"

	"draft-value/internal/api/models"
	"draft-value/internal/league"
	"draft-value/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SnapshotStore persists league snapshots by name.
type SnapshotStore interface {
	Save(ctx context.Context, snap league.Snapshot) error
	Load(ctx context.Context, name string) (league.Snapshot, error)
	List(ctx context.Context) ([]store.Summary, error)
	Delete(ctx context.Context, name string) error
}

// PersistenceHandler saves and restores leagues.
type PersistenceHandler struct {
	session *Session
	store   SnapshotStore
	log     *logrus.Logger
}

func NewPersistenceHandler(s *Session, st SnapshotStore, log *logrus.Logger) *PersistenceHandler {
	return &PersistenceHandler{session: s, store: st, log: log}
}

// List handles GET /api/v1/leagues
func (h *PersistenceHandler) List(c *gin.Context) {
	saved, err := h.store.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := models.SavedLeaguesResponse{Leagues: []models.SavedLeague{}}
	for _, s := range saved {
		resp.Leagues = append(resp.Leagues, models.SavedLeague{
			Name: s.Name, Players: s.Players, Drafted: s.Drafted, UpdatedAt: s.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Save handles POST /api/v1/leagues/:name/save. The snapshot is stored under
// :name, which may differ from the league's own name.
func (h *PersistenceHandler) Save(c *gin.Context) {
	l, ok := activeLeague(c, h.session)
	if !ok {
		return
	}
	name := strings.TrimSpace(c.Param("name"))
	snap := l.Snapshot()
	snap.Name = name
	if err := h.store.Save(c.Request.Context(), snap); err != nil {
		writeError(c, err)
		return
	}
	h.log.WithField("league", name).Info("League saved")
	c.JSON(http.StatusOK, gin.H{"saved": name})
}

// Load handles POST /api/v1/leagues/:name/load and makes it the served league.
func (h *PersistenceHandler) Load(c *gin.Context) {
	snap, err := h.store.Load(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	l, err := league.Restore(snap, league.WithLogger(h.log))
	if err != nil {
		writeError(c, err)
		return
	}
	h.session.Replace(l)
	h.log.WithField("league", l.Name()).Info("League loaded")
	c.JSON(http.StatusOK, leagueResponse(l))
}

// Delete handles DELETE /api/v1/leagues/:name
func (h *PersistenceHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("name")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
