package handlers

import (
	"errors"
	"net/http"

	"draft-value/internal/api/models"
	"draft-value/internal/league"
	"draft-value/internal/store"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

func badRequest(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, league.ErrNotFound), errors.Is(err, store.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, league.ErrAmbiguousMatch):
		status, code = http.StatusConflict, "AMBIGUOUS_MATCH"
	case errors.Is(err, league.ErrNotAvailable):
		status, code = http.StatusConflict, "NOT_AVAILABLE"
	case errors.Is(err, league.ErrRosterFull):
		status, code = http.StatusConflict, "ROSTER_FULL"
	case errors.Is(err, league.ErrNotOnRoster):
		status, code = http.StatusConflict, "NOT_ON_ROSTER"
	case errors.Is(err, league.ErrInvalidConfiguration):
		status, code = http.StatusUnprocessableEntity, "INVALID_CONFIGURATION"
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	abortWithError(c, status, code, err.Error())
}

// activeLeague returns the served league, or aborts with 503 when none is loaded.
func activeLeague(c *gin.Context, s *Session) (*league.League, bool) {
	l := s.League()
	if l == nil {
		abortWithError(c, http.StatusServiceUnavailable, "NO_LEAGUE", "no league is loaded")
		return nil, false
	}
	return l, true
}
