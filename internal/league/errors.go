package league

import (
	"errors"

	"draft-value/internal/valuation"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrAmbiguousMatch = errors.New("ambiguous match")
	ErrNotAvailable   = errors.New("player not available")
	ErrRosterFull     = errors.New("roster is full")
	ErrNotOnRoster    = errors.New("player not on roster")

	// ErrInvalidConfiguration aborts league construction: roster settings that
	// cannot partition the player pool leave no replacement baseline.
	ErrInvalidConfiguration = valuation.ErrInvalidConfiguration
)
