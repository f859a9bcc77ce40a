package handlers

import (
	"sync"

	"draft-value/internal/league"
)

// Session holds the league the API is serving. Loading a saved league swaps it.
type Session struct {
	mu     sync.RWMutex
	league *league.League
}

func NewSession(l *league.League) *Session {
	return &Session{league: l}
}

func (s *Session) League() *league.League {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.league
}

func (s *Session) Replace(l *league.League) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.league = l
}
