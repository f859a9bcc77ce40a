package league

import (
	"draft-value/internal/injury"
	"draft-value/internal/model"

	"github.com/sirupsen/logrus"
)

// Options are fixed at construction. Scoring overrides merge into the defaults;
// a nil Roster means the default roster settings.
type Options struct {
	Scoring      model.ScoringSettings
	Roster       *model.RosterSettings
	TeamNames    map[int]string
	InjuryStats  map[model.Position]injury.Stats
	InjuryTrials int
	InjurySeed   uint64
	Logger       *logrus.Logger
}

type Option func(*Options)

func WithScoring(overrides model.ScoringSettings) Option {
	return func(o *Options) { o.Scoring = overrides }
}

func WithRoster(r model.RosterSettings) Option {
	return func(o *Options) {
		c := r.Clone()
		o.Roster = &c
	}
}

func WithTeamNames(names map[int]string) Option {
	return func(o *Options) { o.TeamNames = names }
}

func WithInjuryStats(stats map[model.Position]injury.Stats) Option {
	return func(o *Options) { o.InjuryStats = stats }
}

// WithInjurySimulation sets the Monte Carlo trial count and seed. A zero seed is
// drawn from the clock.
func WithInjurySimulation(trials int, seed uint64) Option {
	return func(o *Options) {
		o.InjuryTrials = trials
		o.InjurySeed = seed
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
