package injury

import (
	"fmt"
	"time"

	"draft-value/internal/model"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const DefaultTrials = 10000

// Stats are per-position injury calibration constants.
// Likelihood is the chance a healthy player gets hurt in a given week;
// DurationMean is the mean games missed, drawn from a Poisson distribution.
type Stats struct {
	Likelihood   float64
	DurationMean float64
}

// DefaultStats are the calibration constants for each valued position.
var DefaultStats = map[model.Position]Stats{
	model.PositionRB: {Likelihood: 0.051, DurationMean: 3.9},
	model.PositionWR: {Likelihood: 0.045, DurationMean: 3.2},
	model.PositionQB: {Likelihood: 0.025, DurationMean: 3.1},
	model.PositionTE: {Likelihood: 0.049, DurationMean: 2.6},
}

// Table maps position to the probability of being injured in each week
// (index 0 is week 1).
type Table map[model.Position][]float64

// Rate returns the injury probability for a 1-based week, 0 when unknown.
func (t Table) Rate(p model.Position, week int) float64 {
	weeks, ok := t[p]
	if !ok || week < 1 || week > len(weeks) {
		return 0
	}
	return weeks[week-1]
}

// Simulator estimates weekly injury probabilities by simulating whole seasons.
// It is not safe for concurrent use; the random source is shared between draws.
type Simulator struct {
	Weeks  int
	Trials int

	src    rand.Source
	rng    *rand.Rand
	logger *logrus.Logger
}

// NewSimulator builds a simulator. A zero seed draws one from the clock.
func NewSimulator(trials int, seed uint64, logger *logrus.Logger) *Simulator {
	if trials <= 0 {
		trials = DefaultTrials
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(seed)
	return &Simulator{
		Weeks:  model.SeasonWeeks,
		Trials: trials,
		src:    src,
		rng:    rand.New(src),
		logger: logger,
	}
}

// Simulate returns, for each week, the fraction of simulated seasons in which
// the player was injured that week.
func (s *Simulator) Simulate(likelihood, durationMean float64) ([]float64, error) {
	if likelihood < 0 || likelihood > 1 {
		return nil, fmt.Errorf("likelihood must be in [0, 1], got %v", likelihood)
	}
	if durationMean <= 0 {
		return nil, fmt.Errorf("duration mean must be > 0, got %v", durationMean)
	}

	duration := distuv.Poisson{Lambda: durationMean, Src: s.src}
	counts := make([]int, s.Weeks)
	injured := make([]bool, s.Weeks)

	for trial := 0; trial < s.Trials; trial++ {
		for i := range injured {
			injured[i] = false
		}
		for week := 0; week < s.Weeks; week++ {
			if injured[week] {
				continue
			}
			if s.rng.Float64() > likelihood {
				continue
			}
			length := int(duration.Rand())
			if length <= 0 {
				continue
			}
			last := week + length
			if last > s.Weeks {
				last = s.Weeks
			}
			for w := week; w < last; w++ {
				injured[w] = true
			}
		}
		for week, hurt := range injured {
			if hurt {
				counts[week]++
			}
		}
	}

	out := make([]float64, s.Weeks)
	for week, n := range counts {
		out[week] = float64(n) / float64(s.Trials)
	}
	return out, nil
}

// SimulateAll runs Simulate once per position.
func (s *Simulator) SimulateAll(stats map[model.Position]Stats) (Table, error) {
	table := make(Table, len(stats))
	for _, pos := range model.ValuedPositions {
		st, ok := stats[pos]
		if !ok {
			continue
		}
		weeks, err := s.Simulate(st.Likelihood, st.DurationMean)
		if err != nil {
			return nil, fmt.Errorf("simulate %s: %w", pos, err)
		}
		table[pos] = weeks
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"position": pos,
				"trials":   s.Trials,
				"week1":    weeks[0],
				"peak":     maxOf(weeks),
			}).Debug("Injury simulation complete")
		}
	}
	return table, nil
}

// WeightedRate averages the weekly rate across positions, weighted by weights.
// It returns 0 when the weights sum to 0.
func (t Table) WeightedRate(weights map[model.Position]int, week int) float64 {
	total := 0
	sum := 0.0
	for _, p := range model.ValuedPositions {
		w := weights[p]
		if w <= 0 {
			continue
		}
		total += w
		sum += float64(w) * t.Rate(p, week)
	}
	if total == 0 {
		return 0
	}
	return sum / float64(total)
}

func maxOf(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}
