package valuation

import (
	"sort"
	"strings"

	"draft-value/internal/model"
)

type cacheKey struct {
	playerID string
	week     int
}

type rankKey struct {
	week      int
	positions string
}

// Cache holds write-once-per-key memoized values. Reset is the only invalidation;
// it is called whenever scoring, roster settings or the universe change.
type Cache struct {
	points    map[cacheKey]float64
	startPcts map[cacheKey]float64
	ranks     map[rankKey]map[string]int
}

func NewCache() *Cache {
	c := &Cache{}
	c.Reset()
	return c
}

func (c *Cache) Reset() {
	c.points = map[cacheKey]float64{}
	c.startPcts = map[cacheKey]float64{}
	c.ranks = map[rankKey]map[string]int{}
}

// Len reports the number of memoized weekly point totals.
func (c *Cache) Len() int { return len(c.points) }

func positionsKey(positions []model.Position) string {
	names := make([]string, len(positions))
	for i, p := range positions {
		names[i] = string(p)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
