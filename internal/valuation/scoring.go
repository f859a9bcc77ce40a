package valuation

import "draft-value/internal/model"

// WeeklyPoints returns fantasy points for one week under the engine's scoring.
// Weeks without a projection score 0 and are memoized like any other week.
func (e *Engine) WeeklyPoints(p *model.Player, week int) float64 {
	key := cacheKey{playerID: p.ID, week: week}
	if pts, ok := e.cache.points[key]; ok {
		return pts
	}
	pts := ScoreProjection(p.ProjectionsByWeek[week], e.scoring)
	e.cache.points[key] = pts
	return pts
}

// SeasonPoints sums WeeklyPoints over the season.
func (e *Engine) SeasonPoints(p *model.Player) float64 {
	total := 0.0
	for week := 1; week <= model.SeasonWeeks; week++ {
		total += e.WeeklyPoints(p, week)
	}
	return total
}

// ScoreProjection applies scoring weights to one projection record.
// Categories are visited in sorted order so totals are bit-for-bit repeatable.
func ScoreProjection(proj model.Projection, scoring model.ScoringSettings) float64 {
	if proj.Stats == nil {
		return 0
	}
	points := 0.0
	for _, category := range scoring.Categories() {
		points += scoring[category] * proj.Stat(category)
	}
	return points
}
