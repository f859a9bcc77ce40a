package model

// Projection is one week of projected raw stats for one player, as delivered by
// a projection feed.
//
// Example feed row:
//
//	{"id": "1234", "player": "Saquon Barkley", "tm": "PHI", "position": "rb", "week": 3,
//	 "rush yds": 88.5, "rush tds": 0.7, "rec": 3.1, "rec yds": 22.0}
type Projection struct {
	ID       string             `json:"id"`
	Player   string             `json:"player"`
	Team     string             `json:"tm"`
	Position Position           `json:"position"`
	Week     int                `json:"week"`
	Stats    map[string]float64 `json:"stats"`
}

// Stat returns the projected value for a lowercased category, 0 if absent.
func (p Projection) Stat(category string) float64 {
	if p.Stats == nil {
		return 0
	}
	return p.Stats[category]
}
