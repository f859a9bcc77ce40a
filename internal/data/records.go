// Package data loads weekly projection records from JSON and CSV feeds, local
// files or a remote feed URL.
package data

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"draft-value/internal/model"
)

// Required feed keys. Every other numeric key becomes a stat.
const (
	keyID       = "id"
	keyPlayer   = "player"
	keyTeam     = "tm"
	keyPosition = "position"
	keyWeek     = "week"
)

var requiredKeys = []string{keyID, keyPlayer, keyTeam, keyPosition, keyWeek}

// errUnsupportedPosition marks rows for positions the league never rosters
// (fb, ol, idp). Parsers drop those rows instead of failing the feed.
var errUnsupportedPosition = errors.New("unsupported position")

// RecordError reports a feed row that could not be turned into a projection.
type RecordError struct {
	Row    int
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Row, e.Reason)
}

// parseRecord converts one flat feed row into a projection. Keys are lowercased
// and trimmed; values may be strings or numbers.
func parseRecord(row int, raw map[string]any) (model.Projection, error) {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[strings.ToLower(strings.TrimSpace(k))] = v
	}
	for _, k := range requiredKeys {
		if _, ok := fields[k]; !ok {
			return model.Projection{}, &RecordError{Row: row, Reason: fmt.Sprintf("missing %q", k)}
		}
	}

	rawPos := asString(fields[keyPosition])
	if rawPos == "" {
		return model.Projection{}, &RecordError{Row: row, Reason: "empty position"}
	}
	pos, ok := model.ParsePosition(rawPos)
	if !ok {
		return model.Projection{}, fmt.Errorf("record %d: %w %q", row, errUnsupportedPosition, rawPos)
	}
	week, ok := asNumber(fields[keyWeek])
	if !ok || week < 1 || week != float64(int(week)) {
		return model.Projection{}, &RecordError{Row: row, Reason: fmt.Sprintf("invalid week %v", fields[keyWeek])}
	}
	id := asString(fields[keyID])
	if id == "" {
		return model.Projection{}, &RecordError{Row: row, Reason: "empty id"}
	}

	p := model.Projection{
		ID:       id,
		Player:   asString(fields[keyPlayer]),
		Team:     asString(fields[keyTeam]),
		Position: pos,
		Week:     int(week),
		Stats:    map[string]float64{},
	}
	for k, v := range fields {
		if isRequired(k) {
			continue
		}
		if n, ok := asNumber(v); ok {
			p.Stats[k] = n
		}
	}
	return p, nil
}

func isRequired(key string) bool {
	for _, k := range requiredKeys {
		if k == key {
			return true
		}
	}
	return false
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// GroupByPlayer splits records into id-keyed slices, preserving feed order.
func GroupByPlayer(records []model.Projection) map[string][]model.Projection {
	out := map[string][]model.Projection{}
	for _, r := range records {
		out[r.ID] = append(out[r.ID], r)
	}
	return out
}
