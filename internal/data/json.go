package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"draft-value/internal/model"
)

// ParseProjectionsJSON decodes a JSON array of flat projection objects.
func ParseProjectionsJSON(r io.Reader) ([]model.Projection, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to parse projections: %w", err)
	}
	out := make([]model.Projection, 0, len(rows))
	for i, row := range rows {
		p, err := parseRecord(i, row)
		if errors.Is(err, errUnsupportedPosition) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func LoadProjectionsJSON(path string) ([]model.Projection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projections file: %w", err)
	}
	defer f.Close()
	return ParseProjectionsJSON(f)
}

// SaveProjectionsJSON writes records in the flat feed shape LoadProjectionsJSON reads.
func SaveProjectionsJSON(records []model.Projection, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	rows := make([]map[string]any, 0, len(records))
	for _, r := range records {
		row := map[string]any{
			keyID:       r.ID,
			keyPlayer:   r.Player,
			keyTeam:     r.Team,
			keyPosition: string(r.Position),
			keyWeek:     r.Week,
		}
		for k, v := range r.Stats {
			row[k] = v
		}
		rows = append(rows, row)
	}
	raw, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal projections: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write projections file: %w", err)
	}
	return nil
}
