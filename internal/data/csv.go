package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"draft-value/internal/model"
)

// ParseProjectionsCSV reads a CSV feed whose header row names the keys.
func ParseProjectionsCSV(r io.Reader) ([]model.Projection, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var out []model.Projection
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		fields := make(map[string]any, len(header))
		for i, k := range header {
			if i < len(rec) {
				fields[k] = rec[i]
			}
		}
		p, err := parseRecord(row, fields)
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

func LoadProjectionsCSV(path string) ([]model.Projection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read projections file: %w", err)
	}
	defer f.Close()
	return ParseProjectionsCSV(f)
}
