package data

import (
	"fmt"
	"path/filepath"
	"strings"

	"draft-value/internal/model"
)

// LoadProjections picks the loader from the file extension.
func LoadProjections(path string) ([]model.Projection, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadProjectionsJSON(path)
	case ".csv":
		return LoadProjectionsCSV(path)
	default:
		return nil, fmt.Errorf("unsupported projections file %q (want .json or .csv)", path)
	}
}
