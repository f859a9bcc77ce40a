package config

import (
	"context"
	"fmt"
	"os"

	"draft-value/internal/data"
	"draft-value/internal/league"
	"draft-value/internal/model"

	"github.com/sirupsen/logrus"
)

// LoadProjections reads the configured projection source. cache may be nil.
func (c *Config) LoadProjections(ctx context.Context, cache *data.FeedCache, logger *logrus.Logger) ([]model.Projection, error) {
	switch c.Projections.Source {
	case SourceWeb:
		var apiKey string
		if c.Projections.APIKeyEnv != "" {
			apiKey = os.Getenv(c.Projections.APIKeyEnv)
		}
		client := data.NewFeedClient(c.Projections.URL, apiKey, logger)
		client.Cache = cache
		return client.Fetch(ctx, c.Projections.Week)
	case SourceDisk, "":
		return data.LoadProjections(c.ProjectionsPath())
	default:
		return nil, fmt.Errorf("unknown projections source %q", c.Projections.Source)
	}
}

// BuildLeague loads projections and constructs the configured league.
func (c *Config) BuildLeague(ctx context.Context, cache *data.FeedCache, logger *logrus.Logger) (*league.League, error) {
	records, err := c.LoadProjections(ctx, cache, logger)
	if err != nil {
		return nil, fmt.Errorf("load projections: %w", err)
	}
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"league":  c.Name,
			"source":  c.Projections.Source,
			"records": len(records),
		}).Info("Projections loaded")
	}
	return league.New(c.Name, records, c.Options(logger)...)
}
