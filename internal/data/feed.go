package data

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"draft-value/internal/model"

	"github.com/sirupsen/logrus"
)

// FeedClient fetches a projection feed served as a JSON array over HTTP.
type FeedClient struct {
	URL    string
	APIKey string
	Client *http.Client
	Cache  *FeedCache
	Logger *logrus.Logger
}

func NewFeedClient(url, apiKey string, logger *logrus.Logger) *FeedClient {
	return &FeedClient{
		URL:    url,
		APIKey: apiKey,
		Client: &http.Client{Timeout: 30 * time.Second},
		Logger: logger,
	}
}

// FeedError is a non-200 answer from the feed.
type FeedError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string
}

func (e *FeedError) Error() string { return e.Message }

// Fetch downloads and parses the feed. Week filters the request when > 0.
func (c *FeedClient) Fetch(ctx context.Context, week int) ([]model.Projection, error) {
	if c.URL == "" {
		return nil, &FeedError{Code: "MISSING_URL", Message: "projection feed url is required"}
	}
	key := CacheKey(c.URL, week)
	if cached, ok := c.Cache.Get(key); ok {
		c.log().WithFields(logrus.Fields{"url": c.URL, "records": len(cached)}).Debug("Projection feed cache hit")
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if week > 0 {
		q := req.URL.Query()
		q.Set("week", fmt.Sprint(week))
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	start := time.Now()
	resp, err := c.Client.Do(req)
	entry := c.log().WithFields(logrus.Fields{"url": req.URL.String(), "duration": time.Since(start)})
	if err != nil {
		entry.WithError(err).Warn("Projection feed request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &FeedError{StatusCode: resp.StatusCode, Code: "UNAUTHORIZED", Message: "projection feed rejected the api key"}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, &FeedError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("rate limit exceeded, retry after %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		return nil, &FeedError{
			StatusCode: resp.StatusCode,
			Code:       "FEED_ERROR",
			Message:    fmt.Sprintf("projection feed returned %s", resp.Status),
		}
	}

	records, err := ParseProjectionsJSON(resp.Body)
	if err != nil {
		return nil, err
	}
	entry.WithField("records", len(records)).Info("Projection feed fetched")
	c.Cache.Set(key, records)
	return records, nil
}

func (c *FeedClient) log() *logrus.Logger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}
