// Package config loads league definitions from YAML and server settings from
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"draft-value/internal/injury"
	"draft-value/internal/league"
	"draft-value/internal/model"
	"draft-value/internal/strategy"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	SourceDisk = "disk"
	SourceWeb  = "web"
)

// Config is the on-disk league definition (YAML).
type Config struct {
	Name        string            `yaml:"name"`
	Projections ProjectionsConfig `yaml:"projections"`
	// Scoring overrides merge into the default scoring table.
	Scoring model.ScoringSettings `yaml:"scoring"`
	// Optional: load roster settings from a separate YAML (e.g. rosters/ppr12.yaml).
	// Fields set in Roster override the file.
	RosterFile string         `yaml:"roster_file"`
	Roster     RosterConfig   `yaml:"roster"`
	TeamNames  map[int]string `yaml:"team_names"`
	Injury     InjuryConfig   `yaml:"injury"`
	Mock       MockConfig     `yaml:"mock"`

	dir string
}

type ProjectionsConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
	URL    string `yaml:"url"`
	// APIKeyEnv names the environment variable holding the feed key.
	APIKeyEnv string `yaml:"api_key_env"`
	Week      int    `yaml:"week"`
}

// RosterConfig uses pointers so an explicit 0 overrides a default.
type RosterConfig struct {
	Teams         *int             `yaml:"teams"`
	RosterSize    *int             `yaml:"roster_size"`
	Defense       *int             `yaml:"defense"`
	Kicker        *int             `yaml:"kicker"`
	QB            *int             `yaml:"qb"`
	RB            *int             `yaml:"rb"`
	WR            *int             `yaml:"wr"`
	TE            *int             `yaml:"te"`
	Flex          *int             `yaml:"flex"`
	FlexPositions []model.Position `yaml:"flex_positions"`
	AuctionBudget *float64         `yaml:"auction_budget"`
}

type InjuryConfig struct {
	Trials int    `yaml:"trials"`
	Seed   uint64 `yaml:"seed"`
}

type MockConfig struct {
	// Strategies assigns a pick strategy per team id; missing teams use Default.
	Strategies map[int]string `yaml:"strategies"`
	Default    string         `yaml:"default"`
	Rounds     int            `yaml:"rounds"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Projections.Source == "" {
		c.Projections.Source = SourceDisk
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.dir = filepath.Dir(path)
	if c.RosterFile != "" {
		loaded, err := loadRosterFile(c.resolve(c.RosterFile))
		if err != nil {
			return nil, err
		}
		c.Roster = MergeRoster(loaded, c.Roster)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	switch c.Projections.Source {
	case SourceDisk:
		if c.Projections.Path == "" {
			return errors.New("projections.path is required for disk source")
		}
	case SourceWeb:
		if c.Projections.URL == "" {
			return errors.New("projections.url is required for web source")
		}
	default:
		return fmt.Errorf("projections.source must be %q or %q, got %q", SourceDisk, SourceWeb, c.Projections.Source)
	}
	roster := c.Roster.Settings()
	if err := roster.Validate(); err != nil {
		return fmt.Errorf("roster config invalid: %w", err)
	}
	for id := range c.TeamNames {
		if id < 0 || id >= roster.Teams {
			return fmt.Errorf("team_names: team %d outside 0..%d", id, roster.Teams-1)
		}
	}
	if c.Injury.Trials < 0 {
		return errors.New("injury.trials must be >= 0")
	}
	if c.Mock.Rounds < 0 {
		return errors.New("mock.rounds must be >= 0")
	}
	if _, _, err := c.MockStrategies(); err != nil {
		return err
	}
	return nil
}

// ProjectionsPath resolves the projections path against the config file's directory,
// falling back to the path as given when that file does not exist.
func (c *Config) ProjectionsPath() string {
	return c.resolve(c.Projections.Path)
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	cand := filepath.Join(c.dir, p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}

// Options turns the config into league construction options.
func (c *Config) Options(logger *logrus.Logger) []league.Option {
	opts := []league.Option{
		league.WithScoring(c.Scoring),
		league.WithRoster(c.Roster.Settings()),
		league.WithInjuryStats(injury.DefaultStats),
		league.WithInjurySimulation(c.Injury.Trials, c.Injury.Seed),
	}
	if len(c.TeamNames) > 0 {
		opts = append(opts, league.WithTeamNames(c.TeamNames))
	}
	if logger != nil {
		opts = append(opts, league.WithLogger(logger))
	}
	return opts
}

// Settings overlays the set fields onto the default roster.
func (r RosterConfig) Settings() model.RosterSettings {
	out := model.DefaultRoster()
	setInt(&out.Teams, r.Teams)
	setInt(&out.RosterSize, r.RosterSize)
	setInt(&out.Defense, r.Defense)
	setInt(&out.Kicker, r.Kicker)
	setInt(&out.QB, r.QB)
	setInt(&out.RB, r.RB)
	setInt(&out.WR, r.WR)
	setInt(&out.TE, r.TE)
	setInt(&out.Flex, r.Flex)
	if r.FlexPositions != nil {
		out.FlexPositions = make([]model.Position, 0, len(r.FlexPositions))
		for _, p := range r.FlexPositions {
			if parsed, ok := model.ParsePosition(string(p)); ok {
				p = parsed
			}
			out.FlexPositions = append(out.FlexPositions, p)
		}
	}
	if r.AuctionBudget != nil {
		b := *r.AuctionBudget
		out.AuctionBudget = &b
	}
	return out
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

type rosterFileWrapper struct {
	Roster RosterConfig `yaml:"roster"`
}

func loadRosterFile(path string) (RosterConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RosterConfig{}, err
	}
	var w rosterFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return RosterConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Roster, nil
}

// MergeRoster overlays the fields set in override onto base.
func MergeRoster(base, override RosterConfig) RosterConfig {
	out := base
	pick := func(dst **int, v *int) {
		if v != nil {
			*dst = v
		}
	}
	pick(&out.Teams, override.Teams)
	pick(&out.RosterSize, override.RosterSize)
	pick(&out.Defense, override.Defense)
	pick(&out.Kicker, override.Kicker)
	pick(&out.QB, override.QB)
	pick(&out.RB, override.RB)
	pick(&out.WR, override.WR)
	pick(&out.TE, override.TE)
	pick(&out.Flex, override.Flex)
	if override.FlexPositions != nil {
		out.FlexPositions = override.FlexPositions
	}
	if override.AuctionBudget != nil {
		out.AuctionBudget = override.AuctionBudget
	}
	return out
}

// FromSettings is the inverse of Settings, with every field set.
func FromSettings(s model.RosterSettings) RosterConfig {
	ip := func(v int) *int { return &v }
	out := RosterConfig{
		Teams:         ip(s.Teams),
		RosterSize:    ip(s.RosterSize),
		Defense:       ip(s.Defense),
		Kicker:        ip(s.Kicker),
		QB:            ip(s.QB),
		RB:            ip(s.RB),
		WR:            ip(s.WR),
		TE:            ip(s.TE),
		Flex:          ip(s.Flex),
		FlexPositions: append([]model.Position(nil), s.FlexPositions...),
	}
	if s.AuctionBudget != nil {
		b := *s.AuctionBudget
		out.AuctionBudget = &b
	}
	return out
}

// MockStrategies parses the mock draft section into per-team strategies and the
// default for everyone else.
func (c *Config) MockStrategies() (map[int]strategy.Strategy, strategy.Strategy, error) {
	fallback, err := strategy.Parse(c.Mock.Default)
	if err != nil {
		return nil, nil, fmt.Errorf("mock.default: %w", err)
	}
	perTeam := make(map[int]strategy.Strategy, len(c.Mock.Strategies))
	for id, raw := range c.Mock.Strategies {
		s, err := strategy.Parse(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("mock.strategies[%d]: %w", id, err)
		}
		perTeam[id] = s
	}
	return perTeam, fallback, nil
}
