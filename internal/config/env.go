package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Env is the server's process configuration, read from the environment and an
// optional .env file.
type Env struct {
	Port         string        `mapstructure:"PORT"`
	Env          string        `mapstructure:"ENV"`
	LeagueConfig string        `mapstructure:"LEAGUE_CONFIG"`
	DatabasePath string        `mapstructure:"DATABASE_PATH"`
	CorsOrigins  []string      `mapstructure:"CORS_ORIGINS"`
	LogLevel     string        `mapstructure:"LOG_LEVEL"`
	FeedCacheTTL time.Duration `mapstructure:"FEED_CACHE_TTL"`
}

func LoadEnv() (*Env, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LEAGUE_CONFIG", "league.yaml")
	v.SetDefault("DATABASE_PATH", "leagues.db")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("FEED_CACHE_TTL", "1h")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	env.CorsOrigins = nil
	for _, o := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CorsOrigins = append(env.CorsOrigins, o)
		}
	}
	return &env, nil
}

func (e *Env) IsDevelopment() bool { return e.Env == "development" }

func (e *Env) IsProduction() bool { return e.Env == "production" }
