package config

import (
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

// Config holds runtime configuration for the scoreboard.
type Config struct {
	Leagues                []LeagueConfig   `mapstructure:"leagues"`
	DisplayDurationSeconds int              `mapstructure:"display_duration"`
	ShowRecords            bool             `mapstructure:"show_records"`
	ShowRanking            bool             `mapstructure:"show_ranking"`
	Background             BackgroundConfig `mapstructure:"background_service"`
	Log                    LogConfig        `mapstructure:"log"`
	Server                 ServerConfig     `mapstructure:"server"`
	Telemetry              TelemetryConfig  `mapstructure:"telemetry"`
}

// LeagueConfig configures one league. Slice order in the file is the
// configuration order used for rotation tie-breaks.
type LeagueConfig struct {
	Key                   string      `mapstructure:"key"`
	Name                  string      `mapstructure:"name"`
	Enabled               bool        `mapstructure:"enabled"`
	Modes                 ModesConfig `mapstructure:"display_modes"`
	FavoriteTeams         []string    `mapstructure:"favorite_teams"`
	RecentCount           int         `mapstructure:"recent_games_to_show"`
	UpcomingCount         int         `mapstructure:"upcoming_games_to_show"`
	UpdateIntervalSeconds int         `mapstructure:"update_interval_seconds"`
	LiveIntervalSeconds   int         `mapstructure:"live_interval_seconds"`
	ScoreboardURL         string      `mapstructure:"scoreboard_url"`
}

// ModesConfig enables the individual display modes for a league.
type ModesConfig struct {
	Live     bool `mapstructure:"live"`
	Recent   bool `mapstructure:"recent"`
	Upcoming bool `mapstructure:"upcoming"`
}

// BackgroundConfig tunes the fetch worker pool.
type BackgroundConfig struct {
	RequestTimeoutSeconds int `mapstructure:"request_timeout"`
	MaxRetries            int `mapstructure:"max_retries"`
	Workers               int `mapstructure:"workers"`
	InitialBackoffMS      int `mapstructure:"initial_backoff_ms"`
	MaxBackoffMS          int `mapstructure:"max_backoff_ms"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig controls the optional status HTTP server.
type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    string `mapstructure:"port"`
}

// TelemetryConfig controls metrics export.
type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Port         string `mapstructure:"port"`
	OtlpEndpoint string `mapstructure:"otlp_endpoint"`
	OtlpInsecure bool   `mapstructure:"otlp_insecure"`
}

// DisplayDuration returns the dwell time per rotation step.
func (c Config) DisplayDuration() time.Duration {
	return time.Duration(c.DisplayDurationSeconds) * time.Second
}

// EnabledLeagues returns the leagues with the enabled flag set, in
// configuration order.
func (c Config) EnabledLeagues() []LeagueConfig {
	out := make([]LeagueConfig, 0, len(c.Leagues))
	for _, l := range c.Leagues {
		if l.Enabled {
			out = append(out, l)
		}
	}
	return out
}

// ModeEnabled reports whether the league shows the given mode.
func (l LeagueConfig) ModeEnabled(m domain.Mode) bool {
	switch m {
	case domain.ModeLive:
		return l.Modes.Live
	case domain.ModeRecent:
		return l.Modes.Recent
	case domain.ModeUpcoming:
		return l.Modes.Upcoming
	}
	return false
}

// Interval returns the fetch interval for the given mode. Live games poll on
// the shorter live interval.
func (l LeagueConfig) Interval(m domain.Mode) time.Duration {
	if m == domain.ModeLive {
		return time.Duration(l.LiveIntervalSeconds) * time.Second
	}
	return time.Duration(l.UpdateIntervalSeconds) * time.Second
}

// Count returns how many games the league retains for the given mode.
// Live games are never truncated.
func (l LeagueConfig) Count(m domain.Mode) int {
	switch m {
	case domain.ModeRecent:
		return l.RecentCount
	case domain.ModeUpcoming:
		return l.UpcomingCount
	}
	return 0
}

// RequestTimeout returns the per-fetch timeout.
func (b BackgroundConfig) RequestTimeout() time.Duration {
	return time.Duration(b.RequestTimeoutSeconds) * time.Second
}

// InitialBackoff returns the first retry delay.
func (b BackgroundConfig) InitialBackoff() time.Duration {
	return time.Duration(b.InitialBackoffMS) * time.Millisecond
}

// MaxBackoff returns the retry delay ceiling.
func (b BackgroundConfig) MaxBackoff() time.Duration {
	return time.Duration(b.MaxBackoffMS) * time.Millisecond
}
