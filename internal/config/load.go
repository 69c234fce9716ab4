package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the given file plus environment overrides and
// normalizes it. Warnings describe values that fell back to defaults.
func Load(path string) (Config, []string, error) {
	v := viper.New()

	filename := filepath.Base(path)
	v.AddConfigPath(filepath.Dir(path))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))

	v.BindEnv("log.level", "SCOREBOARD_LOG_LEVEL")
	v.BindEnv("log.format", "SCOREBOARD_LOG_FORMAT")
	v.BindEnv("display_duration", "SCOREBOARD_DISPLAY_DURATION")
	v.BindEnv("server.port", "SCOREBOARD_SERVER_PORT")
	v.BindEnv("telemetry.enabled", "SCOREBOARD_TELEMETRY_ENABLED")
	v.BindEnv("telemetry.otlp_endpoint", "SCOREBOARD_OTLP_ENDPOINT")
	v.BindEnv("background_service.workers", "SCOREBOARD_WORKERS")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cfg, warnings := cfg.Normalize()
	return cfg, warnings, nil
}
