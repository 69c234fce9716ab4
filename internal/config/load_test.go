package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
display_duration: 20
show_records: true

background_service:
  request_timeout: 10
  max_retries: 2
  workers: 3

leagues:
  - key: theashes.2526
    name: The Ashes 2025/26
    enabled: true
    display_modes:
      live: true
      recent: true
    favorite_teams:
      - Australia
    recent_games_to_show: 3
    update_interval_seconds: 45
  - key: bbl.2526
    enabled: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadParsesFile(t *testing.T) {
	cfg, warnings, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if cfg.DisplayDurationSeconds != 20 || !cfg.ShowRecords || cfg.ShowRanking {
		t.Fatalf("globals wrong: %+v", cfg)
	}
	if cfg.Background.Workers != 3 || cfg.Background.MaxRetries != 2 {
		t.Fatalf("background wrong: %+v", cfg.Background)
	}

	if len(cfg.Leagues) != 2 {
		t.Fatalf("leagues = %+v", cfg.Leagues)
	}
	ashes := cfg.Leagues[0]
	if ashes.Key != "theashes.2526" || !ashes.Enabled || !ashes.Modes.Live || ashes.Modes.Upcoming {
		t.Fatalf("ashes wrong: %+v", ashes)
	}
	if ashes.RecentCount != 3 || ashes.UpcomingCount != DefaultUpcomingCount {
		t.Fatalf("counts wrong: %+v", ashes)
	}
	if len(ashes.FavoriteTeams) != 1 || ashes.FavoriteTeams[0] != "Australia" {
		t.Fatalf("favorites wrong: %+v", ashes.FavoriteTeams)
	}
	if cfg.Leagues[1].Enabled {
		t.Fatal("bbl should stay disabled")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SCOREBOARD_LOG_LEVEL", "debug")

	cfg, _, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error")
	}
}
