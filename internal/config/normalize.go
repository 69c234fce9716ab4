package config

import "fmt"

// Normalize clamps out-of-range values to documented defaults and drops
// unusable league entries. It returns the normalized config together with
// warnings for the caller to log once at startup.
func (c Config) Normalize() (Config, []string) {
	var warnings []string

	if c.DisplayDurationSeconds == 0 {
		c.DisplayDurationSeconds = DefaultDisplayDurationSeconds
	} else if c.DisplayDurationSeconds < MinDisplayDurationSeconds || c.DisplayDurationSeconds > MaxDisplayDurationSeconds {
		warnings = append(warnings, fmt.Sprintf("display_duration %d outside %d-%d, using %d",
			c.DisplayDurationSeconds, MinDisplayDurationSeconds, MaxDisplayDurationSeconds, DefaultDisplayDurationSeconds))
		c.DisplayDurationSeconds = DefaultDisplayDurationSeconds
	}

	leagues := make([]LeagueConfig, 0, len(c.Leagues))
	for i, l := range c.Leagues {
		if l.Key == "" {
			warnings = append(warnings, fmt.Sprintf("league entry %d has no key, dropped", i))
			continue
		}
		if l.Name == "" {
			l.Name = l.Key
		}
		if l.RecentCount <= 0 {
			l.RecentCount = DefaultRecentCount
		}
		if l.UpcomingCount <= 0 {
			l.UpcomingCount = DefaultUpcomingCount
		}
		if l.UpdateIntervalSeconds <= 0 {
			l.UpdateIntervalSeconds = DefaultUpdateIntervalSeconds
		}
		if l.LiveIntervalSeconds <= 0 {
			l.LiveIntervalSeconds = DefaultLiveIntervalSeconds
		}
		if l.Enabled && !l.Modes.Live && !l.Modes.Recent && !l.Modes.Upcoming {
			warnings = append(warnings, fmt.Sprintf("league %s enabled with no display modes", l.Key))
		}
		leagues = append(leagues, l)
	}
	c.Leagues = leagues

	if c.Background.RequestTimeoutSeconds <= 0 {
		c.Background.RequestTimeoutSeconds = DefaultRequestTimeoutSeconds
	}
	if c.Background.MaxRetries <= 0 {
		c.Background.MaxRetries = DefaultMaxRetries
	}
	if c.Background.Workers <= 0 {
		c.Background.Workers = DefaultWorkers
	}
	if c.Background.InitialBackoffMS <= 0 {
		c.Background.InitialBackoffMS = DefaultInitialBackoffMS
	}
	if c.Background.MaxBackoffMS < c.Background.InitialBackoffMS {
		c.Background.MaxBackoffMS = DefaultMaxBackoffMS
	}

	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.Telemetry.Port == "" {
		c.Telemetry.Port = DefaultTelemetryPort
	}

	return c, warnings
}
