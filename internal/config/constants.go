package config

// Documented defaults. Out-of-range values fall back to these at load time
// rather than halting startup.
const (
	DefaultDisplayDurationSeconds = 15
	MinDisplayDurationSeconds     = 5
	MaxDisplayDurationSeconds     = 60

	DefaultUpdateIntervalSeconds = 60
	DefaultLiveIntervalSeconds   = 30

	DefaultRecentCount   = 5
	DefaultUpcomingCount = 10

	DefaultRequestTimeoutSeconds = 30
	DefaultMaxRetries            = 3
	DefaultWorkers               = 2
	DefaultInitialBackoffMS      = 500
	DefaultMaxBackoffMS          = 5000

	DefaultServerPort    = "8080"
	DefaultTelemetryPort = "9090"
)
