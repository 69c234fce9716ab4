package espn

import "time"

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "ledmatrix-cricket-scoreboard/1.0"
)

// ScoreboardURLs maps league keys to their scoreboard endpoints.
var ScoreboardURLs = map[string]string{
	"theashes.2526":        "https://site.api.espn.com/apis/site/v2/sports/cricket/1455609/scoreboard",
	"sheffieldshield.2526": "https://site.api.espn.com/apis/site/v2/sports/cricket/1495274/scoreboard",
	"wbbl.2526":            "https://site.api.espn.com/apis/site/v2/sports/cricket/1490537/scoreboard",
	"bbl.2526":             "https://site.api.espn.com/apis/site/v2/sports/cricket/1490534/scoreboard",
}

// LeagueNames maps league keys to human-readable display names.
var LeagueNames = map[string]string{
	"theashes.2526":        "The Ashes 2025/26",
	"sheffieldshield.2526": "Sheffield Shield 2025/26",
	"wbbl.2526":            "WBBL 2025/26",
	"bbl.2526":             "BBL 2025/26",
}
