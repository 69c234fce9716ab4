package domain

import "time"

// Mode identifies which slice of a league's schedule a game belongs to.
type Mode string

const (
	ModeLive     Mode = "live"
	ModeRecent   Mode = "recent"
	ModeUpcoming Mode = "upcoming"
)

// Modes lists all modes in display-tier order: live games outrank recent
// results, which outrank upcoming fixtures.
func Modes() []Mode {
	return []Mode{ModeLive, ModeRecent, ModeUpcoming}
}

// GameState mirrors the upstream scoreboard lifecycle states.
type GameState string

const (
	StateUpcoming GameState = "pre"
	StateLive     GameState = "in"
	StateFinal    GameState = "post"
)

// Mode maps a game state to the display mode that shows it.
func (s GameState) Mode() (Mode, bool) {
	switch s {
	case StateLive:
		return ModeLive, true
	case StateFinal:
		return ModeRecent, true
	case StateUpcoming:
		return ModeUpcoming, true
	}
	return "", false
}

// Linescore carries the cricket scoring detail for one side.
type Linescore struct {
	Runs    float64 `json:"runs"`
	Wickets float64 `json:"wickets"`
	Overs   float64 `json:"overs"`
}

// Team is one side of a game as shown on the board.
type Team struct {
	Name      string    `json:"name"`
	Abbrev    string    `json:"abbrev"`
	Score     string    `json:"score"`
	Record    string    `json:"record,omitempty"`
	Ranking   string    `json:"ranking,omitempty"`
	Linescore Linescore `json:"linescore"`
}

// GameStatus captures the clock/period detail for a game.
type GameStatus struct {
	State        GameState `json:"state"`
	Detail       string    `json:"detail"`
	ShortDetail  string    `json:"shortDetail"`
	Description  string    `json:"description"`
	Period       int       `json:"period"`
	DisplayClock string    `json:"displayClock"`
	Summary      string    `json:"summary"`
	Session      string    `json:"session"`
}

// Game is the canonical game shape consumed by renderers.
type Game struct {
	ID        string     `json:"id"`
	League    string     `json:"league"`
	HomeTeam  Team       `json:"homeTeam"`
	AwayTeam  Team       `json:"awayTeam"`
	Status    GameStatus `json:"status"`
	StartTime time.Time  `json:"startTime"`
	Venue     string     `json:"venue,omitempty"`
}

// Involves reports whether either side matches one of the given team names.
func (g Game) Involves(names []string) bool {
	for _, name := range names {
		if name == g.HomeTeam.Name || name == g.AwayTeam.Name {
			return true
		}
	}
	return false
}

// Snapshot is the latest consistent view of one league's games.
// A Snapshot returned by the store is a copy; callers may keep it without
// observing later writes.
type Snapshot struct {
	League    string    `json:"league"`
	Live      []Game    `json:"live"`
	Recent    []Game    `json:"recent"`
	Upcoming  []Game    `json:"upcoming"`
	UpdatedAt time.Time `json:"updatedAt"`
	Stale     bool      `json:"stale"`
}

// Games returns the list for the given mode.
func (s Snapshot) Games(mode Mode) []Game {
	switch mode {
	case ModeLive:
		return s.Live
	case ModeRecent:
		return s.Recent
	case ModeUpcoming:
		return s.Upcoming
	}
	return nil
}

// DisplayState is what the rendering collaborator draws for one frame.
type DisplayState struct {
	League      string `json:"league"`
	LeagueName  string `json:"leagueName"`
	Mode        Mode   `json:"mode"`
	Game        Game   `json:"game"`
	ShowRecords bool   `json:"showRecords"`
	ShowRanking bool   `json:"showRanking"`
}
