package espn

// scoreboardResponse covers the fields consumed from the scoreboard payload.
type scoreboardResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Competitions []competition `json:"competitions"`
}

type competition struct {
	Competitors []competitor `json:"competitors"`
	Status      status       `json:"status"`
	Venue       venue        `json:"venue"`
}

type competitor struct {
	HomeAway    string     `json:"homeAway"`
	Score       string     `json:"score"`
	Team        team       `json:"team"`
	Linescores  linescores `json:"linescores"`
	Records     []record   `json:"records"`
	CuratedRank rank       `json:"curatedRank"`
}

type team struct {
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type linescores struct {
	Runs    float64 `json:"runs"`
	Wickets float64 `json:"wickets"`
	Overs   float64 `json:"overs"`
}

type record struct {
	Summary string `json:"summary"`
}

type rank struct {
	Current int `json:"current"`
}

type status struct {
	Type         statusType `json:"type"`
	Period       int        `json:"period"`
	DisplayClock string     `json:"displayClock"`
	Summary      string     `json:"summary"`
	Session      string     `json:"session"`
}

type statusType struct {
	State       string `json:"state"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
	Description string `json:"description"`
}

type venue struct {
	FullName string `json:"fullName"`
}
