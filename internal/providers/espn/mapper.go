package espn

import (
	"strconv"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/timeutil"
)

// mapScoreboard converts a scoreboard payload into domain games, keeping only
// events whose state matches the requested mode. Provider event order is
// preserved; the store relies on it for recent/upcoming truncation.
func mapScoreboard(league string, payload scoreboardResponse, mode domain.Mode) []domain.Game {
	games := make([]domain.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		game, ok := mapEvent(league, ev)
		if !ok {
			continue
		}
		gameMode, known := game.Status.State.Mode()
		if !known || gameMode != mode {
			continue
		}
		games = append(games, game)
	}
	return games
}

func mapEvent(league string, ev event) (domain.Game, bool) {
	if len(ev.Competitions) == 0 {
		return domain.Game{}, false
	}
	comp := ev.Competitions[0]

	var home, away *competitor
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return domain.Game{}, false
	}

	game := domain.Game{
		ID:       ev.ID,
		League:   league,
		HomeTeam: mapTeam(*home),
		AwayTeam: mapTeam(*away),
		Status: domain.GameStatus{
			State:        domain.GameState(comp.Status.Type.State),
			Detail:       comp.Status.Type.Detail,
			ShortDetail:  comp.Status.Type.ShortDetail,
			Description:  comp.Status.Type.Description,
			Period:       comp.Status.Period,
			DisplayClock: comp.Status.DisplayClock,
			Summary:      comp.Status.Summary,
			Session:      comp.Status.Session,
		},
		Venue: comp.Venue.FullName,
	}

	if start, err := timeutil.ParseEventTime(ev.Date); err == nil {
		game.StartTime = start
	}

	return game, true
}

func mapTeam(c competitor) domain.Team {
	t := domain.Team{
		Name:   c.Team.DisplayName,
		Abbrev: c.Team.Abbreviation,
		Score:  c.Score,
		Linescore: domain.Linescore{
			Runs:    c.Linescores.Runs,
			Wickets: c.Linescores.Wickets,
			Overs:   c.Linescores.Overs,
		},
	}
	if len(c.Records) > 0 {
		t.Record = c.Records[0].Summary
	}
	if c.CuratedRank.Current > 0 {
		t.Ranking = strconv.Itoa(c.CuratedRank.Current)
	}
	return t
}
