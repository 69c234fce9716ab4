package espn

import (
	"testing"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

func liveEvent(id string) event {
	return event{
		ID:   id,
		Date: "2026-01-04T23:30Z",
		Competitions: []competition{{
			Competitors: []competitor{
				{HomeAway: "home", Team: team{DisplayName: "Australia", Abbreviation: "AUS"}},
				{HomeAway: "away", Team: team{DisplayName: "England", Abbreviation: "ENG"}},
			},
			Status: status{Type: statusType{State: "in"}},
		}},
	}
}

func TestMapScoreboardPreservesEventOrder(t *testing.T) {
	payload := scoreboardResponse{Events: []event{liveEvent("1"), liveEvent("2"), liveEvent("3")}}

	games := mapScoreboard("bbl.2526", payload, domain.ModeLive)
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	for i, want := range []string{"1", "2", "3"} {
		if games[i].ID != want {
			t.Fatalf("order broken at %d: got %q", i, games[i].ID)
		}
	}
	if games[0].League != "bbl.2526" {
		t.Fatalf("league not stamped: %+v", games[0])
	}
}

func TestMapEventSkipsIncompleteCompetitions(t *testing.T) {
	noComps := event{ID: "x"}
	if _, ok := mapEvent("bbl.2526", noComps); ok {
		t.Fatal("expected skip for event without competitions")
	}

	oneSide := liveEvent("y")
	oneSide.Competitions[0].Competitors = oneSide.Competitions[0].Competitors[:1]
	if _, ok := mapEvent("bbl.2526", oneSide); ok {
		t.Fatal("expected skip for event with a single competitor")
	}
}

func TestMapScoreboardDropsUnknownStates(t *testing.T) {
	ev := liveEvent("z")
	ev.Competitions[0].Status.Type.State = "postponed"
	payload := scoreboardResponse{Events: []event{ev}}

	for _, mode := range domain.Modes() {
		if games := mapScoreboard("bbl.2526", payload, mode); len(games) != 0 {
			t.Fatalf("unknown state leaked into mode %q: %+v", mode, games)
		}
	}
}

func TestMapTeamRecordAndRanking(t *testing.T) {
	c := competitor{
		Team:        team{DisplayName: "Sydney Sixers", Abbreviation: "SYD"},
		Score:       "184/6",
		Records:     []record{{Summary: "8-2"}},
		CuratedRank: rank{Current: 1},
	}

	mapped := mapTeam(c)
	if mapped.Record != "8-2" {
		t.Fatalf("record = %q", mapped.Record)
	}
	if mapped.Ranking != "1" {
		t.Fatalf("ranking = %q", mapped.Ranking)
	}
	if mapped.Score != "184/6" {
		t.Fatalf("score = %q", mapped.Score)
	}
}

func TestMapEventToleratesBadDate(t *testing.T) {
	ev := liveEvent("d")
	ev.Date = "garbage"
	game, ok := mapEvent("bbl.2526", ev)
	if !ok {
		t.Fatal("expected game")
	}
	if !game.StartTime.IsZero() {
		t.Fatalf("expected zero start time, got %v", game.StartTime)
	}
}
