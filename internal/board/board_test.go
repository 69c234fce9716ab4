package board

import (
	"context"
	"testing"
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/config"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/providers"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/teststubs"
)

func boardConfig(keys ...string) config.Config {
	cfg := config.Config{
		DisplayDurationSeconds: 15,
		Background: config.BackgroundConfig{
			Workers:               2,
			MaxRetries:            3,
			RequestTimeoutSeconds: 1,
			InitialBackoffMS:      1,
			MaxBackoffMS:          2,
		},
	}
	for _, key := range keys {
		cfg.Leagues = append(cfg.Leagues, config.LeagueConfig{
			Key:                   key,
			Name:                  key,
			Enabled:               true,
			Modes:                 config.ModesConfig{Live: true},
			RecentCount:           5,
			UpcomingCount:         10,
			UpdateIntervalSeconds: 60,
			LiveIntervalSeconds:   30,
		})
	}
	return cfg
}

func liveGame(id string) domain.Game {
	return domain.Game{ID: id, Status: domain.GameStatus{State: domain.StateLive}}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestScoreboardFetchesAndDisplays(t *testing.T) {
	provider := &teststubs.StubProvider{
		Games: map[string][]domain.Game{
			"bbl.2526": {liveGame("g1")},
		},
	}

	b := New(boardConfig("bbl.2526"), provider, nil, nil)
	b.Start(context.Background())
	defer b.Stop(context.Background())

	start := time.Unix(1000, 0)
	b.Tick(start)

	waitFor(t, 2*time.Second, func() bool {
		snaps := b.Snapshots()
		return len(snaps) == 1 && len(snaps[0].Live) == 1
	})

	b.Tick(start.Add(time.Second))
	state, ok := b.DisplayState()
	if !ok {
		t.Fatal("expected display state")
	}
	if state.Game.ID != "g1" || state.Mode != domain.ModeLive {
		t.Fatalf("unexpected state: %+v", state)
	}
	if !b.Ready() {
		t.Fatal("expected ready after successful fetch")
	}
}

func TestScoreboardFailureMarksStaleKeepsPreviousData(t *testing.T) {
	failing := false
	provider := &teststubs.StubProvider{
		FetchFn: func(ctx context.Context, league string, mode domain.Mode) ([]domain.Game, error) {
			if failing {
				return nil, &providers.FetchError{League: league, Kind: providers.KindTimeout}
			}
			return []domain.Game{liveGame("keep")}, nil
		},
	}

	b := New(boardConfig("theashes.2526"), provider, nil, nil)
	b.Start(context.Background())
	defer b.Stop(context.Background())

	start := time.Unix(1000, 0)
	b.Tick(start)
	waitFor(t, 2*time.Second, func() bool {
		snaps := b.Snapshots()
		return len(snaps) == 1 && len(snaps[0].Live) == 1
	})

	// Next cycle: the endpoint times out three times and the job is dropped.
	failing = true
	b.Tick(start.Add(time.Minute))
	waitFor(t, 2*time.Second, func() bool {
		snaps := b.Snapshots()
		return len(snaps) == 1 && snaps[0].Stale
	})

	snaps := b.Snapshots()
	if len(snaps[0].Live) != 1 || snaps[0].Live[0].ID != "keep" {
		t.Fatalf("previous snapshot lost: %+v", snaps[0])
	}

	// Display still serves the stale data; rotation never blocks on fetches.
	b.Tick(start.Add(time.Minute + time.Second))
	if _, ok := b.DisplayState(); !ok {
		t.Fatal("expected stale data to remain displayable")
	}
}

func TestScoreboardErrorInOneLeagueDoesNotAffectOthers(t *testing.T) {
	provider := &teststubs.StubProvider{
		FetchFn: func(ctx context.Context, league string, mode domain.Mode) ([]domain.Game, error) {
			if league == "broken" {
				return nil, &providers.FetchError{League: league, Kind: providers.KindBadResponse, StatusCode: 500}
			}
			return []domain.Game{liveGame("ok-" + league)}, nil
		},
	}

	b := New(boardConfig("broken", "healthy"), provider, nil, nil)
	b.Start(context.Background())
	defer b.Stop(context.Background())

	b.Tick(time.Unix(1000, 0))

	waitFor(t, 2*time.Second, func() bool {
		for _, snap := range b.Snapshots() {
			if snap.League == "healthy" && len(snap.Live) == 1 {
				return true
			}
		}
		return false
	})

	for _, snap := range b.Snapshots() {
		switch snap.League {
		case "healthy":
			if snap.Stale {
				t.Fatal("healthy league flagged stale")
			}
		}
	}
}

func TestScoreboardStatus(t *testing.T) {
	provider := &teststubs.StubProvider{
		Games: map[string][]domain.Game{"bbl.2526": {liveGame("g1")}},
	}
	b := New(boardConfig("bbl.2526"), provider, nil, nil)
	b.Start(context.Background())
	defer b.Stop(context.Background())

	b.Tick(time.Unix(1000, 0))
	waitFor(t, 2*time.Second, func() bool { return b.Ready() })
	b.Tick(time.Unix(1001, 0))

	st := b.Status()
	if len(st.EnabledLeagues) != 1 || st.EnabledLeagues[0] != "bbl.2526" {
		t.Fatalf("enabled leagues: %+v", st.EnabledLeagues)
	}
	if st.Current == nil || st.Current.Game.ID != "g1" {
		t.Fatalf("current: %+v", st.Current)
	}
	if st.RotationSize != 1 {
		t.Fatalf("rotation size: %d", st.RotationSize)
	}
}

func TestScoreboardStartStopIdempotent(t *testing.T) {
	b := New(boardConfig("bbl.2526"), &teststubs.StubProvider{}, nil, nil)
	b.Start(context.Background())
	b.Start(context.Background())
	if err := b.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := b.Stop(context.Background()); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestScoreboardStopBeforeStart(t *testing.T) {
	b := New(boardConfig("bbl.2526"), &teststubs.StubProvider{}, nil, nil)
	if err := b.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
