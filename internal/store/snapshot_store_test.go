package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/config"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

func testLeagues() []config.LeagueConfig {
	return []config.LeagueConfig{
		{Key: "theashes.2526", RecentCount: 5, UpcomingCount: 10},
		{Key: "bbl.2526", RecentCount: 2, UpcomingCount: 3},
	}
}

func games(n int) []domain.Game {
	out := make([]domain.Game, n)
	for i := range out {
		out[i] = domain.Game{ID: fmt.Sprintf("g%d", i)}
	}
	return out
}

func TestPutReplacesWholesale(t *testing.T) {
	s := NewSnapshotStore(testLeagues())
	at := time.Date(2026, 1, 4, 10, 0, 0, 0, time.UTC)

	s.Put("theashes.2526", domain.ModeLive, games(2), at)
	s.Put("theashes.2526", domain.ModeLive, games(1), at.Add(time.Minute))

	snap, ok := s.Snapshot("theashes.2526")
	if !ok {
		t.Fatal("expected snapshot")
	}
	if len(snap.Live) != 1 {
		t.Fatalf("expected wholesale replace, got %d games", len(snap.Live))
	}
	if !snap.UpdatedAt.Equal(at.Add(time.Minute)) {
		t.Fatalf("timestamp = %v", snap.UpdatedAt)
	}
	if snap.Stale {
		t.Fatal("fresh write should clear staleness")
	}
}

func TestPutTruncatesToConfiguredCounts(t *testing.T) {
	s := NewSnapshotStore([]config.LeagueConfig{{Key: "a", RecentCount: 5, UpcomingCount: 10}})

	s.Put("a", domain.ModeRecent, games(8), time.Now())

	snap, _ := s.Snapshot("a")
	if len(snap.Recent) != 5 {
		t.Fatalf("expected 5 retained, got %d", len(snap.Recent))
	}
	// Provider ordering is trusted: the first five survive.
	for i := 0; i < 5; i++ {
		if snap.Recent[i].ID != fmt.Sprintf("g%d", i) {
			t.Fatalf("order broken at %d: %q", i, snap.Recent[i].ID)
		}
	}
}

func TestPutNeverTruncatesLive(t *testing.T) {
	s := NewSnapshotStore([]config.LeagueConfig{{Key: "a", RecentCount: 1, UpcomingCount: 1}})
	s.Put("a", domain.ModeLive, games(4), time.Now())

	snap, _ := s.Snapshot("a")
	if len(snap.Live) != 4 {
		t.Fatalf("live truncated: %d", len(snap.Live))
	}
}

func TestMarkStaleKeepsData(t *testing.T) {
	s := NewSnapshotStore(testLeagues())
	s.Put("bbl.2526", domain.ModeRecent, games(2), time.Now())

	s.MarkStale("bbl.2526")

	snap, ok := s.Snapshot("bbl.2526")
	if !ok || !snap.Stale {
		t.Fatalf("expected stale snapshot, got %+v", snap)
	}
	if len(snap.Recent) != 2 {
		t.Fatal("stale mark must not empty lists")
	}

	s.Put("bbl.2526", domain.ModeRecent, games(1), time.Now())
	snap, _ = s.Snapshot("bbl.2526")
	if snap.Stale {
		t.Fatal("successful write should clear staleness")
	}
}

func TestSnapshotIsIsolatedCopy(t *testing.T) {
	s := NewSnapshotStore(testLeagues())
	s.Put("theashes.2526", domain.ModeLive, games(1), time.Now())

	snap, _ := s.Snapshot("theashes.2526")
	snap.Live[0].ID = "mutated"

	again, _ := s.Snapshot("theashes.2526")
	if again.Live[0].ID != "g0" {
		t.Fatal("store leaked internal state to readers")
	}
}

func TestSnapshotUnknownLeague(t *testing.T) {
	s := NewSnapshotStore(testLeagues())
	if _, ok := s.Snapshot("nope"); ok {
		t.Fatal("expected miss")
	}
}

func TestSnapshotsSortedByLeague(t *testing.T) {
	s := NewSnapshotStore(testLeagues())
	s.Put("theashes.2526", domain.ModeLive, games(1), time.Now())
	s.Put("bbl.2526", domain.ModeLive, games(1), time.Now())

	snaps := s.Snapshots()
	if len(snaps) != 2 || snaps[0].League != "bbl.2526" || snaps[1].League != "theashes.2526" {
		t.Fatalf("unexpected order: %+v", snaps)
	}
}

func TestConcurrentWritersDifferentLeagues(t *testing.T) {
	s := NewSnapshotStore(testLeagues())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Put("theashes.2526", domain.ModeLive, games(3), time.Now())
		}()
		go func() {
			defer wg.Done()
			s.Put("bbl.2526", domain.ModeUpcoming, games(3), time.Now())
			_, _ = s.Snapshot("bbl.2526")
		}()
	}
	wg.Wait()

	if snap, _ := s.Snapshot("theashes.2526"); len(snap.Live) != 3 {
		t.Fatalf("unexpected final state: %+v", snap)
	}
}
