package store

import (
	"sort"
	"sync"
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/config"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

type leagueEntry struct {
	mu   sync.RWMutex
	snap domain.Snapshot
}

// SnapshotStore keeps the latest per-league game snapshots in memory.
// Writes replace one mode's list atomically; reads return copies, so a reader
// never observes a mix of old and new lists. Writers for different leagues
// lock independent entries and do not contend beyond the brief map lookup.
type SnapshotStore struct {
	mu      sync.RWMutex
	entries map[string]*leagueEntry
	limits  map[string]config.LeagueConfig
}

// NewSnapshotStore constructs a store that truncates recent/upcoming lists to
// each league's configured counts.
func NewSnapshotStore(leagues []config.LeagueConfig) *SnapshotStore {
	limits := make(map[string]config.LeagueConfig, len(leagues))
	for _, l := range leagues {
		limits[l.Key] = l
	}
	return &SnapshotStore{
		entries: make(map[string]*leagueEntry, len(leagues)),
		limits:  limits,
	}
}

// Put atomically replaces the mode's list within the league snapshot, stamps
// the update time, and clears staleness. No merging with prior data happens.
func (s *SnapshotStore) Put(league string, mode domain.Mode, games []domain.Game, at time.Time) {
	entry := s.entry(league)

	games = s.truncate(league, mode, games)
	copied := make([]domain.Game, len(games))
	copy(copied, games)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.snap.League = league
	switch mode {
	case domain.ModeLive:
		entry.snap.Live = copied
	case domain.ModeRecent:
		entry.snap.Recent = copied
	case domain.ModeUpcoming:
		entry.snap.Upcoming = copied
	default:
		return
	}
	entry.snap.UpdatedAt = at
	entry.snap.Stale = false
}

// MarkStale flags the league's snapshot as stale. Existing lists are kept;
// stale data is preferred over no data.
func (s *SnapshotStore) MarkStale(league string) {
	entry := s.entry(league)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.snap.League = league
	entry.snap.Stale = true
}

// Snapshot returns a consistent copy of the league's snapshot.
func (s *SnapshotStore) Snapshot(league string) (domain.Snapshot, bool) {
	s.mu.RLock()
	entry, ok := s.entries[league]
	s.mu.RUnlock()
	if !ok {
		return domain.Snapshot{}, false
	}

	entry.mu.RLock()
	defer entry.mu.RUnlock()
	return copySnapshot(entry.snap), true
}

// Snapshots returns copies of every league snapshot, sorted by league key.
func (s *SnapshotStore) Snapshots() []domain.Snapshot {
	s.mu.RLock()
	entries := make([]*leagueEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	s.mu.RUnlock()

	out := make([]domain.Snapshot, 0, len(entries))
	for _, entry := range entries {
		entry.mu.RLock()
		out = append(out, copySnapshot(entry.snap))
		entry.mu.RUnlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].League < out[j].League })
	return out
}

func (s *SnapshotStore) entry(league string) *leagueEntry {
	s.mu.RLock()
	entry, ok := s.entries[league]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok = s.entries[league]; ok {
		return entry
	}
	entry = &leagueEntry{}
	s.entries[league] = entry
	return entry
}

// truncate keeps the first N games per the provider's ordering.
func (s *SnapshotStore) truncate(league string, mode domain.Mode, games []domain.Game) []domain.Game {
	cfg, ok := s.limits[league]
	if !ok {
		return games
	}
	limit := cfg.Count(mode)
	if limit > 0 && len(games) > limit {
		return games[:limit]
	}
	return games
}

func copySnapshot(snap domain.Snapshot) domain.Snapshot {
	out := snap
	out.Live = append([]domain.Game(nil), snap.Live...)
	out.Recent = append([]domain.Game(nil), snap.Recent...)
	out.Upcoming = append([]domain.Game(nil), snap.Upcoming...)
	return out
}
