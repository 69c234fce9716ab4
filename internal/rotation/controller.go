package rotation

import (
	"sync"
	"time"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/config"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

// SnapshotReader is the read side of the snapshot store.
type SnapshotReader interface {
	Snapshot(league string) (domain.Snapshot, bool)
}

type entry struct {
	league     string
	leagueName string
	mode       domain.Mode
	game       domain.Game
}

func (e entry) key() string {
	return e.league + "|" + string(e.mode) + "|" + e.game.ID
}

// Controller rotates the display across league/mode/game combinations that
// currently have something to show. Ordering is deterministic: mode tier
// (live, recent, upcoming), favorite-team games before others within a tier,
// then league configuration order, then provider game order.
//
// The controller never touches the network; it reads store snapshots only.
type Controller struct {
	leagues     []config.LeagueConfig
	store       SnapshotReader
	dwell       time.Duration
	showRecords bool
	showRanking bool

	mu         sync.Mutex
	entries    []entry
	index      int
	dwellStart time.Time
}

// New constructs a controller over the given leagues in configuration order.
func New(leagues []config.LeagueConfig, store SnapshotReader, dwell time.Duration, showRecords, showRanking bool) *Controller {
	enabled := make([]config.LeagueConfig, 0, len(leagues))
	for _, l := range leagues {
		if l.Enabled {
			enabled = append(enabled, l)
		}
	}
	return &Controller{
		leagues:     enabled,
		store:       store,
		dwell:       dwell,
		showRecords: showRecords,
		showRanking: showRanking,
	}
}

// Advance refreshes the rotation against current snapshots and moves to the
// next combination once the dwell has elapsed. If the current combination
// disappeared (its data went empty), the controller skips forward in the same
// call instead of dwelling on an empty slot.
func (c *Controller) Advance(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var prevKey string
	if len(c.entries) > 0 && c.index < len(c.entries) {
		prevKey = c.entries[c.index].key()
	}
	prevIndex := c.index

	c.entries = c.rebuild()
	if len(c.entries) == 0 {
		c.index = 0
		c.dwellStart = time.Time{}
		return
	}

	if c.dwellStart.IsZero() {
		c.index = 0
		c.dwellStart = now
		return
	}

	pos := -1
	for i, e := range c.entries {
		if e.key() == prevKey {
			pos = i
			break
		}
	}

	if pos < 0 {
		// Current combination vanished; the entry now occupying its slot is
		// effectively the next one. No dwell is wasted.
		c.index = prevIndex % len(c.entries)
		c.dwellStart = now
		return
	}

	c.index = pos
	if now.Sub(c.dwellStart) >= c.dwell {
		c.index = (pos + 1) % len(c.entries)
		c.dwellStart = now
	}
}

// Current returns what the renderer should draw, if anything.
func (c *Controller) Current() (domain.DisplayState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 || c.index >= len(c.entries) {
		return domain.DisplayState{}, false
	}
	e := c.entries[c.index]
	return domain.DisplayState{
		League:      e.league,
		LeagueName:  e.leagueName,
		Mode:        e.mode,
		Game:        e.game,
		ShowRecords: c.showRecords,
		ShowRanking: c.showRanking,
	}, true
}

// Len returns the number of combinations currently in rotation.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Controller) rebuild() []entry {
	var out []entry
	for _, mode := range domain.Modes() {
		var favorites, others []entry
		for _, l := range c.leagues {
			if !l.ModeEnabled(mode) {
				continue
			}
			snap, ok := c.store.Snapshot(l.Key)
			if !ok {
				continue
			}
			for _, g := range snap.Games(mode) {
				e := entry{league: l.Key, leagueName: l.Name, mode: mode, game: g}
				if g.Involves(l.FavoriteTeams) {
					favorites = append(favorites, e)
				} else {
					others = append(others, e)
				}
			}
		}
		out = append(out, favorites...)
		out = append(out, others...)
	}
	return out
}
