package teststubs

import (
	"context"
	"sync"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

// Call records one fetch invocation.
type Call struct {
	League string
	Mode   domain.Mode
}

// StubProvider is a test double for providers.ScoreProvider.
// FetchFn, when set, overrides the canned Games/Err response.
type StubProvider struct {
	Games   map[string][]domain.Game // keyed by league
	Err     error
	Notify  chan struct{}
	FetchFn func(ctx context.Context, league string, mode domain.Mode) ([]domain.Game, error)

	mu    sync.Mutex
	calls []Call
}

// FetchGames returns the configured response while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context, league string, mode domain.Mode) ([]domain.Game, error) {
	s.mu.Lock()
	s.calls = append(s.calls, Call{League: league, Mode: mode})
	s.mu.Unlock()

	if s.Notify != nil {
		select {
		case s.Notify <- struct{}{}:
		default:
		}
	}

	if s.FetchFn != nil {
		return s.FetchFn(ctx, league, mode)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games[league], nil
}

// Calls returns a copy of the recorded invocations.
func (s *StubProvider) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallCount returns how many fetches were made.
func (s *StubProvider) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
