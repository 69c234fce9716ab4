package providers

import (
	"context"
	"errors"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
)

// ErrUnknownLeague is returned when a provider has no endpoint for a league key.
var ErrUnknownLeague = errors.New("unknown league")

// ScoreProvider defines how upstream scoreboard data is fetched and normalized.
// FetchGames returns only the games matching the requested mode; each call is
// independent and providers retain no state across calls.
type ScoreProvider interface {
	FetchGames(ctx context.Context, league string, mode domain.Mode) ([]domain.Game, error)
}
