package espn

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/domain"
	"github.com/thirtyfiveblack/ledmatrix-cricket-scoreboard/internal/providers"
)

// Config controls how the client reaches the upstream scoreboard API.
type Config struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	URLs       map[string]string // overrides/additions to ScoreboardURLs
	UserAgent  string
}

// Client fetches league scoreboards and maps them to domain games.
type Client struct {
	httpClient httpDoer
	timeout    time.Duration
	urls       map[string]string
	userAgent  string
}

// NewClient constructs a scoreboard client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		timeout:    resolveTimeout(cfg.Timeout),
		urls:       resolveURLs(cfg.URLs),
		userAgent:  ua,
	}
}

// FetchGames retrieves the league's scoreboard and returns the games matching
// the requested mode. Failures are classified for retry decisions upstream.
func (c *Client) FetchGames(ctx context.Context, league string, mode domain.Mode) ([]domain.Game, error) {
	url, ok := c.urls[league]
	if !ok {
		return nil, &providers.FetchError{League: league, Kind: providers.KindBadResponse, Err: providers.ErrUnknownLeague}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &providers.FetchError{League: league, Kind: providers.KindNetwork, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{League: league, Kind: classifyTransportError(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{League: league, Kind: providers.KindBadResponse, StatusCode: resp.StatusCode}
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, &providers.FetchError{League: league, Kind: providers.KindParse, Err: decodeErr}
	}

	return mapScoreboard(league, payload, mode), nil
}

func classifyTransportError(err error) providers.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return providers.KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return providers.KindTimeout
	}
	return providers.KindNetwork
}
