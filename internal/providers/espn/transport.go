package espn

import (
	"net/http"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func resolveTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultHTTPTimeout
	}
	return timeout
}

func resolveURLs(urls map[string]string) map[string]string {
	if len(urls) == 0 {
		return ScoreboardURLs
	}
	merged := make(map[string]string, len(ScoreboardURLs)+len(urls))
	for k, v := range ScoreboardURLs {
		merged[k] = v
	}
	for k, v := range urls {
		merged[k] = v
	}
	return merged
}
