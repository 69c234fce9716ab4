package providers

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a fetch failure for retry decisions.
type ErrorKind string

const (
	KindTimeout     ErrorKind = "timeout"
	KindNetwork     ErrorKind = "network"
	KindBadResponse ErrorKind = "bad_response"
	KindParse       ErrorKind = "parse"
)

// FetchError captures a classified failure from an upstream fetch.
type FetchError struct {
	League     string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.League, e.Kind)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is transient. Timeouts and network
// errors are worth another attempt; bad responses and parse failures are
// permanent for the current fetch cycle.
func (e *FetchError) Retryable() bool {
	return e.Kind == KindTimeout || e.Kind == KindNetwork
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Retryable reports whether an arbitrary error should be retried.
// Unclassified errors are treated as permanent.
func Retryable(err error) bool {
	if fe, ok := AsFetchError(err); ok {
		return fe.Retryable()
	}
	return false
}
