package fetch

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/sony/gobreaker"
)

// Reason codes for fetch failures. "Could not determine" is always
// distinguishable from "no events found": a failed fetch returns an
// *Error, never an empty result.
type Reason string

const (
	ReasonTimeout  Reason = "timeout"
	ReasonNetwork  Reason = "network_error"
	ReasonUpstream Reason = "upstream_error"
)

// Error is a typed fetch failure carrying the upstream source, a
// reason code, and the HTTP status for upstream errors.
type Error struct {
	Source string
	Reason Reason
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Reason == ReasonUpstream {
		return fmt.Sprintf("%s fetch failed: %s (status %d)", e.Source, e.Reason, e.Status)
	}
	return fmt.Sprintf("%s fetch failed: %s: %v", e.Source, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// transportError classifies a transport-level failure into a timeout
// or a generic network error.
func transportError(source string, err error) *Error {
	reason := ReasonNetwork

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		reason = ReasonTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		reason = ReasonTimeout
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		reason = ReasonNetwork
	}

	return &Error{Source: source, Reason: reason, Err: err}
}

func upstreamError(source string, status int) *Error {
	return &Error{
		Source: source,
		Reason: ReasonUpstream,
		Status: status,
		Err:    fmt.Errorf("unexpected status code: %d", status),
	}
}
