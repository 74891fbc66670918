package sessionize

import (
	"errors"
	"fmt"
	"net"
)

// FailureKind classifies a request failure. Both fetchers report failures
// through the same taxonomy; whether a kind is fatal is decided by the caller
// (sessions are optional enrichment, speakers are required).
type FailureKind string

const (
	FailureConnection FailureKind = "connection"
	FailureHTTPStatus FailureKind = "http_status"
	FailureTimeout    FailureKind = "timeout"
	FailureRequest    FailureKind = "request"
	FailureUnexpected FailureKind = "unexpected"
)

// RequestError is a classified failure of one API request.
type RequestError struct {
	Kind       FailureKind
	URL        string
	StatusCode int // set only for FailureHTTPStatus
	Err        error
}

func (e *RequestError) Error() string {
	if e.Kind == FailureHTTPStatus {
		return fmt.Sprintf("%s request to %s: unexpected status code %d", e.Kind, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s request to %s: %v", e.Kind, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// classifyTransportError maps an error returned by the HTTP client to a
// RequestError. Timeouts are checked before connection errors because a dial
// timeout satisfies both.
func classifyTransportError(requestURL string, err error) *RequestError {
	kind := FailureRequest

	var netErr net.Error
	var opErr *net.OpError
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = FailureTimeout
	case errors.As(err, &opErr):
		kind = FailureConnection
	}

	return &RequestError{Kind: kind, URL: requestURL, Err: err}
}

// statusError builds a RequestError for a non-2xx response.
func statusError(requestURL string, statusCode int) *RequestError {
	return &RequestError{Kind: FailureHTTPStatus, URL: requestURL, StatusCode: statusCode}
}

// unexpectedError wraps decode and coercion failures: the request itself
// succeeded but the payload was not what the API contract promises.
func unexpectedError(requestURL string, err error) *RequestError {
	return &RequestError{Kind: FailureUnexpected, URL: requestURL, Err: err}
}
