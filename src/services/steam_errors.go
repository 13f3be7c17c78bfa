package services

import "fmt"

// UpstreamError is an explicit failure Steam reports inside a 2xx response
// body (e.g. "Profile is private").
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Steam API error: %s", e.Message)
}

// TransportError covers network failures and non-2xx upstream statuses. The
// raw status and body are kept for diagnostics only; they are never sent to
// callers outside development mode.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("steam inventory request failed: %v", e.Err)
	}
	return fmt.Sprintf("steam inventory request returned status %d: %s", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
