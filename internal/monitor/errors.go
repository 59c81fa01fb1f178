package monitor

import (
	"fmt"
)

// FetchError indicates the remote resource could not be fetched. Fatal for
// the run: no snapshot is written and the process exits non-zero.
type FetchError struct {
	Monitor string
	URL     string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("monitor '%s': fetch from %s failed: %v", e.Monitor, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError indicates a payload did not conform to the expected shape.
// Fatal before any snapshot write: malformed data must never replace a good
// snapshot.
type ParseError struct {
	Monitor string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("monitor '%s': parse failed: %v", e.Monitor, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotifyError indicates webhook delivery failed. Non-fatal: the snapshot is
// persisted anyway and the run still counts as a success.
type NotifyError struct {
	Monitor string
	Err     error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("monitor '%s': notification delivery failed: %v", e.Monitor, e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}
