package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrInvalidJSON      = errors.New("response is not valid json")
)

// RemoteError reports a failed call to the ledger service or to an external
// document. StatusCode is zero when no HTTP response was received.
type RemoteError struct {
	Operation  string
	StatusCode int
	Cause      error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: status %d: %v", e.Operation, e.StatusCode, e.Cause)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}
