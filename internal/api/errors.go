package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned whenever the API answers 401. The gateway has
// already cleared the credential store and fired the unauthorized hook by the
// time callers see it; they must still treat the operation as failed.
var ErrUnauthorized = errors.New("unauthorized")

// Error is an HTTP-level failure from the inventory API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Unwrap maps 401 responses onto ErrUnauthorized so callers can match with
// errors.Is regardless of which endpoint produced the failure.
func (e *Error) Unwrap() error {
	if e.Status == 401 {
		return ErrUnauthorized
	}
	return nil
}
