package social_errors

import (
	"errors"
)

// Common errors
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrInvalidInput  = errors.New("invalid input")
	ErrRateLimited   = errors.New("rate limited")
	ErrAlreadyExists = errors.New("already exists")
)

// Reason returns the text a wrapped error carries after its sentinel,
// e.g. "blank text" for fmt.Errorf("%w: blank text", ErrInvalidInput).
func Reason(err error) string {
	if err == nil {
		return ""
	}
	for _, sentinel := range []error{ErrInvalidInput, ErrConflict, ErrUnauthorized, ErrNotFound} {
		if !errors.Is(err, sentinel) {
			continue
		}
		msg := err.Error()
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
		return msg
	}
	return err.Error()
}
