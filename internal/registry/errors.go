package registry

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by every registry operation. The boundary layer maps
// these onto HTTP statuses; the registry itself never recovers from them.
var (
	ErrUnauthenticated  = errors.New("you must log in to perform this action")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Denial reasons are stable user-facing strings. The owner message matches
// what users of the registry have seen since the first release, so it must
// not be reworded casually.
const (
	ReasonNotOwner     = "you are not owner of this object"
	ReasonNotModerator = "you are not a moderator"
	ReasonNotAllowed   = "you are not in the allowed users group"
)

func forbidden(reason string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}

func notFound(kind string, id uint) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, kind, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
