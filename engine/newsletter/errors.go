package newsletter

import (
	"errors"
	"fmt"
)

// ErrEmailRequired is returned when no email address was supplied.
var ErrEmailRequired = errors.New("email is required")

// ErrInvalidEmail is returned when the address fails the syntax check.
var ErrInvalidEmail = errors.New("invalid email format")

// ErrMemberExists is returned when the address is already subscribed.
var ErrMemberExists = errors.New("member already subscribed")

// ProviderError carries a mailing-list provider failure that is not a
// duplicate subscription, preserving its title for the caller.
type ProviderError struct {
	Status int
	Title  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("mailing-list provider error: status %d: %s", e.Status, e.Title)
}
