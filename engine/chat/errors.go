package chat

import "errors"

// ErrNotSignedIn is returned when an anonymous visitor tries to send.
var ErrNotSignedIn = errors.New("authentication required")

// ErrMessageLimit is returned when the free-tier quota is used up. The
// check runs before any completion request is issued.
var ErrMessageLimit = errors.New("message limit reached")

// ErrEmptyInput is returned for blank submissions.
var ErrEmptyInput = errors.New("message is empty")
