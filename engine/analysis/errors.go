package analysis

import "errors"

// ErrEmptyResponse is returned when the completion provider yields no
// content at all.
var ErrEmptyResponse = errors.New("empty response from completion provider")

// ErrMalformedResponse is returned when the provider content is not
// valid JSON. Callers decide whether to retry; this package never does.
var ErrMalformedResponse = errors.New("malformed response from completion provider")
