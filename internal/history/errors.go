package history

import "errors"

// ErrInvalidUser marks a blank user identifier.
var ErrInvalidUser = errors.New("invalid user")
