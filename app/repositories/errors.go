package repositories

import "errors"

// ErrNotFound is returned when a lookup, update, or delete matches nothing.
var ErrNotFound = errors.New("document not found")
