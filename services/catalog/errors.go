package catalog

import "errors"

// ErrNotFound is returned when the catalog has no resource for the requested
// identifier.
var ErrNotFound = errors.New("catalog resource not found")
