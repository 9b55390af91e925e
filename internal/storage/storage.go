// Package storage provides the durable string key/value store backing
// wishlist selections and the login flag. Absent or unreadable values are
// reported as missing, never as errors, so callers can treat corruption the
// same as an empty store.
package storage

// Store is a flat string-to-string map with durable writes.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
