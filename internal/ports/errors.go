package ports

import "errors"

// ErrNotFound is returned by lookups (postal codes, geocoders, routes,
// repositories) when the upstream or the store has no answer for the key.
var ErrNotFound = errors.New("not found")

// ErrPouchNotFound is returned when updating a pouch id that does not exist.
var ErrPouchNotFound = errors.New("pouch not found")
