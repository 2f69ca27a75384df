package shared

import "errors"

var (
	// ErrNotFound marks lookups for entities the backend does not know.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated is returned by operations that require a stored
	// session when no token is present.
	ErrNotAuthenticated = errors.New("not authenticated")
)
