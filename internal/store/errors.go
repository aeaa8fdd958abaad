package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a new
	// user fails because an account with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStorageUnavailable is returned (wrapped around the driver error)
	// when the persistence layer cannot complete an operation. The failure
	// is fatal for that request and is never retried by this layer.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it ever reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
