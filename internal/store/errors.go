package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE on the users
	// table violates the unique constraint on email. The constraint — not the
	// application-level pre-check — is the authoritative guard against
	// duplicate accounts under concurrent registration.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrNoUsersFound is returned when a multi-row user query (e.g. by course
	// title) matches nothing.
	ErrNoUsersFound = errors.New("no users were found")

	// ErrCourseNotFound is returned when a course lookup by name matches
	// nothing.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrNoVideosFound is returned when a video query by course title matches
	// nothing.
	ErrNoVideosFound = errors.New("no videos were found")

	// ErrNothingToUpdate is returned by UpdateProfile when the request carries
	// no non-empty mutable fields.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
