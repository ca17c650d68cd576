package models

import "time"

// User represents an account entity used for authentication and profile
// management. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// database at creation time and immutable afterwards.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique identifier used during authentication.
	// Uniqueness is enforced by the database, not by application code.
	Email string `json:"email"`

	// Mobile is the user's contact phone number. Non-sensitive.
	Mobile string `json:"mobile"`

	// Password carries the plaintext password on inbound register/login
	// requests and the bcrypt hash at the persistence layer. It is never
	// serialized back to clients: responses go through [User.Public].
	Password string `json:"password,omitempty"`

	// CourseTitle optionally associates the user with a course by its
	// human-readable title.
	CourseTitle string `json:"courseTitle"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Public returns a copy of the user safe for transmission to clients:
// the password hash is stripped.
func (u User) Public() User {
	u.Password = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
