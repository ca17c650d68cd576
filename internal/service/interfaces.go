package service

import (
	"context"

	"github.com/JegankarthiMCA/i/models"
)

// AuthService owns the trust boundary: credential verification and token
// lifecycle.
type AuthService interface {
	// RegisterUser creates a new account with a hashed password.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the credentials and returns the stored account.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns its decoded claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService exposes user-record operations after (or outside) the
// trust boundary.
type AccountService interface {
	// Profile returns the account identified by a verified token's id claim.
	Profile(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile overwrites the caller's mutable profile fields.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// ListUsers returns all accounts.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUserByEmail returns the account with the given email.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// ListUsersByCourse returns the accounts enrolled in the given course.
	ListUsersByCourse(ctx context.Context, courseTitle string) ([]models.User, error)

	// DeleteUserByName removes the account with the given display name.
	DeleteUserByName(ctx context.Context, name string) error
}

// CatalogService manages the course and video resources.
type CatalogService interface {
	// AddCourse creates a new course.
	AddCourse(ctx context.Context, course models.Course) (models.Course, error)

	// ListCourses returns all courses.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// AddVideo creates a new video after checking the referenced course exists.
	AddVideo(ctx context.Context, video models.Video) (models.Video, error)

	// ListVideosByCourse returns the videos of the given course.
	ListVideosByCourse(ctx context.Context, courseTitle string) ([]models.Video, error)
}
