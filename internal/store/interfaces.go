package store

import (
	"context"

	"github.com/JegankarthiMCA/i/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its primary key.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// FindAllUsers returns every account.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// FindUsersByCourseTitle returns the accounts associated with the given
	// course title. Returns ErrNoUsersFound on an empty result.
	FindUsersByCourseTitle(ctx context.Context, courseTitle string) ([]models.User, error)

	// UpdateProfile overwrites the non-empty mutable profile fields of the
	// account identified by user.ID and returns the updated record.
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)

	// DeleteUserByName removes the account with the given display name.
	// Returns ErrUserNotFound when nothing was deleted.
	DeleteUserByName(ctx context.Context, name string) error
}

// CourseRepository is the data-access contract for courses.
type CourseRepository interface {
	// CreateCourse persists a new course and returns it with its ID assigned.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// FindAllCourses returns every course.
	FindAllCourses(ctx context.Context) ([]models.Course, error)

	// FindCourseByName looks a course up by its title.
	// Returns ErrCourseNotFound on an empty result.
	FindCourseByName(ctx context.Context, name string) (models.Course, error)
}

// VideoRepository is the data-access contract for course videos.
type VideoRepository interface {
	// CreateVideo persists a new video and returns it with its ID assigned.
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)

	// FindVideosByCourseTitle returns the videos of the given course.
	// Returns ErrNoVideosFound on an empty result.
	FindVideosByCourseTitle(ctx context.Context, courseTitle string) ([]models.Video, error)
}
