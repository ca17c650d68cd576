package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not follow the "Bearer <token>" scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Response messages for the always-200 register/login contract. The exact
// strings are part of the API: the mobile client matches on them.
const (
	msgUserCreated       = "User Created"
	msgUserAlreadyExists = "User already exists"
	msgUserDoesntExist   = "User Doesn't Exist"
	msgInvalidPassword   = "Invalid Password"
	msgInternalError     = "Internal Server Error"
)

// Messages for the catalog and user-listing endpoints.
const (
	msgUserNotFound         = "User not found"
	msgNoUsersForCourse     = "No users found for this course"
	msgUserDeleted          = "User deleted successfully"
	msgCourseNotFound       = "Course not found"
	msgNoVideosForCourse    = "No videos found for this course"
	msgFailedToAddCourse    = "Failed to add course"
	msgFailedToAddVideo     = "Failed to add video"
	msgFailedToFetchVideos  = "Failed to fetch videos"
	msgFailedToFetchCourses = "Failed to fetch courses"
)
