package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/JegankarthiMCA/i/models"
)

const (
	createUser = `INSERT INTO users (name, email, mobile, password, course_title)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, email, mobile, password, course_title, created_at;`

	findUserByEmail = `SELECT id, name, email, mobile, password, course_title, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, mobile, password, course_title, created_at
    FROM users
    WHERE id = $1;`

	findAllUsers = `SELECT id, name, email, mobile, password, course_title, created_at
    FROM users
    ORDER BY id;`

	findUsersByCourseTitle = `SELECT id, name, email, mobile, password, course_title, created_at
    FROM users
    WHERE course_title = $1
    ORDER BY id;`

	deleteUserByName = `DELETE FROM users
    WHERE name = $1;`

	createCourse = `INSERT INTO courses (name, category, logo)
    VALUES ($1, $2, $3)
    RETURNING id, name, category, logo;`

	findAllCourses = `SELECT id, name, category, logo
    FROM courses
    ORDER BY id;`

	findCourseByName = `SELECT id, name, category, logo
    FROM courses
    WHERE name = $1;`

	createVideo = `INSERT INTO videos (title, description, url, course_title)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, description, url, course_title;`

	findVideosByCourseTitle = `SELECT id, title, description, url, course_title
    FROM videos
    WHERE course_title = $1
    ORDER BY id;`
)

// buildUpdateProfileQuery builds a dynamic UPDATE for the profile endpoint.
// Only the non-empty mutable fields are written, so a partial request body
// leaves the remaining columns untouched. Returns ErrNothingToUpdate when the
// request carries no updatable field at all.
func buildUpdateProfileQuery(user models.User) (string, []any, error) {
	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING id, name, email, mobile, password, course_title, created_at")

	updated := false
	if user.Name != "" {
		builder = builder.Set("name", user.Name)
		updated = true
	}
	if user.Email != "" {
		builder = builder.Set("email", user.Email)
		updated = true
	}
	if user.Mobile != "" {
		builder = builder.Set("mobile", user.Mobile)
		updated = true
	}
	if user.CourseTitle != "" {
		builder = builder.Set("course_title", user.CourseTitle)
		updated = true
	}

	if !updated {
		return "", nil, ErrNothingToUpdate
	}

	return builder.ToSql()
}
