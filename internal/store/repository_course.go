package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/models"
)

// courseRepository is the PostgreSQL-backed implementation of
// [CourseRepository].
type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by the provided
// database connection and logger.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCourse persists a new course and returns it with its ID assigned.
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	var created models.Course
	row := r.db.QueryRowContext(ctx, createCourse, course.Name, course.Category, course.Logo)
	if err := row.Scan(&created.ID, &created.Name, &created.Category, &created.Logo); err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error: inserting course")
		return models.Course{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindAllCourses returns every course ordered by ID.
func (r *courseRepository) FindAllCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllCourses)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindAllCourses").Msg("error: executing course query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.Category, &course.Logo); err != nil {
			log.Err(err).Str("func", "*courseRepository.FindAllCourses").Msg("error: scanning course rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return courses, nil
}

// FindCourseByName looks a course up by its title.
// Returns [ErrCourseNotFound] when no row matches.
func (r *courseRepository) FindCourseByName(ctx context.Context, name string) (models.Course, error) {
	log := logger.FromContext(ctx)

	var found models.Course
	row := r.db.QueryRowContext(ctx, findCourseByName, name)
	if err := row.Scan(&found.ID, &found.Name, &found.Category, &found.Logo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}

		log.Err(err).Str("func", "*courseRepository.FindCourseByName").Msg("error: scanning course row")
		return models.Course{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
