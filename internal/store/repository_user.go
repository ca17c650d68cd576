package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, profile updates, and deletion against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists]. This is
//     how the loser of a concurrent duplicate registration surfaces: the
//     application-level pre-check is best effort only.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.Mobile, user.Password, user.CourseTitle)

	var created models.User
	if err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Mobile, &created.Password, &created.CourseTitle, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the account whose email matches the argument.
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the account with the given primary key.
// Returns [ErrUserNotFound] when no row matches — notably for identities
// embedded in still-valid tokens whose account has since been deleted.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

// findOne runs a single-row user query and scans the result.
func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&found.ID, &found.Name, &found.Email, &found.Mobile, &found.Password, &found.CourseTitle, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindAllUsers returns every account ordered by ID.
func (r *userRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	return r.findMany(ctx, findAllUsers)
}

// FindUsersByCourseTitle returns the accounts associated with the given
// course title. Returns [ErrNoUsersFound] when the result set is empty.
func (r *userRepository) FindUsersByCourseTitle(ctx context.Context, courseTitle string) ([]models.User, error) {
	users, err := r.findMany(ctx, findUsersByCourseTitle, courseTitle)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUsersFound
	}

	return users, nil
}

// findMany runs a multi-row user query and scans the results.
func (r *userRepository) findMany(ctx context.Context, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findMany").Msg("error: executing user query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Mobile, &user.Password, &user.CourseTitle, &user.CreatedAt); err != nil {
			log.Err(err).Str("func", "*userRepository.findMany").Msg("error: scanning user rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateProfile overwrites the non-empty mutable profile fields of the
// account identified by user.ID and returns the updated record.
//
// The UPDATE is built dynamically (see [buildUpdateProfileQuery]) so a partial
// request body leaves the remaining columns untouched.
//
// Error handling:
//   - no updatable fields in the request → [ErrNothingToUpdate].
//   - unique_violation on the new email → [ErrEmailAlreadyExists].
//   - no row with the given ID → [ErrUserNotFound].
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(user)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Mobile, &updated.Password, &updated.CourseTitle, &updated.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: updating user profile")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteUserByName removes the account with the given display name.
// Returns [ErrUserNotFound] when no row was deleted.
func (r *userRepository) DeleteUserByName(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUserByName, name)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserByName").Msg("error: deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
