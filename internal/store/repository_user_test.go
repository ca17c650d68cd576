package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var userColumns = []string{"id", "name", "email", "mobile", "password", "course_title", "created_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:        "Alice",
		Email:       "alice@example.com",
		Mobile:      "1234567890",
		Password:    "bcrypt-hash",
		CourseTitle: "Go Basics",
	}

	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, user.Name, user.Email, user.Mobile, user.Password, user.CourseTitle, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.Mobile, user.Password, user.CourseTitle).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "alice@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "alice@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "Alice", "alice@example.com", "123", "hash", "Go Basics", now)

	mock.ExpectQuery("SELECT id").
		WithArgs("alice@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Alice" {
		t.Errorf("expected name Alice, got %s", found.Name)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(42, "Alice", "alice@example.com", "123", "hash", "", now)

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 42 {
		t.Errorf("expected ID=42, got %d", found.ID)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindAllUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "Alice", "alice@example.com", "1", "h1", "Go Basics", now).
		AddRow(2, "Bob", "bob@example.com", "2", "h2", "", now)

	mock.ExpectQuery("SELECT id").
		WillReturnRows(rows)

	users, err := repo.FindAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestFindAllUsers_Empty(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.FindAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty slice, got %d users", len(users))
	}
	if users == nil {
		t.Fatal("expected non-nil empty slice so it serialises as [], not null")
	}
}

func TestFindUsersByCourseTitle_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(1, "Alice", "alice@example.com", "1", "h1", "Go Basics", now)

	mock.ExpectQuery("SELECT id").
		WithArgs("Go Basics").
		WillReturnRows(rows)

	users, err := repo.FindUsersByCourseTitle(ctx, "Go Basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestFindUsersByCourseTitle_NoneFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("Empty").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUsersByCourseTitle(ctx, "Empty")
	if !errors.Is(err, ErrNoUsersFound) {
		t.Fatalf("expected ErrNoUsersFound, got %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	rows := sqlmock.
		NewRows(userColumns).
		AddRow(42, "Robert", "bob@example.com", "2", "h2", "SQL", now)

	mock.ExpectQuery("UPDATE users").
		WithArgs("Robert", int64(42)).
		WillReturnRows(rows)

	updated, err := repo.UpdateProfile(ctx, models.User{ID: 42, Name: "Robert"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Robert" {
		t.Errorf("expected name Robert, got %s", updated.Name)
	}
	if updated.CourseTitle != "SQL" {
		t.Errorf("untouched field course_title changed: %s", updated.CourseTitle)
	}
}

func TestUpdateProfile_NothingToUpdate(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.UpdateProfile(context.Background(), models.User{ID: 42})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateProfile_UserNotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProfile(context.Background(), models.User{ID: 99, Name: "Ghost"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateProfile_EmailUniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateProfile(context.Background(), models.User{ID: 42, Email: "taken@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestDeleteUserByName_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("Alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUserByName(context.Background(), "Alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUserByName_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("Ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUserByName(context.Background(), "Ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserByName_ExecError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WillReturnError(errors.New("db gone"))

	err := repo.DeleteUserByName(context.Background(), "Alice")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
