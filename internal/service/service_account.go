package service

import (
	"context"
	"fmt"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/store"
	"github.com/JegankarthiMCA/i/models"
)

// accountService implements AccountService on top of the user repository.
// It never exposes password hashes: every returned user goes through
// [models.User.Public].
type accountService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewAccountService constructs an AccountService backed by the given
// repository.
func NewAccountService(userRepository store.UserRepository, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Profile returns the account identified by a verified token's id claim.
//
// A stateless token outlives its account: when the id no longer resolves the
// repository's store.ErrUserNotFound is passed through for the handler to map
// to 404.
func (s *accountService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Public(), nil
}

// UpdateProfile overwrites the caller's mutable profile fields. The id comes
// from the verified token, so no further ownership check is needed.
func (s *accountService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := s.userRepository.UpdateProfile(ctx, user)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated.Public(), nil
}

// ListUsers returns all accounts with password hashes stripped.
func (s *accountService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return publicUsers(users), nil
}

// GetUserByEmail returns the account with the given email, password stripped.
func (s *accountService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user.Public(), nil
}

// ListUsersByCourse returns the accounts enrolled in the given course,
// password hashes stripped.
func (s *accountService) ListUsersByCourse(ctx context.Context, courseTitle string) ([]models.User, error) {
	if courseTitle == "" {
		return nil, ErrInvalidDataProvided
	}

	users, err := s.userRepository.FindUsersByCourseTitle(ctx, courseTitle)
	if err != nil {
		return nil, fmt.Errorf("user search by course failed: %w", err)
	}

	return publicUsers(users), nil
}

// DeleteUserByName removes the account with the given display name.
func (s *accountService) DeleteUserByName(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.DeleteUserByName(ctx, name); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// publicUsers strips the password hash from every user in the slice.
func publicUsers(users []models.User) []models.User {
	public := make([]models.User, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}
	return public
}
