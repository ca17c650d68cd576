package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JegankarthiMCA/i/internal/config"
	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/store"
	"github.com/JegankarthiMCA/i/internal/utils"
	"github.com/JegankarthiMCA/i/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost controls the bcrypt work factor for password hashing.
	// Zero selects the hasher's default cost.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// When empty no issuer claim is set or checked.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without an expiry claim.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are non-empty, checks for an
// existing account with the same email, hashes the password with bcrypt, and
// delegates persistence to the UserRepository.
//
// The existence check is best effort: two concurrent registrations with the
// same email can both pass it, and the loser is stopped by the database
// unique constraint instead (surfacing as store.ErrEmailAlreadyExists from
// CreateUser).
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - ErrHashingFailed (wrapped) if the hashing primitive fails; the cause is
//     logged server-side and never reaches the client.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, user.Email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", user.Email).Msg("user existence check failed")
		return models.User{}, fmt.Errorf("user existence check failed: %w", err)
	}

	hashed, err := utils.HashPassword(user.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}
	user.Password = hashed

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Email and Password are non-empty, looks the account
// up by email, and verifies the supplied password against the stored bcrypt
// hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - store.ErrUserNotFound (wrapped) if no account has that email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.VerifyPassword(user.Password, foundUser.Password); err != nil {
		log.Warn().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT carrying the {id, email} claims of the
// given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration
// (never, when the duration is zero).
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry when present. Any validation failure
// (tampered signature, malformed structure, missing claims) is normalised to
// ErrTokenIsInvalid so that callers do not need to inspect low-level JWT
// errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
