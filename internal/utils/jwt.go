package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/JegankarthiMCA/i/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying the identity
// claims {id, email}.
//
// The token additionally includes the standard claims:
//   - Issuer    (iss): identifies the service that issued the token (when issuer is non-empty)
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): set only when tokenDuration is positive; a zero
//     duration issues a token that never expires, which is the deliberate
//     policy of this service (see DESIGN.md)
//
// Parameters:
//
//	issuer        - identifier of the token issuer (may be empty)
//	userID        - ID of the account the token is issued for
//	email         - account email embedded in the claims
//	tokenDuration - validity window; 0 means no expiry claim
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns an error if the sign key is empty, the user ID is zero, or signing
// fails.
func GenerateJWTToken(issuer string, userID int64, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if signKey == "" || userID == 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		ID:    userID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - signing method restricted to HMAC-SHA256
//   - signature verification using the provided sign key
//   - expiration (exp) check, when the claim is present
//   - issuer (iss) check, when tokenIssuer is non-empty
//   - presence of a non-zero "id" claim
//
// Returns the decoded token model on success or an error if validation fails
// or the identity claims are missing.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.ID == 0 {
		return models.Token{}, errors.New("token carries no account id")
	}

	return models.Token{Token: token, Claims: *claims}, nil
}
