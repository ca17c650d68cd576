package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt work factor used when the configuration does
// not override it. Cost 10 keeps a single hash in the low tens of milliseconds
// on current hardware while remaining expensive to brute-force.
const DefaultBcryptCost = 10

// ErrWrongPassword is returned by VerifyPassword when the plaintext does not
// match the stored hash. A corrupt or truncated stored hash is reported the
// same way so that callers cannot distinguish the two cases.
var ErrWrongPassword = errors.New("password does not match")

// HashPassword hashes a plaintext password with bcrypt.
//
// bcrypt embeds a random salt in every hash, so two calls with the same
// plaintext produce different outputs; only VerifyPassword can relate them.
//
// cost selects the bcrypt work factor; values below bcrypt.MinCost
// (including 0) fall back to [DefaultBcryptCost].
//
// Returns an error if the plaintext is empty, longer than bcrypt's 72-byte
// input limit, or if the hashing primitive itself fails.
func HashPassword(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", errors.New("empty password")
	}
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
//
// Returns nil on a match. Any failure — mismatch or a malformed stored hash —
// is collapsed into [ErrWrongPassword] so the caller's failure path has a
// single shape.
func VerifyPassword(plaintext, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)); err != nil {
		return ErrWrongPassword
	}
	return nil
}
