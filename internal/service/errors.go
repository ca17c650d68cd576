package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrHashingFailed = errors.New("password hashing failed")
)
