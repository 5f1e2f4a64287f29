// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrProfileNotFound is returned when a user has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileAlreadyExists is returned when a second profile is created for the same user.
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

// User-facing messages returned in AuthResult.UserErrors.
const (
	MsgInvalidEmail       = "invalid email"
	MsgPasswordTooShort   = "password too short"
	MsgPasswordTooLong    = "password too long"
	MsgInvalidInput       = "invalid input"
	MsgEmailInUse         = "email already in use"
	MsgInvalidCredentials = "Invalid credentials"
)
