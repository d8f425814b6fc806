// Package usecase implements the business logic for the accounts feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by name or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrEmailMismatch is returned during login when the supplied email does not
	// match the email stored for the account found by name.
	ErrEmailMismatch = errors.New("invalid email")

	// ErrInvalidPassword is returned during login when the password does not
	// match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
)
