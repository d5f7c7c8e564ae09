package usecase

import "errors"

var (
	// ErrUserAlreadyExists is returned when the store rejects a user whose username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrInvalidUser is returned when a user is missing a required field.
	ErrInvalidUser = errors.New("username and email are required")
)
