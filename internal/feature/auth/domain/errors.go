// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

var (
	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	// The two cases are deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidCredentialTable indicates a credential table that cannot be loaded,
	// such as an entry without a username or a duplicated username.
	ErrInvalidCredentialTable = errors.New("invalid credential table")
)
