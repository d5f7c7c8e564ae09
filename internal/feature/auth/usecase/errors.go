// Package usecase implements the business logic for the auth feature.
package usecase

import "ums_backend/internal/feature/auth/domain"

// ErrInvalidCredentials is re-exported so transport code depends on the usecase package only.
var ErrInvalidCredentials = domain.ErrInvalidCredentials
