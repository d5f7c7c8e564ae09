// Package usecase implements the business logic for the user directory.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"ums_backend/internal/feature/userdirectory/domain/entity"
)

// UserRepository abstracts the persistence layer for directory users.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// ListAll returns every row in the store's natural order.
	ListAll(ctx context.Context) ([]entity.User, error)

	// Create inserts a user and assigns its ID.
	// It returns ErrUserAlreadyExists when a uniqueness constraint rejects the row.
	Create(ctx context.Context, user *entity.User) error
}

// UserUsecase provides business logic for user directory operations.
type UserUsecase struct {
	repo UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(r UserRepository) *UserUsecase {
	return &UserUsecase{repo: r}
}

// ListUsers returns all users. No ordering, filtering or paging is applied.
func (u *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.repo.ListAll(ctx)
}

// CreateUser inserts a user record. It is used by the seeding command only;
// the HTTP surface is read-only.
func (u *UserUsecase) CreateUser(ctx context.Context, username, email string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, ErrInvalidUser
	}

	user := &entity.User{Username: username, Email: email}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	return user, nil
}
