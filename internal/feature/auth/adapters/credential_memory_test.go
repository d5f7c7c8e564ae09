package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ums_backend/internal/feature/auth/domain"
	"ums_backend/internal/feature/auth/domain/entity"
)

// newDefaultStore builds the store seeded with the built-in table.
func newDefaultStore(t *testing.T) *memoryCredentialStore {
	t.Helper()

	store, err := NewMemoryCredentialStore(DefaultCredentials())
	require.NoError(t, err, "failed to build default credential store")
	return store
}

func TestNewMemoryCredentialStore_Default(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	assert.Equal(t, 1, store.Len())
}

func TestNewMemoryCredentialStore_InvalidTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		creds []entity.Credential
	}{
		{
			name:  "empty username",
			creds: []entity.Credential{{Username: "", Password: "x", DisplayName: "X"}},
		},
		{
			name:  "no password",
			creds: []entity.Credential{{Username: "demo", DisplayName: "Demo User"}},
		},
		{
			name: "duplicate username",
			creds: []entity.Credential{
				{Username: "demo", Password: "1234", DisplayName: "Demo User"},
				{Username: "demo", Password: "5678", DisplayName: "Other"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, err := NewMemoryCredentialStore(tt.creds)

			assert.Nil(t, store)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentialTable)
		})
	}
}

func TestMemoryCredentialStore_Verify_Default(t *testing.T) {
	t.Parallel()

	store := newDefaultStore(t)

	tests := []struct {
		name     string
		username string
		password string
		wantName string
		wantErr  bool
	}{
		{name: "known pair", username: "demo", password: "1234", wantName: "Demo User"},
		{name: "wrong password", username: "demo", password: "4321", wantErr: true},
		{name: "password prefix", username: "demo", password: "123", wantErr: true},
		{name: "password with trailing space", username: "demo", password: "1234 ", wantErr: true},
		{name: "username case differs", username: "Demo", password: "1234", wantErr: true},
		{name: "unknown username", username: "admin", password: "1234", wantErr: true},
		{name: "empty password", username: "demo", password: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, err := store.Verify(context.Background(), tt.username, tt.password)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
				assert.Empty(t, name)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestMemoryCredentialStore_Verify_Hashed(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	store, err := NewMemoryCredentialStore([]entity.Credential{
		{Username: "ops", PasswordHash: string(hash), DisplayName: "Operations"},
	})
	require.NoError(t, err)

	name, err := store.Verify(context.Background(), "ops", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, "Operations", name)

	_, err = store.Verify(context.Background(), "ops", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// the hash itself is not accepted as a plaintext password
	_, err = store.Verify(context.Background(), "ops", string(hash))
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
