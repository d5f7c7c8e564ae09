// Package adapters はauthフィーチャーの資格情報ストア実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ums_backend/internal/feature/auth/domain"
	"ums_backend/internal/feature/auth/domain/entity"
	"ums_backend/internal/feature/auth/usecase"
)

// DefaultCredentials は起動時に組み込まれる資格情報テーブルです。
func DefaultCredentials() []entity.Credential {
	return []entity.Credential{
		{Username: "demo", Password: "1234", DisplayName: "Demo User"},
	}
}

// memoryCredentialStore はCredentialStoreインターフェースのインメモリ実装です。
// 生成後は読み取り専用のため、ロックなしで並行に利用できます。
type memoryCredentialStore struct {
	credentials map[string]entity.Credential
}

// memoryCredentialStoreがCredentialStoreを実装していることをコンパイル時に検証します。
var _ usecase.CredentialStore = (*memoryCredentialStore)(nil)

// NewMemoryCredentialStore は指定された資格情報からストアを生成します。
// ユーザー名が空、重複、またはパスワードが未設定のエントリがある場合はエラーを返します。
func NewMemoryCredentialStore(creds []entity.Credential) (*memoryCredentialStore, error) {
	m := make(map[string]entity.Credential, len(creds))
	for i, c := range creds {
		if c.Username == "" {
			return nil, fmt.Errorf("%w: entry %d has no username", domain.ErrInvalidCredentialTable, i)
		}
		if c.Password == "" && c.PasswordHash == "" {
			return nil, fmt.Errorf("%w: user %q has no password", domain.ErrInvalidCredentialTable, c.Username)
		}
		if _, dup := m[c.Username]; dup {
			return nil, fmt.Errorf("%w: duplicate user %q", domain.ErrInvalidCredentialTable, c.Username)
		}
		m[c.Username] = c
	}
	return &memoryCredentialStore{credentials: m}, nil
}

// Verify はusernameを完全一致で検索し、パスワードを照合します。
// bcryptハッシュを持つエントリはハッシュで、それ以外は平文のバイト比較で照合します。
func (s *memoryCredentialStore) Verify(_ context.Context, username, password string) (string, error) {
	c, ok := s.credentials[username]
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	if c.IsHashed() {
		if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
			return "", domain.ErrInvalidCredentials
		}
		return c.DisplayName, nil
	}

	// TODO: drop plaintext entries once every deployment ships a hashed credentials file.
	if c.Password != password {
		return "", domain.ErrInvalidCredentials
	}
	return c.DisplayName, nil
}

// Len は登録されている資格情報の件数を返します。
func (s *memoryCredentialStore) Len() int {
	return len(s.credentials)
}
