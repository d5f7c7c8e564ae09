// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
)

// CredentialStore は資格情報の照合を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CredentialStore interface {
	// Verify はusernameとpasswordの組を照合し、一致すれば表示名を返します。
	// ユーザーが存在しない場合やパスワードが一致しない場合はErrInvalidCredentialsを返します。
	Verify(ctx context.Context, username, password string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	credentials CredentialStore
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(credentials CredentialStore) *authUsecase {
	return &authUsecase{credentials: credentials}
}

// Login はユーザーを認証し、成功時に表示名を返します。
// 空のusername/passwordはリクエストで省略された値として扱い、照合せずに失敗させます。
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	name, err := u.credentials.Verify(ctx, username, password)
	if err != nil {
		slog.DebugContext(ctx, "credential verification failed", "username", username, "error", err)
		return "", ErrInvalidCredentials
	}
	return name, nil
}
