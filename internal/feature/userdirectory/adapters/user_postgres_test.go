package adapters

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ums_backend/internal/feature/userdirectory/domain/entity"
	"ums_backend/internal/feature/userdirectory/usecase"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedUser はテスト用のユーザーをデータベースに直接作成します。
func seedUser(t *testing.T, db *gorm.DB, username, email string) *entity.User {
	t.Helper()

	user := &entity.User{Username: username, Email: email}
	require.NoError(t, db.Create(user).Error, "failed to seed user")
	return user
}

// TestNewUserRepository はNewUserRepositoryコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewUserRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserRepository(db)

	assert.NotNil(t, repo, "repository should not be nil")
	assert.NotNil(t, repo.db, "database connection should not be nil")
}

// TestUserPostgres_ListAll はListAllメソッドの各種シナリオをテーブル駆動テストで検証します。
func TestUserPostgres_ListAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		setupFunc         func(t *testing.T, db *gorm.DB)
		expectedUsernames []string
	}{
		{
			name:              "success: empty table returns empty, non-nil slice",
			setupFunc:         func(t *testing.T, db *gorm.DB) {},
			expectedUsernames: []string{},
		},
		{
			name: "success: single row",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedUser(t, db, "alice", "alice@example.com")
			},
			expectedUsernames: []string{"alice"},
		},
		{
			name: "success: one entry per row",
			setupFunc: func(t *testing.T, db *gorm.DB) {
				seedUser(t, db, "alice", "alice@example.com")
				seedUser(t, db, "bob", "bob@example.com")
				seedUser(t, db, "carol", "carol@example.com")
			},
			expectedUsernames: []string{"alice", "bob", "carol"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewUserRepository(db)
			tt.setupFunc(t, db)

			users, err := repo.ListAll(context.Background())

			require.NoError(t, err)
			require.NotNil(t, users)

			// 並び順は保証しないため集合として比較する
			got := make([]string, 0, len(users))
			for _, u := range users {
				got = append(got, u.Username)
			}
			assert.ElementsMatch(t, tt.expectedUsernames, got)
		})
	}
}

// TestUserPostgres_ListAll_FieldValues はListAllが返すユーザーの全フィールド値が保存値と一致することを検証します。
func TestUserPostgres_ListAll_FieldValues(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserRepository(db)

	expected := seedUser(t, db, "demo", "demo@example.com")

	users, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotZero(t, users[0].ID)
	assert.Equal(t, *expected, users[0])
}

// TestUserPostgres_Create はCreateメソッドのIDの採番と一意制約違反の変換を検証します。
func TestUserPostgres_Create(t *testing.T) {
	t.Parallel()

	t.Run("assigns id", func(t *testing.T) {
		t.Parallel()

		repo := NewUserRepository(setupTestDB(t))
		u := &entity.User{Username: "alice", Email: "alice@example.com"}

		require.NoError(t, repo.Create(context.Background(), u))
		assert.NotZero(t, u.ID)
	})

	t.Run("duplicate username is rejected by the store", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewUserRepository(db)
		seedUser(t, db, "alice", "alice@example.com")

		err := repo.Create(context.Background(), &entity.User{Username: "alice", Email: "other@example.com"})

		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)
	})

	t.Run("duplicate email is rejected by the store", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		repo := NewUserRepository(db)
		seedUser(t, db, "alice", "alice@example.com")

		err := repo.Create(context.Background(), &entity.User{Username: "alice2", Email: "alice@example.com"})

		assert.ErrorIs(t, err, usecase.ErrUserAlreadyExists)

		users, listErr := repo.ListAll(context.Background())
		require.NoError(t, listErr)
		assert.Len(t, users, 1, "rejected row must not be stored")
	})
}

// TestIsUniqueViolation は一意制約違反の判定を検証します。
func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "wrapped postgres unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), want: true},
		{name: "postgres not null violation", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "other error", err: errors.New("connection reset"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

// TestUserPostgres_ListAll_StoreFailure はストアが利用できない場合にエラーを返すことを検証します。
func TestUserPostgres_ListAll_StoreFailure(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	users, err := NewUserRepository(db).ListAll(context.Background())

	assert.Error(t, err)
	assert.Nil(t, users)
}
