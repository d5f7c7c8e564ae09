// Package db はPostgreSQLへのGORM接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// retryInterval は接続リトライの間隔です。
var retryInterval = 3 * time.Second

// Config はデータベース接続設定を保持します。
// URLが設定されている場合は個別の項目より優先されます。
type Config struct {
	URL            string        `env:"DATABASE_URL"`
	User           string        `env:"DB_USER"`
	Password       string        `env:"DB_PASSWORD"`
	Name           string        `env:"DB_NAME"`
	Host           string        `env:"DB_HOST"            envDefault:"localhost"`
	Port           string        `env:"DB_PORT"            envDefault:"5432"`
	SSLMode        string        `env:"DB_SSLMODE"         envDefault:"disable"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"60s"`
	RunMigrations  bool          `env:"RUN_MIGRATIONS"     envDefault:"true"`
}

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN は設定からPostgreSQLの接続URLを生成します。
// 各値はURLエンコードされるため、空のパスワードや空白・記号を含む値もそのまま渡せます。
func BuildDSN(cfg Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
		Path:   "/" + cfg.Name,
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	if cfg.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
	}
	return u.String()
}

// PostgresOpener はPostgreSQLドライバで接続するOpenerです。
// TranslateErrorを有効にし、一意制約違反をgorm.ErrDuplicatedKeyに変換させます。
func PostgresOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// ConnectWithRetry はtimeoutに達するまで一定間隔で接続を再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	attempt := 0
	for {
		attempt++
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("db connect failed after %s (%d attempts): %w", timeout, attempt, err)
		}
		slog.Warn("DB connect failed, retrying", "attempt", attempt, "error", err)
		time.Sleep(min(retryInterval, remaining))
	}
}

// Migrate は指定されたモデルのテーブルが存在しなければ作成します。
// 既存のテーブルには手を加えません（カラム型やインデックスの変更はしない）。
func Migrate(db *gorm.DB, models ...any) error {
	m := db.Migrator()
	for _, model := range models {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// OpenDB は接続を確立し、RunMigrationsが有効であればマイグレーションを実行します。
func OpenDB(cfg Config, models ...any) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, PostgresOpener)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(db, models...); err != nil {
			return nil, err
		}
		slog.Info("database schema ensured")
	}
	return db, nil
}
