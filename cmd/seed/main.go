// Command seed inserts directory users given as username:email arguments.
//
//	seed alice:alice@example.com bob:bob@example.com
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appconfig "ums_backend/internal/app/config"
	"ums_backend/internal/app/di"
	"ums_backend/internal/feature/userdirectory/domain/entity"
	"ums_backend/internal/feature/userdirectory/usecase"
	platformconfig "ums_backend/internal/platform/config"
	infradb "ums_backend/internal/platform/db"
	"ums_backend/internal/platform/logger"
	infraredis "ums_backend/internal/platform/redis"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so that deferred cleanup runs before exit.
func run(args []string) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	skipExisting := fs.Bool("skip-existing", false, "do not fail when a username or email already exists")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	pairs, err := parsePairs(fs.Args())
	if err != nil {
		log.Print(err)
		return 2
	}

	if err := platformconfig.LoadDotEnv(".env"); err != nil {
		log.Print(err)
		return 1
	}
	cfg, err := appconfig.LoadUserService()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}
	logger.Setup(cfg.Log, os.Stderr, "seed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := infradb.OpenDB(cfg.DB, &entity.User{})
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return 1
	}
	defer closeDB(db)

	// キャッシュが有効な場合は作成時に無効化するためRedisにも接続する
	var rdb *redisv9.Client
	if cfg.CacheEnabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err == nil {
			rdb = tmp
			defer func() { _ = rdb.Close() }()
		}
	}

	uc := usecase.NewUserUsecase(di.NewUserRepository(rdb, db, cfg.CacheTTL))

	created, err := seed(ctx, uc, pairs, *skipExisting)
	if err != nil {
		slog.Error("seed failed", "created", created, "error", err)
		return 1
	}
	slog.Info("seed ok", "created", created, "requested", len(pairs))
	return 0
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
}

type userPair struct {
	username string
	email    string
}

// parsePairs parses username:email arguments.
func parsePairs(args []string) ([]userPair, error) {
	if len(args) == 0 {
		return nil, errors.New("usage: seed [-skip-existing] username:email ...")
	}
	out := make([]userPair, 0, len(args))
	for _, a := range args {
		username, email, ok := strings.Cut(a, ":")
		if !ok || username == "" || email == "" {
			return nil, fmt.Errorf("invalid argument %q: want username:email", a)
		}
		out = append(out, userPair{username: username, email: email})
	}
	return out, nil
}

type userCreator interface {
	CreateUser(ctx context.Context, username, email string) (*entity.User, error)
}

// seed creates each pair in order and stops at the first error unless it is a
// duplicate and skipExisting is set.
func seed(ctx context.Context, uc userCreator, pairs []userPair, skipExisting bool) (int, error) {
	created := 0
	for _, p := range pairs {
		u, err := uc.CreateUser(ctx, p.username, p.email)
		if err != nil {
			if skipExisting && errors.Is(err, usecase.ErrUserAlreadyExists) {
				slog.Warn("user already exists, skipping", "username", p.username, "email", p.email)
				continue
			}
			return created, err
		}
		slog.Info("user created", "id", u.ID, "username", u.Username)
		created++
	}
	return created, nil
}
