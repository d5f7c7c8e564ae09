package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	redisv9 "github.com/redis/go-redis/v9"

	appconfig "ums_backend/internal/app/config"
	"ums_backend/internal/app/di"
	"ums_backend/internal/app/router"
	"ums_backend/internal/feature/userdirectory/domain/entity"
	userhandler "ums_backend/internal/feature/userdirectory/transport/handler"
	userusecase "ums_backend/internal/feature/userdirectory/usecase"
	platformconfig "ums_backend/internal/platform/config"
	infradb "ums_backend/internal/platform/db"
	platformhttp "ums_backend/internal/platform/http"
	"ums_backend/internal/platform/logger"
	infraredis "ums_backend/internal/platform/redis"
)

func main() {
	os.Exit(run())
}

// run はサーバ終了までブロックし、終了コードを返します。
// deferした後始末はreturn時に実行されます。
func run() int {
	// .envを読み込む
	if err := platformconfig.LoadDotEnv(".env"); err != nil {
		log.Print(err)
		return 1
	}

	cfg, err := appconfig.LoadUserService()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}
	logger.Setup(cfg.Log, os.Stdout, router.UserServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db（起動前にusersテーブルを作成）
	db, err := infradb.OpenDB(cfg.DB, &entity.User{})
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return 1
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}
	}()

	// Redis（USERS_CACHE_TTLが設定されている場合のみ）
	var rdb *redisv9.Client
	if cfg.CacheEnabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, db, cfg.CacheTTL)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)

	// ルータ生成
	r := router.NewUserRouter(userH)

	if err := platformhttp.Serve(ctx, platformhttp.ServerConfig{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, r); err != nil {
		slog.Error("server stopped", "error", err)
		return 1
	}
	return 0
}
