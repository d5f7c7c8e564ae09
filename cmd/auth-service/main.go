package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	appconfig "ums_backend/internal/app/config"
	"ums_backend/internal/app/di"
	"ums_backend/internal/app/router"
	authhandler "ums_backend/internal/feature/auth/transport/handler"
	authusecase "ums_backend/internal/feature/auth/usecase"
	platformconfig "ums_backend/internal/platform/config"
	platformhttp "ums_backend/internal/platform/http"
	"ums_backend/internal/platform/logger"
)

func main() {
	os.Exit(run())
}

// run はサーバ終了までブロックし、終了コードを返します。
func run() int {
	// .envを読み込む
	if err := platformconfig.LoadDotEnv(".env"); err != nil {
		log.Print(err)
		return 1
	}

	cfg, err := appconfig.LoadAuthService()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}
	logger.Setup(cfg.Log, os.Stdout, router.AuthServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Credential store
	store, err := di.NewCredentialStore(cfg.CredentialsFile)
	if err != nil {
		slog.Error("failed to load credentials", "error", err)
		return 1
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(store)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// ルータ生成
	r := router.NewAuthRouter(authH)

	if err := platformhttp.Serve(ctx, platformhttp.ServerConfig{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, r); err != nil {
		slog.Error("server stopped", "error", err)
		return 1
	}
	return 0
}
