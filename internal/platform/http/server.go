// Package http はHTTPサーバーの起動と停止を提供します。
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// ServerConfig はHTTPサーバーのタイムアウト設定を保持します。
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// NewServer はhandlerを提供するhttp.Serverを生成します。
// ReadHeaderTimeoutが0の場合は5秒を使用します。
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	rht := cfg.ReadHeaderTimeout
	if rht <= 0 {
		rht = 5 * time.Second
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: rht,
	}
}

// Serve はctxがキャンセルされるまでサーバーを実行し、その後グレースフルに停止します。
// ShutdownTimeoutが0の場合は10秒を使用します。
func Serve(ctx context.Context, cfg ServerConfig, handler http.Handler) error {
	srv := NewServer(cfg, handler)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen %s: %w", cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Info("http server shutting down", "addr", cfg.Addr)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
