// Package config は環境変数からの設定読み込みを提供します。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ParseEnv は環境変数を読み込み、targetの構造体タグに従って値を設定します。
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv は指定された.envファイルが存在すれば環境変数として読み込みます。
// 既に設定済みの環境変数は上書きしません。ファイルが無い場合はnilを返します。
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info(".env not found; using system environment variables", "path", path)
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
