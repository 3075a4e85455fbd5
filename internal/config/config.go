package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config は環境変数から読み込むアプリケーション設定
type Config struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	FamiliesFile string `env:"FAMILIES_FILE" envDefault:"families.yaml"`
}

// Load は .env ファイル（存在する場合）と環境変数から設定を読み込む
//
// 引数:
//   - envFiles: 読み込む .env ファイルのリスト。存在しないファイルは無視する
//
// 戻り値:
//   - 設定
//   - エラー
func Load(envFiles ...string) (*Config, error) {
	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, errors.Wrap(err, "failed to load env files")
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値をチェックする
func (c *Config) Validate() error {
	switch c.Env {
	case "development", "staging", "production":
	default:
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("LOG_LEVEL must be one of: debug, info, warn, error, got %q", c.LogLevel)
	}
	if c.FamiliesFile == "" {
		return errors.New("FAMILIES_FILE is required")
	}
	return nil
}
