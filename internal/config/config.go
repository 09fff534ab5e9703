// Package config читает настройки сервиса из окружения и необязательного .env.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FailurePolicy определяет, что делать с категорией, данные которой не удалось получить.
type FailurePolicy string

const (
	// FailureAbort прерывает весь экспорт.
	FailureAbort FailurePolicy = "abort"
	// FailureSkip пропускает категорию.
	FailureSkip FailurePolicy = "skip"
	// FailureNote пропускает категорию и добавляет в архив errors.txt.
	FailureNote FailurePolicy = "note"
)

// Config содержит настройки сервиса.
type Config struct {
	HTTPAddr           string
	DatabaseDSN        string
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	ExportFailurePolicy FailurePolicy
	ExportMaxParallel   int
	// ExportLocation задаёт часовой пояс, в котором даты выводятся в книгах.
	ExportLocation *time.Location

	DashboardCacheTTL time.Duration
}

// Load читает конфигурацию. Если dotEnvPath указан и файл существует,
// его переменные подгружаются в окружение до чтения.
func Load(dotEnvPath string) (Config, error) {
	if dotEnvPath != "" {
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat %s: %w", dotEnvPath, err)
		}
	}

	v := viper.New()
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("EXPORT_FAILURE_POLICY", string(FailureNote))
	v.SetDefault("EXPORT_MAX_PARALLEL", 4)
	v.SetDefault("EXPORT_TIMEZONE", "Asia/Ho_Chi_Minh")
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPAddr:          v.GetString("HTTP_ADDR"),
		DatabaseDSN:       v.GetString("DB_DSN"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),
		ExportMaxParallel: v.GetInt("EXPORT_MAX_PARALLEL"),
		DashboardCacheTTL: v.GetDuration("DASHBOARD_CACHE_TTL"),
	}

	if cfg.DatabaseDSN == "" {
		return Config{}, errors.New("DB_DSN environment variable is required")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	policy, err := ParseFailurePolicy(v.GetString("EXPORT_FAILURE_POLICY"))
	if err != nil {
		return Config{}, err
	}
	cfg.ExportFailurePolicy = policy

	if cfg.ExportMaxParallel < 1 {
		return Config{}, fmt.Errorf("EXPORT_MAX_PARALLEL must be positive, got %d", cfg.ExportMaxParallel)
	}
	loc, err := time.LoadLocation(v.GetString("EXPORT_TIMEZONE"))
	if err != nil {
		return Config{}, fmt.Errorf("EXPORT_TIMEZONE: %w", err)
	}
	cfg.ExportLocation = loc

	if cfg.DashboardCacheTTL < 0 {
		return Config{}, fmt.Errorf("DASHBOARD_CACHE_TTL must not be negative, got %s", cfg.DashboardCacheTTL)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}

	return cfg, nil
}

// ParseFailurePolicy разбирает значение EXPORT_FAILURE_POLICY.
func ParseFailurePolicy(raw string) (FailurePolicy, error) {
	switch p := FailurePolicy(strings.ToLower(strings.TrimSpace(raw))); p {
	case FailureAbort, FailureSkip, FailureNote:
		return p, nil
	default:
		return "", fmt.Errorf("unknown EXPORT_FAILURE_POLICY %q (want abort, skip or note)", raw)
	}
}
