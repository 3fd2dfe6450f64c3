package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Env    string
	Engine EngineConfig
	Report ReportConfig
}

type EngineConfig struct {
	MinWeeks int
}

type ReportConfig struct {
	Format string
}

// Load загружает конфигурацию приложения из окружения и .env.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", "local")

	minWeeks, err := parseIntEnv("ENGINE_MIN_WEEKS", 4)
	if err != nil {
		return cfg, err
	}

	cfg.Engine = EngineConfig{
		MinWeeks: minWeeks,
	}

	cfg.Report = ReportConfig{
		Format: strings.ToLower(getEnv("REPORT_FORMAT", FormatText)),
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Report.Format != FormatText && c.Report.Format != FormatJSON {
		return fmt.Errorf("REPORT_FORMAT must be text or json")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
