package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv               string
	Addr                 string
	DbDriver             string
	DbDsn                string
	JwtSecret            string
	JwtTTLHours          int
	AdminBootstrap       string
	SmtpHost             string
	SmtpPort             int
	SmtpUser             string
	SmtpPass             string
	SmtpFrom             string
	AllowedOriginsRaw    string
	SeedAdminPassword    string
	SeedEmployeePassword string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:               getEnv("APP_ENV", "local"),
		Addr:                 getEnv("APP_ADDR", ":8080"),
		DbDriver:             strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DbDsn:                os.Getenv("DB_DSN"),
		JwtSecret:            os.Getenv("JWT_SECRET"),
		JwtTTLHours:          getEnvInt("JWT_TTL_HOURS", 168),
		AdminBootstrap:       strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_BOOTSTRAP_EMAIL"))),
		SmtpHost:             os.Getenv("SMTP_HOST"),
		SmtpPort:             getEnvInt("SMTP_PORT", 587),
		SmtpUser:             os.Getenv("SMTP_USER"),
		SmtpPass:             os.Getenv("SMTP_PASS"),
		SmtpFrom:             os.Getenv("SMTP_FROM"),
		AllowedOriginsRaw:    getEnv("ALLOWED_ORIGINS", ""),
		SeedAdminPassword:    getEnv("SEED_ADMIN_PASSWORD", "Admin@123"),
		SeedEmployeePassword: getEnv("SEED_EMPLOYEE_PASSWORD", "Password123"),
	}

	missing := []string{}
	if cfg.DbDsn == "" {
		missing = append(missing, "DB_DSN")
	}
	if cfg.JwtSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	if cfg.DbDriver != "mysql" && cfg.DbDriver != "postgres" {
		return cfg, errors.New("unsupported DB_DRIVER: " + cfg.DbDriver)
	}

	return cfg, nil
}

// MailEnabled reports whether enough SMTP settings are present to send mail.
func (c Config) MailEnabled() bool {
	return c.SmtpHost != "" && c.SmtpFrom != ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
