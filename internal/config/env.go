package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// applyEnv переопределяет значения из переменных окружения.
// Некорректные числа игнорируются с предупреждением.
func applyEnv(cfg *Config) {
	envString("HOST", &cfg.Server.Host)
	envInt("PORT", &cfg.Server.Port)
	envString("SERVER_ENV", &cfg.Server.Env)

	envString("SECRET_KEY", &cfg.SecretKey)

	envString("DATABASE_URL", &cfg.Database.DSN)
	envInt("DB_MAX_OPEN_CONNS", &cfg.Database.MaxOpenConns)

	envString("SESSION_STORE", &cfg.Session.Store)
	envDuration("SESSION_TTL", &cfg.Session.TTL)
	envBool("SESSION_COOKIE_SECURE", &cfg.Session.CookieSecure)
	envString("REDIS_URL", &cfg.Redis.URL)

	envString("MAIL_PROVIDER", &cfg.Email.Provider)
	envString("SMTP_HOST", &cfg.Email.SMTPHost)
	envInt("SMTP_PORT", &cfg.Email.SMTPPort)
	envString("SMTP_USER", &cfg.Email.SMTPUsername)
	envString("SMTP_PASSWORD", &cfg.Email.SMTPPassword)
	envString("MAIL_FROM", &cfg.Email.FromEmail)

	envString("STORAGE_TYPE", &cfg.Storage.Type)
	envString("UPLOAD_FOLDER", &cfg.Storage.BasePath)
	envString("STORAGE_BUCKET", &cfg.Storage.Bucket)
	envString("STORAGE_REGION", &cfg.Storage.Region)
	envString("STORAGE_ENDPOINT", &cfg.Storage.Endpoint)
	envString("STORAGE_ACCESS_KEY", &cfg.Storage.AccessKey)
	envString("STORAGE_SECRET_KEY", &cfg.Storage.SecretKey)
	envString("GOOGLE_APPLICATION_CREDENTIALS", &cfg.Storage.CredentialsFile)

	envInt64("UPLOAD_MAX_SIZE", &cfg.Upload.MaxSize)

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = strings.Split(v, ",")
	}

	envString("FIRST_ADMIN_EMAIL", &cfg.FirstAdminEmail)
	envString("FIRST_ADMIN_PASSWORD", &cfg.FirstAdminPassword)
	envString("FIRST_ADMIN_NAME", &cfg.FirstAdminName)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("ignoring %s=%q: %v", key, v, err)
			return
		}
		*dst = n
	}
}

func envInt64(key string, dst *int64) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("ignoring %s=%q: %v", key, v, err)
			return
		}
		*dst = n
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("ignoring %s=%q: %v", key, v, err)
			return
		}
		*dst = b
	}
}

func envDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("ignoring %s=%q: %v", key, v, err)
			return
		}
		*dst = d
	}
}
