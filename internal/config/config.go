package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultSecretKey   = "your-secret-key-change-this-in-production"
	DefaultDatabaseURL = "sqlite://recruitment.db"
	DefaultPort        = 5000
	DefaultMaxUpload   = 16 * 1024 * 1024 // 16MB
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"` // development, production, test
	} `yaml:"server"`

	// SecretKey подписывает cookie сессии
	SecretKey string `yaml:"secret_key"`

	Database struct {
		DSN             string        `yaml:"url"`
		MaxOpenConns    int           `yaml:"max_open_conns"`
		MaxIdleConns    int           `yaml:"max_idle_conns"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	Session struct {
		Store        string        `yaml:"store"` // database, redis
		TTL          time.Duration `yaml:"ttl"`
		CookieSecure bool          `yaml:"cookie_secure"`
	} `yaml:"session"`

	Redis struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`

	Email struct {
		Provider     string `yaml:"provider"` // log, smtp
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type            string `yaml:"type"`             // local, s3, cloudflare_r2, gcs
		BasePath        string `yaml:"base_path"`        // UPLOAD_FOLDER для local
		Bucket          string `yaml:"bucket"`           // S3/R2/GCS
		Region          string `yaml:"region"`           // S3
		AccessKey       string `yaml:"access_key"`       // S3/R2
		SecretKey       string `yaml:"secret_key"`       // S3/R2
		Endpoint        string `yaml:"endpoint"`         // R2, MinIO, fake-gcs
		CredentialsFile string `yaml:"credentials_file"` // GCS
	} `yaml:"storage"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`
		AllowedExtensions []string `yaml:"allowed_extensions"`
	} `yaml:"upload"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
	FirstAdminName     string `yaml:"first_admin_name"`
}

var AppConfig *Config

// Default возвращает конфигурацию со значениями по умолчанию.
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = DefaultPort
	cfg.Server.Env = "development"

	cfg.SecretKey = DefaultSecretKey

	cfg.Database.DSN = DefaultDatabaseURL
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MaxIdleConns = 5
	cfg.Database.ConnMaxLifetime = time.Hour

	cfg.Session.Store = "database"
	cfg.Session.TTL = 31 * 24 * time.Hour

	cfg.Email.Provider = "log"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromEmail = "noreply@recruitment.local"
	cfg.Email.FromName = "Recruitment"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "uploads"

	cfg.Upload.MaxSize = DefaultMaxUpload
	cfg.Upload.AllowedExtensions = []string{"pdf", "doc", "docx"}

	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.FirstAdminName = "Administrator"

	return &cfg
}

// Load собирает конфигурацию: значения по умолчанию -> .env ->
// YAML-файл (CONFIG_PATH или config/config.yaml) -> переменные окружения.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	explicit := configPath != ""
	if !explicit {
		configPath = "config/config.yaml"
	}
	if err := loadFile(cfg, configPath); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

// Validate проверяет значения, без которых сервер не стартует.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	switch c.Session.Store {
	case "database":
	case "redis":
		if c.Redis.URL == "" {
			return errors.New("REDIS_URL is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("unsupported session store: %s", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Upload.MaxSize <= 0 {
		return errors.New("UPLOAD_MAX_SIZE must be positive")
	}
	return nil
}

// IsProduction - true для любого окружения, кроме development и test.
func (c *Config) IsProduction() bool {
	return c.Server.Env != "development" && c.Server.Env != "test"
}

// LoadConfig загружает конфиг в AppConfig и завершает процесс при ошибке.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.SecretKey == DefaultSecretKey && cfg.IsProduction() {
		log.Println("WARNING: SECRET_KEY is the default value, sessions can be forged")
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
