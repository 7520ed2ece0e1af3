package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host        string   `yaml:"host"`
		Port        int      `yaml:"port"`
		Env         string   `yaml:"env"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	Database struct {
		DSN          string `yaml:"url"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
	} `yaml:"database"`

	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
		// TTL в минутах
		TokenTTL  int    `yaml:"token_ttl"`
		LoginPage string `yaml:"login_page"`
	} `yaml:"auth"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		// таймаут одной рассылки в секундах
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"email"`

	Admin struct {
		FirstAdminEmail    string `yaml:"first_admin_email"`
		FirstAdminPassword string `yaml:"first_admin_password"`
		FirstAdminName     string `yaml:"first_admin_name"`
	} `yaml:"admin"`
}

// TokenTTL - время жизни access token
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTL) * time.Minute
}

var AppConfig *Config

// LoadConfig читает .env (если есть), затем YAML, затем поверх - переменные окружения.
// Без YAML-файла конфигурация собирается только из окружения и дефолтов.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if err := loadFile(cfg, configPath); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database url is not configured (set DATABASE_URL or database.url)")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured (set JWT_SECRET or auth.jwt_secret)")
	}

	AppConfig = cfg
	return cfg, nil
}

// Default - значения, с которыми приложение поднимается локально
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	cfg.Database.MaxOpenConns = 25
	cfg.Database.MaxIdleConns = 5
	cfg.Auth.TokenTTL = 24 * 60
	cfg.Auth.LoginPage = "/login"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "Ambassadors Talent Agency"
	cfg.Email.TimeoutSeconds = 10
	cfg.Admin.FirstAdminName = "Administrator"
	return cfg
}

func loadFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Database.DSN, "DATABASE_URL")
	setString(&cfg.Server.Env, "SERVER_ENV")
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setInt(&cfg.Auth.TokenTTL, "JWT_TTL")
	setString(&cfg.Auth.LoginPage, "LOGIN_PAGE")
	setString(&cfg.Admin.FirstAdminEmail, "FIRST_ADMIN_EMAIL")
	setString(&cfg.Admin.FirstAdminPassword, "FIRST_ADMIN_PASSWORD")
	setString(&cfg.Email.SMTPHost, "SMTP_HOST")
	setInt(&cfg.Email.SMTPPort, "SMTP_PORT")
	setString(&cfg.Email.SMTPUsername, "SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "SMTP_PASSWORD")
	setString(&cfg.Email.FromEmail, "SMTP_FROM")
	setInt(&cfg.Email.TimeoutSeconds, "SMTP_TIMEOUT")

	if v := os.Getenv("EMAIL_ENABLED"); v != "" {
		cfg.Email.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Server.CORSOrigins = strings.Split(v, ",")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// GetConfig возвращает загруженную конфигурацию
func GetConfig() *Config {
	return AppConfig
}
