// Package config loads portal settings from an optional YAML file, a .env
// file and the process environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr            string        `yaml:"addr" validate:"required"`
		ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
		WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
		IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gt=0"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	} `yaml:"server"`

	API struct {
		BaseURL string        `yaml:"base_url" validate:"required,url"`
		Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	} `yaml:"api"`

	Database struct {
		Host     string `yaml:"host" validate:"required"`
		Port     string `yaml:"port" validate:"required"`
		User     string `yaml:"user" validate:"required"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname" validate:"required"`
	} `yaml:"database"`

	Redis struct {
		Host     string `yaml:"host" validate:"required"`
		Port     string `yaml:"port" validate:"required"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db" validate:"gte=0"`
	} `yaml:"redis"`

	Session struct {
		CookieName string        `yaml:"cookie_name" validate:"required"`
		TTL        time.Duration `yaml:"ttl" validate:"gt=0"`
		Secure     bool          `yaml:"secure"`
		CSRFKey    string        `yaml:"csrf_key" validate:"omitempty,len=32"`
	} `yaml:"session"`

	Cache struct {
		CatalogTTL      time.Duration `yaml:"catalog_ttl" validate:"gt=0"`
		RefreshInterval time.Duration `yaml:"refresh_interval" validate:"gt=0"`
		InflightTTL     time.Duration `yaml:"inflight_ttl" validate:"gt=0"`
	} `yaml:"cache"`

	Prefs struct {
		MaxAge          time.Duration `yaml:"max_age" validate:"gt=0"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" validate:"gt=0"`
	} `yaml:"prefs"`

	Uploads struct {
		MaxReceiptBytes int64 `yaml:"max_receipt_bytes" validate:"gt=0"`
	} `yaml:"uploads"`
}

func Default() *Config {
	cfg := &Config{}

	cfg.Server.Addr = ":8080"
	cfg.Server.ReadTimeout = 15 * time.Second
	cfg.Server.WriteTimeout = 30 * time.Second
	cfg.Server.IdleTimeout = 120 * time.Second
	cfg.Server.ShutdownTimeout = 10 * time.Second

	cfg.API.BaseURL = "http://localhost:8000"
	cfg.API.Timeout = 15 * time.Second

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.DBName = "cabin_portal"

	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = "6379"

	cfg.Session.CookieName = "portal_session"
	cfg.Session.TTL = 7 * 24 * time.Hour

	cfg.Cache.CatalogTTL = 5 * time.Minute
	cfg.Cache.RefreshInterval = 4 * time.Minute
	cfg.Cache.InflightTTL = 30 * time.Second

	cfg.Prefs.MaxAge = 30 * 24 * time.Hour
	cfg.Prefs.CleanupInterval = time.Hour

	cfg.Uploads.MaxReceiptBytes = 10 << 20

	return cfg
}

// Load reads the YAML file at path when given, then .env, then the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}

		log.Println(".env file not found, using OS environment.")
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// an in-flight key must outlive the API call it guards
	if cfg.Cache.InflightTTL <= cfg.API.Timeout {
		return nil, fmt.Errorf("invalid config: cache.inflight_ttl (%s) must exceed api.timeout (%s)", cfg.Cache.InflightTTL, cfg.API.Timeout)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.Addr = getEnv("PORTAL_ADDR", c.Server.Addr)
	c.API.BaseURL = strings.TrimRight(getEnv("API_BASE_URL", c.API.BaseURL), "/")

	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.DBName = getEnv("DB_NAME", c.Database.DBName)

	c.Redis.Host = getEnv("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = getEnv("REDIS_PORT", c.Redis.Port)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)

	c.Session.CookieName = getEnv("SESSION_COOKIE", c.Session.CookieName)
	c.Session.CSRFKey = getEnv("CSRF_KEY", c.Session.CSRFKey)

	var err error
	if c.API.Timeout, err = getEnvDuration("API_TIMEOUT", c.API.Timeout); err != nil {
		return err
	}

	if c.Session.TTL, err = getEnvDuration("SESSION_TTL", c.Session.TTL); err != nil {
		return err
	}

	if c.Session.Secure, err = getEnvBool("COOKIE_SECURE", c.Session.Secure); err != nil {
		return err
	}

	if c.Redis.DB, err = getEnvInt("REDIS_DB", c.Redis.DB); err != nil {
		return err
	}

	mb, err := getEnvInt("MAX_RECEIPT_MB", 0)
	if err != nil {
		return err
	}

	if mb > 0 {
		c.Uploads.MaxReceiptBytes = int64(mb) << 20
	}

	return nil
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return d, nil
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}

	return b, nil
}
