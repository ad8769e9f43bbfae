package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Server holds HTTP server settings.
type Server struct {
	Port string `mapstructure:"port"`
}

// Database holds PostgreSQL connection settings. URL takes precedence over
// the individual fields when set.
type Database struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// JWT holds token signing settings.
type JWT struct {
	Secret   string `mapstructure:"secret"`
	TTLHours int    `mapstructure:"ttl_hours"`
}

// LiqPay holds payment gateway credentials.
type LiqPay struct {
	PublicKey  string `mapstructure:"public_key"`
	PrivateKey string `mapstructure:"private_key"`
	APIURL     string `mapstructure:"api_url"`
}

// SMTP holds outgoing mail settings. An empty Host disables real delivery.
type SMTP struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Uploads holds image storage settings.
type Uploads struct {
	Dir           string `mapstructure:"dir"`
	BackupDir     string `mapstructure:"backup_dir"`
	BaseURL       string `mapstructure:"base_url"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// RateLimit holds the per-IP request cap.
type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Logger holds logging settings.
type Logger struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// Config is the root application configuration.
type Config struct {
	Server    Server    `mapstructure:"server"`
	Database  Database  `mapstructure:"database"`
	JWT       JWT       `mapstructure:"jwt"`
	LiqPay    LiqPay    `mapstructure:"liqpay"`
	SMTP      SMTP      `mapstructure:"smtp"`
	Uploads   Uploads   `mapstructure:"uploads"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
	Logger    Logger    `mapstructure:"logger"`
}

// Load reads config.yaml (if present) and environment variables into a
// Config. Env vars win, with dots replaced by underscores, e.g. JWT_SECRET
// overrides jwt.secret.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, env vars and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "online_store")
	v.SetDefault("database.sslmode", "disable")

	// Empty defaults keep env-only keys visible to Unmarshal.
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl_hours", 168) // 7 days

	v.SetDefault("liqpay.public_key", "")
	v.SetDefault("liqpay.private_key", "")
	v.SetDefault("liqpay.api_url", "https://www.liqpay.ua/api/request")

	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")

	v.SetDefault("uploads.base_url", "")
	v.SetDefault("uploads.dir", "./uploads")
	v.SetDefault("uploads.backup_dir", "./backup/uploads")
	v.SetDefault("uploads.retention_days", 4)

	v.SetDefault("rate_limit.rps", 10)
	v.SetDefault("rate_limit.burst", 20)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.file_path", "./logs/app.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}
