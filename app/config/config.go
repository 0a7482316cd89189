package config

import (
	"database/sql"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	DatabaseURI string `env:"DATABASE_URI" envDefault:"host=localhost port=5432 user=postgres dbname=greenhill sslmode=disable"`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"greenhill-schools-secret-key"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir      string `env:"LOG_DIR" envDefault:"./logs"`
	TemplateDir string `env:"TEMPLATE_DIR" envDefault:"./app/templates"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"./static"`

	// UnpublishOnEdit reverts an exam's published results when marks are
	// edited afterwards. Default keeps publication sticky; see the marks
	// routes for the workflow.
	UnpublishOnEdit bool `env:"RESULTS_UNPUBLISH_ON_EDIT" envDefault:"false"`

	DB *sql.DB `env:"-"`
}

var AppConfig *Config

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// InitDB opens the Postgres pool and stores the config globally.
func InitDB(cfg *Config) error {
	db, err := sql.Open("postgres", cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	cfg.DB = db
	AppConfig = cfg
	return nil
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// JWTSecret returns the signing key for auth tokens.
func JWTSecret() []byte {
	return []byte(AppConfig.JWTSecret)
}

// UnpublishOnEdit reports the configured publication policy.
func UnpublishOnEdit() bool {
	return AppConfig.UnpublishOnEdit
}
