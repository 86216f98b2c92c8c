package config

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	VerifierIDToken = "idtoken"
	VerifierOIDC    = "oidc"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	GoogleClientID  string `env:"GOOGLE_CLIENT_ID,required,notEmpty"`
	VerifierBackend string `env:"VERIFIER_BACKEND" envDefault:"idtoken"`
	OIDCIssuerURL   string `env:"OIDC_ISSUER_URL" envDefault:"https://accounts.google.com"`

	Database DatabaseConfig

	JWTSecret        string        `env:"JWT_SECRET,required,notEmpty"`
	JWTAccessExpiry  time.Duration `env:"JWT_ACCESS_EXPIRATION,required,notEmpty"`
	JWTRefreshExpiry time.Duration `env:"JWT_REFRESH_EXPIRATION,required,notEmpty"`
}

// DatabaseConfig is the store connection, loadable on its own for tooling
// that needs nothing else.
type DatabaseConfig struct {
	URL         string `env:"DATABASE_URL,required,notEmpty"`
	Key         string `env:"DATABASE_KEY"`
	Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`
}

var parseOptions = env.Options{
	FuncMap: map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(time.Duration(0)): func(v string) (interface{}, error) {
			return ParseDuration(v)
		},
	},
}

// ParseDuration accepts everything time.ParseDuration does plus a whole or
// fractional day count with a "d" suffix ("7d", "1.5d").
func ParseDuration(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if days, ok := strings.CutSuffix(v, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil {
			return 0, fmt.Errorf("unable to parse duration %q", v)
		}
		return time.Duration(n * float64(24*time.Hour)), nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("unable to parse duration %q: %w", v, err)
	}
	return d, nil
}

// Load reads configuration from the environment, after loading a .env file if
// one exists. Any missing required value is returned as an error; callers
// treat it as fatal.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.ParseWithOptions(&cfg, parseOptions); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDatabase reads only the database settings.
func LoadDatabase() (*DatabaseConfig, error) {
	_ = godotenv.Load()

	var cfg DatabaseConfig
	if err := env.ParseWithOptions(&cfg, parseOptions); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *DatabaseConfig) validate() error {
	switch c.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s (supported: postgres, sqlite)", c.Driver)
	}
}

func (c *Config) validate() error {
	if err := c.Database.validate(); err != nil {
		return err
	}
	switch c.VerifierBackend {
	case VerifierIDToken, VerifierOIDC:
	default:
		return fmt.Errorf("unsupported VERIFIER_BACKEND: %s (supported: idtoken, oidc)", c.VerifierBackend)
	}
	if c.JWTAccessExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION must be positive, got %s", c.JWTAccessExpiry)
	}
	if c.JWTRefreshExpiry <= 0 {
		return fmt.Errorf("JWT_REFRESH_EXPIRATION must be positive, got %s", c.JWTRefreshExpiry)
	}
	return nil
}

// DSN returns the database connection string. For postgres URLs a separately
// configured DATABASE_KEY is used as the password.
func (c *DatabaseConfig) DSN() (string, error) {
	if c.Driver != DriverPostgres || c.Key == "" {
		return c.URL, nil
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("DATABASE_KEY requires a postgres:// DATABASE_URL, got scheme %q", u.Scheme)
	}
	username := ""
	if u.User != nil {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, c.Key)
	return u.String(), nil
}
