package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrUnknownDriver = errors.New("unknown DATABASE_DRIVER")
	ErrMissingDSN    = errors.New("DATABASE_URL is required for the postgres driver")
)

type Config struct {
	// SecretKey is the HMAC secret for access tokens. Startup fails without it.
	SecretKey string `env:"SECRET_KEY,required,notEmpty"`
	Issuer    string `env:"AUTH_ISSUER" envDefault:"tenancy"`

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`   // sqlite or postgres
	DatabaseFile   string `env:"DATABASE_FILE" envDefault:"tenancy.db"` // SQLite database file
	DatabaseURL    string `env:"DATABASE_URL"`                          // Postgres DSN

	Env                 string        `env:"ENV" envDefault:"dev"`                   // Environment (dev, staging, prod)
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`            // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`           // json or text
	Port                int           `env:"PORT" envDefault:"3000"`                 // HTTP server port
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"` // Graceful shutdown timeout
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// win over it.
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cross-field rules env tags cannot express.
func (c Config) Validate() error {
	switch strings.ToLower(c.DatabaseDriver) {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DatabaseDriver)
	}
	return nil
}
