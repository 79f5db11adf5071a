// Package config loads application configuration from environment variables,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	LogLevel  string // debug | info | warn | error
	LogFormat string // json | console

	RoomsFile string // optional room configuration file for the live registry

	DBUser string // MySQL room source; enabled when DBHost is set
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret            string // secret used to sign operator access tokens
	AccessTTLMin         int    // access token time-to-live in minutes
	OperatorUser         string // front-desk login name
	OperatorPasswordHash string // bcrypt hash of the front-desk password

	AMQPURL       string // broker for checkout notices; empty disables publishing
	BillingQueue  string // queue carrying checkout notices
	BillingLogDir string // directory of billing.log written by the consumer
}

// Load reads the environment (after applying any .env file in the working
// directory) and returns a Config with defaults filled in.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	amqpURL := os.Getenv("RABBITMQ_URL")
	if amqpURL == "" {
		amqpURL = os.Getenv("AMQP_URL")
	}
	return Config{
		Env:       envStr("APP_ENV", "dev"),
		Port:      envStr("APP_PORT", "8080"),
		LogLevel:  envStr("LOG_LEVEL", "info"),
		LogFormat: envStr("LOG_FORMAT", "json"),

		RoomsFile: os.Getenv("ROOMS_FILE"),

		DBUser: envStr("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: os.Getenv("DB_HOST"),
		DBPort: envStr("DB_PORT", "3306"),
		DBName: envStr("DB_NAME", "hotel"),

		JWTSecret:            os.Getenv("JWT_SECRET"),
		AccessTTLMin:         envInt("ACCESS_TOKEN_TTL_MIN", 60),
		OperatorUser:         envStr("OPERATOR_USER", "frontdesk"),
		OperatorPasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),

		AMQPURL:       amqpURL,
		BillingQueue:  envStr("BILLING_QUEUE", "room.checked_out"),
		BillingLogDir: envStr("BILLING_LOG_DIR", "logs"),
	}, nil
}

// UseDatabase reports whether rooms should be loaded from MySQL.
func (c Config) UseDatabase() bool { return c.DBHost != "" }

// ValidateServer reports the settings the HTTP server cannot start without.
func (c Config) ValidateServer() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.OperatorPasswordHash == "" {
		missing = append(missing, "OPERATOR_PASSWORD_HASH")
	}
	if c.RoomsFile == "" && !c.UseDatabase() {
		missing = append(missing, "ROOMS_FILE or DB_HOST")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	if c.AccessTTLMin <= 0 {
		return fmt.Errorf("invalid ACCESS_TOKEN_TTL_MIN: %d", c.AccessTTLMin)
	}
	return nil
}
