// Package config resolves process-wide settings once at start-up.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, PostgreSQL and Kafka settings.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	QueryTimeout   time.Duration

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string
}

// Load reads the env file at path (a missing file is ignored) and
// resolves every setting from the environment, falling back to defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		AppHost:    getEnv("APP_HOST", "localhost"),
		AppPort:    getEnv("APP_PORT", "8080"),
		LogLevel:   getEnv("APP_LOG_LEVEL", "info"),
		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "user"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:       getEnv("POSTGRES_DB", "database"),
		KafkaTopic: getEnv("KAFKA_TOPIC", "users.events"),
	}

	var err error
	if cfg.PGPort, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	timeoutSec, err := getInt("POSTGRES_QUERY_TIMEOUT_SECOND", 5)
	if err != nil {
		return nil, err
	}
	cfg.QueryTimeout = time.Duration(timeoutSec) * time.Second

	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
