package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	IdentityModeHTTP = "http"
	IdentityModeJWT  = "jwt"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	IdentityMode        string
	IdentityBaseURL     string
	IdentityTimeoutSecs int
	JWTSecret           string
	ReviewerRole        string

	NotifyEnabled bool
	NotifyStream  string
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		log.Printf("config: ignoring non-numeric %s=%q", k, v)
	}
	return d
}

func getenvBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		log.Printf("config: ignoring non-boolean %s=%q", k, v)
	}
	return d
}

// Load reads a .env file when present, then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment only.
func FromEnv() *Config {
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loan_requests"),
		MySQLUser: getenv("MYSQL_USER", "loan"),
		MySQLPass: getenv("MYSQL_PASS", "loan"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getenvInt("REDIS_DB", 0),
		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		IdentityMode:        strings.ToLower(getenv("IDENTITY_MODE", IdentityModeHTTP)),
		IdentityBaseURL:     getenv("IDENTITY_BASE_URL", "http://identity:8081"),
		IdentityTimeoutSecs: getenvInt("IDENTITY_TIMEOUT_SECONDS", 5),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		ReviewerRole:        getenv("REVIEWER_ROLE", "ADVISOR"),

		NotifyEnabled: getenvBool("NOTIFY_ENABLED", true),
		NotifyStream:  getenv("NOTIFY_STREAM", "loan-request-events"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be > 0, got %d", c.IdempTTLSecs)
	}
	switch c.IdentityMode {
	case IdentityModeHTTP:
		if c.IdentityBaseURL == "" {
			return errors.New("missing IDENTITY_BASE_URL")
		}
		if c.IdentityTimeoutSecs <= 0 {
			return fmt.Errorf("IDENTITY_TIMEOUT_SECONDS must be > 0, got %d", c.IdentityTimeoutSecs)
		}
	case IdentityModeJWT:
		if c.JWTSecret == "" {
			return errors.New("missing JWT_SECRET for IDENTITY_MODE=jwt")
		}
	default:
		return fmt.Errorf("invalid IDENTITY_MODE %q (must be %q or %q)", c.IdentityMode, IdentityModeHTTP, IdentityModeJWT)
	}
	if c.ReviewerRole == "" {
		return errors.New("missing REVIEWER_ROLE")
	}
	if c.NotifyEnabled && c.NotifyStream == "" {
		return errors.New("missing NOTIFY_STREAM")
	}
	return nil
}

func (c *Config) IdempTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) IdentityTimeout() time.Duration {
	return time.Duration(c.IdentityTimeoutSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
