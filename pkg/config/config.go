package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHost    = "localhost"
	DefaultPort    = 5432
	DefaultSSLMode = "disable"
	DefaultDriver  = "postgres"
)

// Config holds the connection settings for one database session.
type Config struct {
	Name     string
	User     string
	Password string
	Host     string
	Port     int
	SSLMode  string
	Driver   string
}

// Load reads .env files (if any) and fills a Config from the environment.
// With no arguments a missing .env in the working directory is ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}

	port, err := envInt("DB_PORT", DefaultPort)
	if err != nil {
		return nil, err
	}

	return &Config{
		Name:     os.Getenv("DB_NAME"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Host:     envString("DB_HOST", DefaultHost),
		Port:     port,
		SSLMode:  envString("DB_SSLMODE", DefaultSSLMode),
		Driver:   envString("DB_DRIVER", DefaultDriver),
	}, nil
}

// Validate reports the first setting that would keep a session from opening.
func (c Config) Validate() error {
	switch {
	case c.Name == "":
		return errors.New("database name is empty")
	case c.User == "":
		return errors.New("database user is empty")
	case c.Port < 0 || c.Port > 65535:
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.Driver {
	case "", "postgres", "pgx":
	default:
		return fmt.Errorf("unsupported driver %q", c.Driver)
	}
	return nil
}

// DSN renders the settings as a postgres:// URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.host(), strconv.Itoa(c.port())),
		Path:   "/" + c.Name,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else if c.User != "" {
		u.User = url.User(c.User)
	}
	q := url.Values{}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = DefaultSSLMode
	}
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// DriverName returns the database/sql driver the session is opened with.
func (c Config) DriverName() string {
	if c.Driver == "" {
		return DefaultDriver
	}
	return c.Driver
}

func (c Config) host() string {
	if c.Host == "" {
		return DefaultHost
	}
	return c.Host
}

func (c Config) port() int {
	if c.Port == 0 {
		return DefaultPort
	}
	return c.Port
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
