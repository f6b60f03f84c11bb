package database

import (
	"cmp"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	defaultHost            = "localhost"
	defaultPort            = 5432
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = "15m"
	defaultConnTimeout     = "5s"
)

// Config describes the PostgreSQL store behind the forecast repository.
// A disabled database is never opened and needs no credentials.
type Config struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
}

// Env names the environment variables that override each Config field.
// Empty names are not consulted.
type Env struct {
	Enabled         string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
}

func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

// ConnTimeoutDuration bounds the startup connectivity check.
func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Dsn returns the keyword/value connection string used by the pgx driver.
func (c *Config) Dsn() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		c.Host, c.Port, c.Name, c.User, c.Password,
	)
}

// MigrateURL returns the golang-migrate pgx5 URL for the same database.
func (c *Config) MigrateURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Finalize fills defaults, applies env overrides, and validates.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge copies the non-zero fields of overlay onto c. An overlay can enable
// the database but never disable it.
func (c *Config) Merge(overlay *Config) {
	c.Enabled = c.Enabled || overlay.Enabled
	mergeString(&c.Host, overlay.Host)
	mergeInt(&c.Port, overlay.Port)
	mergeString(&c.Name, overlay.Name)
	mergeString(&c.User, overlay.User)
	mergeString(&c.Password, overlay.Password)
	mergeInt(&c.MaxOpenConns, overlay.MaxOpenConns)
	mergeInt(&c.MaxIdleConns, overlay.MaxIdleConns)
	mergeString(&c.ConnMaxLifetime, overlay.ConnMaxLifetime)
	mergeString(&c.ConnTimeout, overlay.ConnTimeout)
}

func (c *Config) loadDefaults() {
	c.Host = cmp.Or(c.Host, defaultHost)
	c.Port = cmp.Or(c.Port, defaultPort)
	c.MaxOpenConns = cmp.Or(c.MaxOpenConns, defaultMaxOpenConns)
	c.MaxIdleConns = cmp.Or(c.MaxIdleConns, defaultMaxIdleConns)
	c.ConnMaxLifetime = cmp.Or(c.ConnMaxLifetime, defaultConnMaxLifetime)
	c.ConnTimeout = cmp.Or(c.ConnTimeout, defaultConnTimeout)
}

func (c *Config) loadEnv(env *Env) {
	if v, ok := lookup(env.Enabled); ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	envString(env.Host, &c.Host)
	envInt(env.Port, &c.Port)
	envString(env.Name, &c.Name)
	envString(env.User, &c.User)
	envString(env.Password, &c.Password)
	envInt(env.MaxOpenConns, &c.MaxOpenConns)
	envInt(env.MaxIdleConns, &c.MaxIdleConns)
	envString(env.ConnMaxLifetime, &c.ConnMaxLifetime)
	envString(env.ConnTimeout, &c.ConnTimeout)
}

func (c *Config) validate() error {
	if !c.Enabled {
		return nil
	}

	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("database name required when the forecast store is enabled"))
	}
	if c.User == "" {
		errs = append(errs, errors.New("database user required when the forecast store is enabled"))
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errs = append(errs, fmt.Errorf("max_idle_conns %d exceeds max_open_conns %d", c.MaxIdleConns, c.MaxOpenConns))
	}
	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		errs = append(errs, fmt.Errorf("invalid conn_max_lifetime: %w", err))
	}
	if d, err := time.ParseDuration(c.ConnTimeout); err != nil {
		errs = append(errs, fmt.Errorf("invalid conn_timeout: %w", err))
	} else if d <= 0 {
		errs = append(errs, fmt.Errorf("conn_timeout must be positive, got %s", c.ConnTimeout))
	}
	return errors.Join(errs...)
}

func lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	v := os.Getenv(name)
	return v, v != ""
}

func envString(name string, dst *string) {
	if v, ok := lookup(name); ok {
		*dst = v
	}
}

func envInt(name string, dst *int) {
	if v, ok := lookup(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
