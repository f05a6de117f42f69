package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

const (
	DefaultHost    = "localhost"
	DefaultAPIPort = "8000"
)

// Config holds runtime settings for the diary client.
//
// Fields:
//   - APIURL: backend base URL; when empty it is derived from Host.
//   - Host: host the front-end considers itself served from.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - CookieDB: path of the SQLite cookie store.
//   - LogLevel, LogFormat, LogBackend: see logging.Options.
type Config struct {
	APIURL         string
	Host           string
	RequestTimeout time.Duration
	CookieDB       string
	LogLevel       string
	LogFormat      string
	LogBackend     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = ""
	c.Host = DefaultHost
	c.RequestTimeout = 15 * time.Second
	c.CookieDB = DefaultCookieDB()
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
	c.LogBackend = logging.BackendSlog
}

// Load builds a Config from defaults, then the optional file at path, then
// the environment. Flags are applied afterwards by Flags.Apply.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	parseEnv(cfg, getenv)
	return cfg, nil
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Config) BaseURL() string {
	if c.APIURL != "" {
		return strings.TrimRight(c.APIURL, "/")
	}
	return DeriveBaseURL(c.Host)
}

// DeriveBaseURL maps the host the client runs on to the backend URL: local
// hosts use http://localhost:8000, any other host its own name on port 8000.
func DeriveBaseURL(host string) string {
	h := strings.TrimSpace(host)
	if hh, _, err := net.SplitHostPort(h); err == nil {
		h = hh
	}
	switch h {
	case "", "localhost", "127.0.0.1":
		return "http://localhost:" + DefaultAPIPort
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(h, DefaultAPIPort))
}

// LogOptions converts the logging fields.
func (c *Config) LogOptions() logging.Options {
	return logging.Options{Backend: c.LogBackend, Level: c.LogLevel, Format: c.LogFormat}
}

// DefaultCookieDB returns <user config dir>/gophdiary/cookies.db, falling
// back to the working directory.
func DefaultCookieDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gophdiary-cookies.db"
	}
	return filepath.Join(dir, "gophdiary", "cookies.db")
}
