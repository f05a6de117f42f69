package config

import (
	"time"

	"github.com/spf13/pflag"
)

const (
	FlagConfig     = "config"
	FlagAPIURL     = "api-url"
	FlagHost       = "host"
	FlagTimeout    = "timeout"
	FlagCookieDB   = "cookie-db"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
	FlagLogBackend = "log-backend"
)

// Flags holds the raw values of the configuration flags.
type Flags struct {
	ConfigPath string

	apiURL     string
	host       string
	timeout    time.Duration
	cookieDB   string
	logLevel   string
	logFormat  string
	logBackend string
}

// RegisterFlags declares the configuration flags on fs, typically a cobra
// command's persistent flag set.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVarP(&f.ConfigPath, FlagConfig, "c", "", "config file (JSON or YAML)")
	fs.StringVar(&f.apiURL, FlagAPIURL, "", "backend base URL, e.g. http://localhost:8000")
	fs.StringVar(&f.host, FlagHost, "", "host used to derive the backend URL")
	fs.DurationVar(&f.timeout, FlagTimeout, 0, "request timeout")
	fs.StringVar(&f.cookieDB, FlagCookieDB, "", "path of the cookie store")
	fs.StringVar(&f.logLevel, FlagLogLevel, "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, FlagLogFormat, "", "log format: text or json")
	fs.StringVar(&f.logBackend, FlagLogBackend, "", "log backend: slog or zap")
	return f
}

// Apply overlays cfg with the flags the user set explicitly.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set(FlagAPIURL, &cfg.APIURL, f.apiURL)
	set(FlagHost, &cfg.Host, f.host)
	set(FlagCookieDB, &cfg.CookieDB, f.cookieDB)
	set(FlagLogLevel, &cfg.LogLevel, f.logLevel)
	set(FlagLogFormat, &cfg.LogFormat, f.logFormat)
	set(FlagLogBackend, &cfg.LogBackend, f.logBackend)
	if fs.Changed(FlagTimeout) {
		cfg.RequestTimeout = f.timeout
	}
}

// Resolve is Load followed by Apply.
func (f *Flags) Resolve(fs *pflag.FlagSet, getenv func(string) string) (*Config, error) {
	cfg, err := Load(f.ConfigPath, getenv)
	if err != nil {
		return nil, err
	}
	f.Apply(fs, cfg)
	return cfg, nil
}
