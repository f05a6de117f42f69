package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophdiary/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used only for decoding config files. Pointers tell
// "absent" from "empty" so a file overrides only the keys it sets.
type fileConfig struct {
	APIURL         *string         `json:"api_url" yaml:"api_url"`
	Host           *string         `json:"host" yaml:"host"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	CookieDB       *string         `json:"cookie_db" yaml:"cookie_db"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogFormat      *string         `json:"log_format" yaml:"log_format"`
	LogBackend     *string         `json:"log_backend" yaml:"log_backend"`
}

// parseFile overlays cfg with the file at path. The format follows the
// extension: .yaml and .yml are YAML, anything else JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.APIURL, fc.APIURL)
	setString(&cfg.Host, fc.Host)
	setString(&cfg.CookieDB, fc.CookieDB)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogBackend, fc.LogBackend)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
