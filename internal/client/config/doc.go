// Package config loads runtime configuration for the diary client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with --config; .yaml/.yml files are
//     YAML, anything else JSON.
//  3. Environment: DIARY_API_URL, DIARY_HOST, DIARY_COOKIE_DB,
//     DIARY_LOG_LEVEL.
//  4. Command-line flags set explicitly by the user.
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:8000",
//	  "request_timeout": "10s",
//	  "log_level": "debug"
//	}
//
// When no API URL is configured, BaseURL derives it from the host: local
// hosts map to http://localhost:8000, other hosts to port 8000 of the same
// name.
package config
