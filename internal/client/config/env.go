package config

const (
	EnvAPIURL   = "DIARY_API_URL"
	EnvHost     = "DIARY_HOST"
	EnvCookieDB = "DIARY_COOKIE_DB"
	EnvLogLevel = "DIARY_LOG_LEVEL"
)

// parseEnv overlays cfg with the non-empty DIARY_* variables.
func parseEnv(cfg *Config, getenv func(string) string) {
	for key, dst := range map[string]*string{
		EnvAPIURL:   &cfg.APIURL,
		EnvHost:     &cfg.Host,
		EnvCookieDB: &cfg.CookieDB,
		EnvLogLevel: &cfg.LogLevel,
	} {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
}
