package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "", c.APIURL)
	assert.Equal(t, "localhost", c.Host)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "http://localhost:8000", c.BaseURL())
	assert.NotEmpty(t, c.CookieDB)
}

func TestDeriveBaseURL(t *testing.T) {
	tests := map[string]string{
		"":               "http://localhost:8000",
		"localhost":      "http://localhost:8000",
		"127.0.0.1":      "http://localhost:8000",
		"localhost:5173": "http://localhost:8000",
		"diary.lan":      "http://diary.lan:8000",
		"10.0.0.7:3000":  "http://10.0.0.7:8000",
	}
	for host, want := range tests {
		assert.Equal(t, want, DeriveBaseURL(host), host)
	}
}

func TestBaseURL_ExplicitWins(t *testing.T) {
	c := Config{APIURL: "https://api.example.com/", Host: "diary.lan"}
	assert.Equal(t, "https://api.example.com", c.BaseURL())
}

func TestLoad_JSONFile(t *testing.T) {
	p := writeFile(t, "cfg.json", `{"host":"diary.lan","request_timeout":"3s","log_backend":"zap"}`)

	c, err := Load(p, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "diary.lan", c.Host)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, "zap", c.LogBackend)
	assert.Equal(t, "warn", c.LogLevel, "keys missing from the file keep defaults")
}

func TestLoad_YAMLFile(t *testing.T) {
	p := writeFile(t, "cfg.yaml", "api_url: http://api:9000\nrequest_timeout: 2000000000\n")

	c, err := Load(p, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "http://api:9000", c.BaseURL())
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), noEnv)
	require.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", `{"host":`), noEnv)
	require.Error(t, err)

	_, err = Load(writeFile(t, "bad.yml", "request_timeout: soon\n"), noEnv)
	require.Error(t, err)
}

func TestPrecedence(t *testing.T) {
	p := writeFile(t, "cfg.json", `{"api_url":"http://file:1","host":"file.lan","log_level":"info","cookie_db":"/file.db"}`)
	env := envOf(map[string]string{
		EnvAPIURL:   "http://env:2",
		EnvLogLevel: "error",
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", p, "--api-url", "http://flag:3", "--timeout", "1s"}))

	c, err := f.Resolve(fs, env)
	require.NoError(t, err)

	assert.Equal(t, "http://flag:3", c.APIURL, "flag beats env and file")
	assert.Equal(t, "error", c.LogLevel, "env beats file")
	assert.Equal(t, "file.lan", c.Host, "file beats default")
	assert.Equal(t, "/file.db", c.CookieDB)
	assert.Equal(t, time.Second, c.RequestTimeout)
	assert.Equal(t, "text", c.LogFormat, "unset flags keep earlier values")
}

func TestLogOptions(t *testing.T) {
	c := Config{LogBackend: "zap", LogLevel: "debug", LogFormat: "json"}
	o := c.LogOptions()
	assert.Equal(t, "zap", o.Backend)
	assert.Equal(t, "debug", o.Level)
	assert.Equal(t, "json", o.Format)
}
