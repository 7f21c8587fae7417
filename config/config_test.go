package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
wordpress:
  url: https://example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.WordPress.URL)
	assert.Equal(t, 100, cfg.WordPress.PageSize)
	assert.Equal(t, ":8100", cfg.Auth.ListenAddr)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "wpbridge_session", cfg.Auth.CookieName)
	assert.Equal(t, "/", cfg.Auth.CookiePath)
	assert.Equal(t, http.SameSiteLaxMode, cfg.Auth.SameSiteMode())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "./content", cfg.Export.Dir)
	assert.Equal(t, []string{"posts", "pages"}, cfg.Export.Collections)
}

func TestLoadFull(t *testing.T) {
	path := writeConfig(t, `
wordpress:
  url: https://example.com
  username: admin
  app_password: "xxxx yyyy"
  page_size: 25
auth:
  listen_addr: ":9000"
  session_ttl: 2h
  cookie_name: site_session
  cookie_same_site: strict
  cookie_secure: true
redis:
  addr: localhost:6379
  password: hunter2
filter:
  recent: 'Date > daysAgo(30)'
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.WordPress.Username)
	assert.Equal(t, 25, cfg.WordPress.PageSize)
	assert.Equal(t, ":9000", cfg.Auth.ListenAddr)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "site_session", cfg.Auth.CookieName)
	assert.Equal(t, http.SameSiteStrictMode, cfg.Auth.SameSiteMode())
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "Date > daysAgo(30)", cfg.Filter["recent"])
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing url",
			content: `
wordpress:
  url: ""
`,
			wantErr: "wordpress.url is required",
		},
		{
			name: "page size too large",
			content: `
wordpress:
  url: https://example.com
  page_size: 500
`,
			wantErr: "page_size",
		},
		{
			name: "bad same-site",
			content: `
wordpress:
  url: https://example.com
auth:
  cookie_same_site: sideways
`,
			wantErr: "cookie_same_site",
		},
		{
			name: "bad level",
			content: `
wordpress:
  url: https://example.com
logging:
  level: verbose
`,
			wantErr: "invalid logging level",
		},
		{
			name: "bad format",
			content: `
wordpress:
  url: https://example.com
logging:
  format: xml
`,
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSameSiteMode(t *testing.T) {
	assert.Equal(t, http.SameSiteStrictMode, AuthConfig{CookieSameSite: "Strict"}.SameSiteMode())
	assert.Equal(t, http.SameSiteNoneMode, AuthConfig{CookieSameSite: "none"}.SameSiteMode())
	assert.Equal(t, http.SameSiteLaxMode, AuthConfig{CookieSameSite: "lax"}.SameSiteMode())
	assert.Equal(t, http.SameSiteLaxMode, AuthConfig{}.SameSiteMode())
}
