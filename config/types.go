package config

import (
	"net/http"
	"strings"
	"time"
)

// Config represents the complete configuration structure
type Config struct {
	WordPress WordPressConfig `mapstructure:"wordpress"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Export    ExportConfig    `mapstructure:"export"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// WordPressConfig holds the upstream connection details
type WordPressConfig struct {
	URL         string `mapstructure:"url"`
	Username    string `mapstructure:"username"`
	AppPassword string `mapstructure:"app_password"`
	PageSize    int    `mapstructure:"page_size"`
	UserAgent   string `mapstructure:"user_agent"`
}

// AuthConfig controls the login bridge and its session cookie
type AuthConfig struct {
	ListenAddr     string        `mapstructure:"listen_addr"`
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
	CookieName     string        `mapstructure:"cookie_name"`
	CookiePath     string        `mapstructure:"cookie_path"`
	CookieSameSite string        `mapstructure:"cookie_same_site"`
	CookieSecure   bool          `mapstructure:"cookie_secure"`
}

// SameSiteMode maps the configured cookie_same_site value onto http.SameSite.
func (a AuthConfig) SameSiteMode() http.SameSite {
	switch strings.ToLower(a.CookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// RedisConfig holds the optional external session store connection
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// FilterConfig contains named filter presets
type FilterConfig map[string]string

// ExportConfig controls collection snapshot exports
type ExportConfig struct {
	Dir         string   `mapstructure:"dir"`
	Collections []string `mapstructure:"collections"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
