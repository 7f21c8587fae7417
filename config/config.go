package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".wpbridge"))
		}

		// Check /etc
		v.AddConfigPath("/etc/wpbridge/")
	}

	v.SetEnvPrefix("WPBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// WordPress defaults
	v.SetDefault("wordpress.url", "http://localhost:8080")
	v.SetDefault("wordpress.page_size", 100)

	// Auth defaults
	v.SetDefault("auth.listen_addr", ":8100")
	v.SetDefault("auth.session_ttl", "24h")
	v.SetDefault("auth.cookie_name", "wpbridge_session")
	v.SetDefault("auth.cookie_path", "/")
	v.SetDefault("auth.cookie_same_site", "lax")

	// Export defaults
	v.SetDefault("export.dir", "./content")
	v.SetDefault("export.collections", []string{"posts", "pages"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.WordPress.URL == "" {
		return fmt.Errorf("wordpress.url is required")
	}

	if cfg.WordPress.PageSize < 1 || cfg.WordPress.PageSize > 100 {
		return fmt.Errorf("wordpress.page_size must be between 1 and 100")
	}

	if cfg.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive")
	}

	// Validate cookie same-site mode
	validSameSite := map[string]bool{
		"lax":    true,
		"strict": true,
		"none":   true,
	}
	if !validSameSite[strings.ToLower(cfg.Auth.CookieSameSite)] {
		return fmt.Errorf("invalid auth.cookie_same_site: %s", cfg.Auth.CookieSameSite)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
