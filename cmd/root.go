package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wpbridge/wpbridge/config"
	"github.com/wpbridge/wpbridge/wordpress"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	wpClient *wordpress.Client

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
)

// SetVersion records the build metadata stamped in by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wpbridge",
	Short: "A bridge between static-site builds and the WordPress REST API",
	Long: `wpbridge is a CLI tool that pulls content from a WordPress site through
its REST API for static-site builds, and runs a small auth bridge that logs
users in through the WordPress login form and tracks sessions locally.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the WordPress client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create WordPress client
	opts := []wordpress.Option{
		wordpress.WithPageSize(cfg.WordPress.PageSize),
	}
	if cfg.WordPress.Username != "" {
		opts = append(opts, wordpress.WithBasicAuth(cfg.WordPress.Username, cfg.WordPress.AppPassword))
	}
	if cfg.WordPress.UserAgent != "" {
		opts = append(opts, wordpress.WithUserAgent(cfg.WordPress.UserAgent))
	}

	wpClient, err = wordpress.NewClient(cfg.WordPress.URL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create WordPress client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when the config allows it and stderr is a
	// terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilterExpression resolves the filter from the flag or a config preset
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("cannot use both --filter and --preset")
	}

	if preset != "" {
		expr, ok := cfg.Filter[preset]
		if !ok {
			return "", fmt.Errorf("preset not found in config: %s", preset)
		}
		return expr, nil
	}

	return filterExpr, nil
}
