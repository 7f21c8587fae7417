package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepo = "wpbridge/wpbridge"

var checkOnly bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update wpbridge to the latest release",
	RunE:  runUpdate,
	// Updating needs no config or upstream connection
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for a newer release")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if appVersion == "dev" {
		return fmt.Errorf("cannot self-update a development build")
	}

	current, err := semver.ParseTolerant(strings.TrimPrefix(appVersion, "v"))
	if err != nil {
		return fmt.Errorf("invalid current version %q: %w", appVersion, err)
	}

	ctx := context.Background()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepo))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseRepo)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("Already up to date (version %s)\n", current)
		return nil
	}

	fmt.Printf("New release available: %s -> %s\n", current, latest.Version())
	if checkOnly {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}

	fmt.Printf("Updated to version %s\n", latest.Version())
	return nil
}
