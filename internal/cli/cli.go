// Package cli provides the command-line interface for Stickerdex.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/config"
	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/telemetry"
	"github.com/emotebox/stickerdex/pkg/version"
)

var telemetryClient telemetry.Client

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "stickerdex",
	Short: "Local emote and sticker catalog",
	Long: `Local emote and sticker catalog

An offline catalog of emotes collected from an external emote service,
grouped into per-user folders and searchable by tag.

Run without arguments to launch the interactive browser.

Telemetry:
  Telemetry is enabled by default, always anonymous, and will never track
  personal information, custom/local data, or IP addresses.

  It will only be used to improve Stickerdex.

  Opt-out with:
  	STICKERDEX_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	RunE:         runBrowse,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Track command execution (skip for the root browser command)
		if cmd.Name() != "stickerdex" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}

		// Track help viewed if --help was used
		if cmd.Flags().Changed("help") {
			telemetryClient.TrackCLIHelpViewed(cmd.Name(), os.Args[1:])
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(usersCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New(nil)
	}
	telemetryClient = tc

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)

	// Track app exit for CLI mode (non-browser subcommands)
	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "stickerdex" {
		durationMs := time.Since(commandStartTime).Milliseconds()
		telemetryClient.TrackAppExited("cli", durationMs, 1)
	}

	return err
}

// openCatalog loads configuration and opens the catalog database. Every
// command goes through here so the DSN and pool settings stay uniform.
func openCatalog() (*config.Config, *db.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)
	dbCfg := db.DefaultConfig(paths.Database)
	dbCfg.Debug = cfg.Debug

	database, err := db.New(dbCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize database: %w", err)
	}

	return cfg, database, nil
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	errorType := classifyError(err)
	telemetryClient.TrackCLIError(cmdName, errorType)
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	errStr := err.Error()
	switch {
	case containsAny(errStr, "already registered", "already exists"):
		return "duplicate_error"
	case containsAny(errStr, "not found", "does not exist"):
		return "not_found_error"
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "database", "db"):
		return "database_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "invalid", "parse", "format"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// formatTimeSince formats a duration since a time in a human-readable way.
func formatTimeSince(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("2006-01-02")
	}
}
