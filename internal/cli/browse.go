package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/config"
	"github.com/emotebox/stickerdex/internal/log"
	"github.com/emotebox/stickerdex/internal/telemetry"
	"github.com/emotebox/stickerdex/internal/tui"
	"github.com/emotebox/stickerdex/pkg/version"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Launch the interactive catalog browser.

Running stickerdex without a subcommand does the same thing.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

// runBrowse executes the TUI; it is also the root command's RunE.
func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, database, err := openCatalog()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	// The browser owns the terminal, so logging goes to the log file
	if err := log.Init(cfg.BaseDir); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = log.Close()
	}()

	paths := config.GetPaths(cfg)
	log.Printf("stickerdex %s starting\n", version.Short())
	log.Printf("base directory: %s\n", cfg.BaseDir)
	log.Printf("database: %s\n", paths.Database)

	stats, err := database.GetStats()
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}
	log.Printf("catalog: %d users, %d stickers, %d tags\n",
		stats.TotalUsers, stats.TotalStickers, stats.TotalTags)

	if telemetry.IsEnabled() {
		log.Printf("telemetry: on (anon id %s)\n", database.GetOrCreateTrackingID())
	} else {
		log.Println("telemetry: off")
	}

	telemetryClient.TrackAppStarted("tui", stats.TotalUsers > 0, int(stats.TotalUsers))

	return tui.Run(database, cfg, telemetryClient)
}
