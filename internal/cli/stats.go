package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long:  `Show aggregate catalog statistics: user, sticker and tag totals plus the database file size.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("stats", err)
	}
	defer func() { _ = database.Close() }()

	stats, err := database.GetStats()
	if err != nil {
		return trackCLIError("stats", fmt.Errorf("get stats: %w", err))
	}

	telemetryClient.TrackStatsViewed(stats.TotalUsers, stats.TotalStickers)

	fmt.Println("CATALOG")
	fmt.Println("──────────────────────────────────────────────────")
	fmt.Printf("  Users:    %d\n", stats.TotalUsers)
	fmt.Printf("  Stickers: %d (%d animated)\n", stats.TotalStickers, stats.AnimatedCount)
	fmt.Printf("  Tags:     %d\n", stats.TotalTags)
	if stats.DBSizeBytes > 0 {
		fmt.Printf("  Database: %.2f KB (%s)\n", float64(stats.DBSizeBytes)/1024, database.Path())
	}

	return nil
}
