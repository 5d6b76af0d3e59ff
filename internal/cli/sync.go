package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/db"
)

var (
	syncEmoteCount int
	syncSevenTVID  string
)

var syncCmd = &cobra.Command{
	Use:   "sync [folder]",
	Short: "Record a completed sync for a user",
	Long: `Record a completed sync for a user.

Stamps the user's last-synced time with the current time and stores the
emote count the sync reported. The user is selected by folder name, or by
external identity with --id.

Stickerdex never contacts the emote service itself; this records the result
of a sync performed elsewhere.

Examples:
  stickerdex sync alice --emotes 42
  stickerdex sync --id 60ae3ae2aeec8e14e2f7c9d1 --emotes 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntVar(&syncEmoteCount, "emotes", 0, "Emote count reported by the sync (required)")
	syncCmd.Flags().StringVar(&syncSevenTVID, "id", "", "Select the user by external identity instead of folder")
	_ = syncCmd.MarkFlagRequired("emotes")
}

func runSync(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && syncSevenTVID == "" {
		return trackCLIError("sync", fmt.Errorf("a folder argument or --id is required"))
	}

	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("sync", err)
	}
	defer func() { _ = database.Close() }()

	label := syncSevenTVID
	if len(args) > 0 {
		label = args[0]
		err = database.RecordSyncByFolder(args[0], syncEmoteCount)
	} else {
		err = database.RecordSyncBySevenTVID(syncSevenTVID, syncEmoteCount)
	}
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return trackCLIError("sync", fmt.Errorf("user %s not found", label))
		}
		return trackCLIError("sync", fmt.Errorf("record sync: %w", err))
	}

	telemetryClient.TrackSyncRecorded(label, syncEmoteCount)

	fmt.Printf("Recorded sync for %s: %d emotes\n", label, syncEmoteCount)
	return nil
}
