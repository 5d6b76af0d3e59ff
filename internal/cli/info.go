package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/config"
)

var infoCmd = &cobra.Command{
	Use:   "info <folder> <emote>",
	Short: "Show detailed information about a sticker",
	Long: `Display detailed information about a single sticker, identified by its
folder and emote name.`,
	Args: cobra.ExactArgs(2),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	folder, emoteName := args[0], args[1]

	cfg, database, err := openCatalog()
	if err != nil {
		return trackCLIError("info", err)
	}
	defer func() { _ = database.Close() }()

	sticker, err := database.GetSticker(folder, emoteName)
	if err != nil {
		return trackCLIError("info", fmt.Errorf("look up sticker: %w", err))
	}
	if sticker == nil {
		return trackCLIError("info", fmt.Errorf("sticker %s/%s not found", folder, emoteName))
	}

	telemetryClient.TrackStickerInfoViewed(folder, len(sticker.Tags), sticker.Animated)

	fmt.Printf("Emote: %s\n", sticker.EmoteName)
	fmt.Printf("Folder: %s\n", sticker.FolderName)
	fmt.Printf("7TV id: %s\n", sticker.SevenTVID)
	fmt.Printf("File: %s\n", sticker.FileName)
	fmt.Printf("URL: %s\n", sticker.URL)
	if sticker.OwnerName != "" {
		fmt.Printf("Owner: %s\n", sticker.OwnerName)
	}
	fmt.Printf("Animated: %v\n", sticker.Animated)
	fmt.Printf("Added: %s\n", sticker.CreatedAt.Format("2006-01-02 15:04"))

	if len(sticker.Tags) > 0 {
		fmt.Printf("\nTags: %s\n", strings.Join(sticker.TagList(), ", "))
	}

	if user, err := database.GetUserByFolder(folder); err == nil {
		if user != nil {
			fmt.Printf("\nFolder owner: %s (last synced %s)\n", user.DisplayName, formatTimeSince(user.LastSyncedAt))
		} else {
			fmt.Println("\nFolder owner: none registered")
		}
	}

	fmt.Printf("\nExpected file location: %s\n", config.AssetPath(cfg, sticker.FolderName, sticker.FileName))

	return nil
}
