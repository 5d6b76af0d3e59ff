package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "list <folder>",
	Aliases: []string{"ls"},
	Short:   "List the stickers in a folder (alias: ls)",
	Long: `List all stickers in a folder, in insertion order.

Shows each sticker's emote name, tags and animation flag.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	folder := args[0]

	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("list", err)
	}
	defer func() { _ = database.Close() }()

	stickers, err := database.ListStickersByFolder(folder)
	if err != nil {
		return trackCLIError("list", fmt.Errorf("list folder: %w", err))
	}

	telemetryClient.TrackFolderListed(folder, len(stickers))

	if len(stickers) == 0 {
		fmt.Printf("Folder %s is empty.\n", folder)
		fmt.Println("\nUse 'stickerdex add' or 'stickerdex import' to fill it.")
		return nil
	}

	owner := ""
	if user, err := database.GetUserByFolder(folder); err == nil && user != nil {
		owner = user.DisplayName
	}

	if owner != "" {
		fmt.Printf("%s — %s (%d stickers)\n", folder, owner, len(stickers))
	} else {
		fmt.Printf("%s (%d stickers, no registered user)\n", folder, len(stickers))
	}
	fmt.Println("──────────────────────────────────────────────────")

	for _, sticker := range stickers {
		fmt.Printf("  %s%s\n", sticker.EmoteName, animatedMarker(&sticker))
		if len(sticker.Tags) > 0 {
			fmt.Printf("    tags: %s\n", strings.Join(sticker.TagList(), ", "))
		}
	}

	return nil
}

// animatedMarker returns the suffix shown next to animated stickers.
func animatedMarker(s *models.Sticker) string {
	if s.Animated {
		return " ▶"
	}
	return ""
}
