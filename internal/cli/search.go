package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchMatchAll bool

var searchCmd = &cobra.Command{
	Use:   "search <tag> [tag...]",
	Short: "Search stickers by tag",
	Long: `Search stickers by tag, across all folders.

By default a sticker matches when it carries at least one of the queried
tags. With --all every queried tag must be present.

Examples:
  stickerdex search funny
  stickerdex search funny rare --all`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchMatchAll, "all", false, "Require every queried tag")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, database, err := openCatalog()
	if err != nil {
		return trackCLIError("search", err)
	}
	defer func() { _ = database.Close() }()

	matchAll := searchMatchAll || cfg.Search.MatchAll

	stickers, err := database.SearchStickersByTags(args, matchAll)
	if err != nil {
		return trackCLIError("search", fmt.Errorf("search: %w", err))
	}

	telemetryClient.TrackSearchPerformed(strings.Join(args, " "), len(stickers), matchAll)

	if len(stickers) == 0 {
		fmt.Printf("No stickers match %s.\n", strings.Join(args, ", "))
		return nil
	}

	shown := len(stickers)
	if cfg.Search.MaxResults > 0 && shown > cfg.Search.MaxResults {
		shown = cfg.Search.MaxResults
	}

	mode := "any of"
	if matchAll {
		mode = "all of"
	}
	fmt.Printf("MATCHES (%d stickers, %s: %s)\n", len(stickers), mode, strings.Join(args, ", "))
	fmt.Println("──────────────────────────────────────────────────")

	for _, sticker := range stickers[:shown] {
		fmt.Printf("  %s/%s%s\n", sticker.FolderName, sticker.EmoteName, animatedMarker(&sticker))
		fmt.Printf("    tags: %s\n", strings.Join(sticker.TagList(), ", "))
	}

	if shown < len(stickers) {
		fmt.Printf("\n…and %d more. Raise STICKERDEX_SEARCH_LIMIT to see them.\n", len(stickers)-shown)
	}

	return nil
}
