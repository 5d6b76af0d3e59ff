package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/pkg/version"
)

var reportRaw bool

var reportCmd = &cobra.Command{
	Use:   "report [folder]",
	Short: "Render a Markdown catalog report",
	Long: `Render a Markdown report of the catalog in the terminal.

Without arguments the report covers every folder; with a folder argument it
covers that folder only. Use --raw to emit plain Markdown for piping into a
file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "Emit plain Markdown without terminal rendering")
}

func runReport(cmd *cobra.Command, args []string) error {
	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("report", err)
	}
	defer func() { _ = database.Close() }()

	folders := args
	if len(folders) == 0 {
		folders, err = database.ListStickerFolders()
		if err != nil {
			return trackCLIError("report", fmt.Errorf("list folders: %w", err))
		}
	}

	md, err := buildReport(database, folders)
	if err != nil {
		return trackCLIError("report", err)
	}

	if reportRaw {
		fmt.Print(md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Fall back to plain markdown if the renderer cannot start
		fmt.Print(md)
		return nil
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		fmt.Print(md)
		return nil
	}

	fmt.Print(rendered)
	return nil
}

// buildReport assembles the Markdown report for the given folders.
func buildReport(database *db.DB, folders []string) (string, error) {
	var b strings.Builder

	b.WriteString("# Stickerdex Catalog Report\n\n")

	stats, err := database.GetStats()
	if err != nil {
		return "", fmt.Errorf("get stats: %w", err)
	}
	fmt.Fprintf(&b, "%d users, %d stickers (%d animated), %d tags. Generated by stickerdex %s.\n",
		stats.TotalUsers, stats.TotalStickers, stats.AnimatedCount, stats.TotalTags, version.Short())

	for _, folder := range folders {
		stickers, err := database.ListStickersByFolder(folder)
		if err != nil {
			return "", fmt.Errorf("list folder %s: %w", folder, err)
		}

		fmt.Fprintf(&b, "\n## %s\n\n", folder)

		user, err := database.GetUserByFolder(folder)
		if err != nil {
			return "", fmt.Errorf("look up user for %s: %w", folder, err)
		}
		if user != nil {
			fmt.Fprintf(&b, "Owner: **%s** (7TV `%s`), last synced %s, %d emotes reported.\n\n",
				user.DisplayName, user.SevenTVID, user.LastSyncedAt.Format("2006-01-02"), user.EmoteCount)
		} else {
			b.WriteString("No registered user for this folder.\n\n")
		}

		if len(stickers) == 0 {
			b.WriteString("_Empty folder._\n")
			continue
		}

		b.WriteString("| Emote | Tags | Animated | Owner |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, s := range stickers {
			animated := ""
			if s.Animated {
				animated = "yes"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				s.EmoteName, strings.Join(s.TagList(), ", "), animated, s.OwnerName)
		}
	}

	return b.String(), nil
}
