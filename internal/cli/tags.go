package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags and their usage counts",
	Long:  `List every tag in the catalog with the number of stickers carrying it, most used first.`,
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("tags", err)
	}
	defer func() { _ = database.Close() }()

	tags, err := database.ListTags()
	if err != nil {
		return trackCLIError("tags", fmt.Errorf("list tags: %w", err))
	}

	if len(tags) == 0 {
		fmt.Println("No tags yet. Tags appear as tagged stickers are added.")
		return nil
	}

	fmt.Printf("TAGS (%d)\n", len(tags))
	fmt.Println("──────────────────────────────────────────────────")

	for _, tag := range tags {
		noun := "stickers"
		if tag.Count == 1 {
			noun = "sticker"
		}
		fmt.Printf("  %-24s %d %s\n", tag.Name, tag.Count, noun)
	}

	return nil
}
