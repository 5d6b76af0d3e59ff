package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"github.com/emotebox/stickerdex/internal/assets"
	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/models"
)

var (
	addSevenTVID string
	addEmoteName string
	addURL       string
	addFileName  string
	addOwner     string
	addTags      string
	addAnimated  bool
	addMIME      string
)

var addCmd = &cobra.Command{
	Use:     "add <folder>",
	Aliases: []string{"a"},
	Short:   "Add a sticker to a folder (alias: a)",
	Long: `Add a sticker to a folder.

The same external emote may live in any number of folders, but only once per
folder. The folder does not need a registered user; orphan folders are
allowed.

When --file is omitted the stored file name is derived from the emote name,
the external id and the content type given with --mime.

Examples:
  stickerdex add alice --id 603caa69faf3a00d9deb30fb --name Kappa \
    --url https://cdn.7tv.app/emote/603caa69faf3a00d9deb30fb/4x.webp \
    --tags funny,rare --mime image/webp`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addSevenTVID, "id", "", "External emote identity (required)")
	addCmd.Flags().StringVar(&addEmoteName, "name", "", "Emote display name (required)")
	addCmd.Flags().StringVar(&addURL, "url", "", "Source URL (required)")
	addCmd.Flags().StringVar(&addFileName, "file", "", "Stored file name (derived when omitted)")
	addCmd.Flags().StringVar(&addOwner, "owner", "", "Attribution: the emote's original owner")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags")
	addCmd.Flags().BoolVar(&addAnimated, "animated", false, "Mark the sticker as animated")
	addCmd.Flags().StringVar(&addMIME, "mime", "", "Content type used to pick the file extension")
	_ = addCmd.MarkFlagRequired("id")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("url")
}

// parseTagsFlag splits a comma-separated tag list, trimming whitespace and
// dropping empty entries.
func parseTagsFlag(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func runAdd(cmd *cobra.Command, args []string) error {
	folder := args[0]

	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("add", err)
	}
	defer func() { _ = database.Close() }()

	fileName := addFileName
	if fileName == "" {
		fileName = assets.BuildFileName(addEmoteName, addSevenTVID, addMIME)
	}

	sticker := &models.Sticker{
		SevenTVID:  addSevenTVID,
		EmoteName:  addEmoteName,
		FileName:   fileName,
		URL:        addURL,
		OwnerName:  addOwner,
		Tags:       datatypes.NewJSONSlice(parseTagsFlag(addTags)),
		Animated:   addAnimated,
		FolderName: folder,
	}

	if err := database.InsertSticker(sticker); err != nil {
		if errors.Is(err, db.ErrDuplicateSticker) {
			return trackCLIError("add", fmt.Errorf("sticker %s already exists in folder %s", addSevenTVID, folder))
		}
		return trackCLIError("add", fmt.Errorf("insert sticker: %w", err))
	}

	telemetryClient.TrackStickerAdded(folder, len(sticker.Tags), sticker.Animated, false)

	fmt.Printf("Added %s to %s\n", sticker.EmoteName, folder)
	fmt.Printf("  File: %s\n", sticker.FileName)
	if len(sticker.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(sticker.TagList(), ", "))
	}
	if sticker.Animated {
		fmt.Println("  Animated: yes")
	}

	// Warn about orphan folders without blocking the insert
	user, err := database.GetUserByFolder(folder)
	if err == nil && user == nil {
		fmt.Printf("\nNote: folder %s has no registered user. Register one with 'stickerdex users add'.\n", folder)
	}

	return nil
}
