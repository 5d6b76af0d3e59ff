package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var copyFile bool

var copyCmd = &cobra.Command{
	Use:   "copy <folder> <emote>",
	Short: "Copy a sticker's URL to the clipboard",
	Long: `Copy a sticker's source URL to the system clipboard.

With --file the stored file name is copied instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().BoolVar(&copyFile, "file", false, "Copy the stored file name instead of the URL")
}

func runCopy(cmd *cobra.Command, args []string) error {
	folder, emoteName := args[0], args[1]

	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("copy", err)
	}
	defer func() { _ = database.Close() }()

	sticker, err := database.GetSticker(folder, emoteName)
	if err != nil {
		return trackCLIError("copy", fmt.Errorf("look up sticker: %w", err))
	}
	if sticker == nil {
		return trackCLIError("copy", fmt.Errorf("sticker %s/%s not found", folder, emoteName))
	}

	target := "url"
	text := sticker.URL
	if copyFile {
		target = "file_name"
		text = sticker.FileName
	}

	if err := clipboard.WriteAll(text); err != nil {
		return trackCLIError("copy", fmt.Errorf("copy to clipboard: %w", err))
	}

	telemetryClient.TrackStickerCopied(folder, emoteName, target)

	fmt.Printf("Copied to clipboard: %s\n", text)
	return nil
}
