package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/emotebox/stickerdex/internal/config"
	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/manifest"
	"github.com/emotebox/stickerdex/internal/models"
)

var (
	exportAll    bool
	exportOutDir string
)

var exportCmd = &cobra.Command{
	Use:   "export [folder]",
	Short: "Write folder manifests",
	Long: `Write a _metadata.json manifest for a folder, or for every folder with
--all. Manifests restore cleanly with 'stickerdex import'.

By default manifests land under the exports directory in the Stickerdex
data home, one subdirectory per folder.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every folder")
	exportCmd.Flags().StringVarP(&exportOutDir, "output", "o", "", "Output directory (default: <data home>/exports)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !exportAll {
		return trackCLIError("export", fmt.Errorf("a folder argument or --all is required"))
	}

	cfg, database, err := openCatalog()
	if err != nil {
		return trackCLIError("export", err)
	}
	defer func() { _ = database.Close() }()

	outDir := exportOutDir
	if outDir == "" {
		outDir = config.GetPaths(cfg).Exports
	}

	folders := args
	if exportAll {
		folders, err = database.ListStickerFolders()
		if err != nil {
			return trackCLIError("export", fmt.Errorf("list folders: %w", err))
		}
		if len(folders) == 0 {
			fmt.Println("Nothing to export: the catalog is empty.")
			return nil
		}
	}

	totalStickers := 0
	for _, folder := range folders {
		count, err := exportFolder(database, folder, filepath.Join(outDir, folder))
		if err != nil {
			return trackCLIError("export", err)
		}
		totalStickers += count
		fmt.Printf("Exported %s (%d stickers) to %s\n", folder, count, manifest.Path(filepath.Join(outDir, folder)))
	}

	_ = database.SetMeta(models.MetaLastExportAt, time.Now().Format(time.RFC3339))
	telemetryClient.TrackCatalogExported(len(folders), totalStickers)

	return nil
}

// exportFolder writes one folder's manifest and returns its sticker count.
func exportFolder(database *db.DB, folder, dir string) (int, error) {
	stickers, err := database.ListStickersByFolder(folder)
	if err != nil {
		return 0, fmt.Errorf("list folder %s: %w", folder, err)
	}

	mf := manifest.New(folder)
	mf.Stickers = make([]manifest.StickerEntry, 0, len(stickers))

	// Orphan folders export with empty owner fields
	user, err := database.GetUserByFolder(folder)
	if err != nil {
		return 0, fmt.Errorf("look up user for %s: %w", folder, err)
	}
	if user != nil {
		mf.SevenTVID = user.SevenTVID
		mf.DisplayName = user.DisplayName
		mf.LastSyncedAt = user.LastSyncedAt
		mf.EmoteCount = user.EmoteCount
	}

	for _, s := range stickers {
		mf.Stickers = append(mf.Stickers, manifest.StickerEntry{
			SevenTVID: s.SevenTVID,
			EmoteName: s.EmoteName,
			FileName:  s.FileName,
			URL:       s.URL,
			OwnerName: s.OwnerName,
			Tags:      s.TagList(),
			Animated:  s.Animated,
			CreatedAt: s.CreatedAt,
		})
	}

	if err := manifest.Write(dir, mf); err != nil {
		return 0, fmt.Errorf("write manifest for %s: %w", folder, err)
	}

	return len(mf.Stickers), nil
}
