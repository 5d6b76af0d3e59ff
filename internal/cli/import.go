package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/hash"
	"github.com/emotebox/stickerdex/internal/manifest"
	"github.com/emotebox/stickerdex/internal/models"
	"github.com/emotebox/stickerdex/internal/packfile"
)

var (
	importUpdateSync bool
	importFolder     string
	importForce      bool
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a folder manifest or a sticker pack file",
	Long: `Import catalog entries from a file.

A _metadata.json manifest (or a directory containing one) restores a whole
folder: the owning user is created when missing, and stickers already in the
folder are skipped rather than duplicated. Unchanged manifests are detected
by digest and skipped entirely; --force imports them anyway.

A .md pack file adds a single sticker described by its YAML frontmatter. The
target folder comes from the frontmatter or from --folder.

With --update-sync the folder's user additionally gets a sync recorded with
the folder's resulting sticker count.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importUpdateSync, "update-sync", false, "Record a sync on the folder's user after importing")
	importCmd.Flags().StringVar(&importFolder, "folder", "", "Target folder for pack files without one")
	importCmd.Flags().BoolVar(&importForce, "force", false, "Import a manifest even if its digest is unchanged")
}

// importResult summarizes a manifest or pack file import.
type importResult struct {
	Folder   string
	Inserted int
	Skipped  int
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	_, database, err := openCatalog()
	if err != nil {
		return trackCLIError("import", err)
	}
	defer func() { _ = database.Close() }()

	var res *importResult
	if strings.HasSuffix(path, ".md") {
		res, err = importPackFile(database, path, importFolder)
	} else {
		res, err = importManifest(database, path, importForce)
	}
	if err != nil {
		return trackCLIError("import", err)
	}
	if res == nil {
		// Unchanged manifest, nothing to do
		return nil
	}

	telemetryClient.TrackCatalogImported(1, res.Inserted, res.Skipped)

	fmt.Printf("Imported into %s: %d added, %d already present\n", res.Folder, res.Inserted, res.Skipped)

	if importUpdateSync {
		count, err := database.CountStickersByFolder(res.Folder)
		if err != nil {
			return trackCLIError("import", fmt.Errorf("count folder: %w", err))
		}
		if err := database.RecordSyncByFolder(res.Folder, int(count)); err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return trackCLIError("import", fmt.Errorf("cannot record sync: folder %s has no registered user", res.Folder))
			}
			return trackCLIError("import", fmt.Errorf("record sync: %w", err))
		}
		fmt.Printf("Recorded sync for %s: %d emotes\n", res.Folder, count)
	}

	return nil
}

// importManifest restores a folder from a _metadata.json manifest. Returns
// nil when the manifest digest matches the previous import and force is off.
func importManifest(database *db.DB, path string, force bool) (*importResult, error) {
	dir := path
	if info, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	} else if !info.IsDir() {
		dir = filepath.Dir(path)
	}

	mf, err := manifest.Read(dir)
	if err != nil {
		return nil, err
	}
	if mf == nil {
		return nil, fmt.Errorf("no %s found in %s", manifest.FileName, dir)
	}
	if mf.FolderName == "" {
		return nil, fmt.Errorf("manifest in %s has no folderName", dir)
	}

	raw, err := os.ReadFile(manifest.Path(dir))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	digest := hash.TruncatedSHA256Bytes(raw)

	digestKey := models.MetaImportDigestPrefix + mf.FolderName
	if !force {
		prev, err := database.GetMeta(digestKey)
		if err == nil && prev == digest {
			fmt.Printf("Manifest for %s unchanged since last import, skipping. Use --force to import anyway.\n", mf.FolderName)
			return nil, nil
		}
	}

	// Register the owning user when the manifest names one
	if mf.SevenTVID != "" && mf.DisplayName != "" {
		user, err := database.GetUserByFolder(mf.FolderName)
		if err != nil {
			return nil, fmt.Errorf("look up user: %w", err)
		}
		if user == nil {
			newUser := &models.User{
				SevenTVID:    mf.SevenTVID,
				FolderName:   mf.FolderName,
				DisplayName:  mf.DisplayName,
				LastSyncedAt: mf.LastSyncedAt,
				EmoteCount:   mf.EmoteCount,
			}
			if err := database.CreateUser(newUser); err != nil {
				if errors.Is(err, db.ErrDuplicateExternalIdentity) {
					return nil, fmt.Errorf("manifest owner %s is already registered under another folder", mf.SevenTVID)
				}
				return nil, fmt.Errorf("create user: %w", err)
			}
			fmt.Printf("Registered %s (%s)\n", mf.FolderName, mf.DisplayName)
		}
	}

	res := &importResult{Folder: mf.FolderName}
	for _, entry := range mf.Stickers {
		sticker := &models.Sticker{
			SevenTVID:  entry.SevenTVID,
			EmoteName:  entry.EmoteName,
			FileName:   entry.FileName,
			URL:        entry.URL,
			OwnerName:  entry.OwnerName,
			Tags:       datatypes.NewJSONSlice(entry.Tags),
			Animated:   entry.Animated,
			FolderName: mf.FolderName,
			CreatedAt:  entry.CreatedAt,
		}

		if err := database.InsertSticker(sticker); err != nil {
			if errors.Is(err, db.ErrDuplicateSticker) {
				res.Skipped++
				continue
			}
			return nil, fmt.Errorf("insert sticker %s: %w", entry.EmoteName, err)
		}
		res.Inserted++
	}

	_ = database.SetMeta(digestKey, digest)
	_ = database.SetMeta(models.MetaLastImportAt, time.Now().Format(time.RFC3339))

	return res, nil
}

// importPackFile adds the single sticker described by a markdown pack file.
func importPackFile(database *db.DB, path, folderOverride string) (*importResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack file: %w", err)
	}

	sticker, _, err := packfile.NewParser().Parse(string(raw))
	if err != nil {
		return nil, err
	}

	if folderOverride != "" {
		sticker.FolderName = folderOverride
	}
	if sticker.FolderName == "" {
		return nil, fmt.Errorf("pack file names no folder; pass --folder")
	}

	res := &importResult{Folder: sticker.FolderName}
	if err := database.InsertSticker(sticker); err != nil {
		if errors.Is(err, db.ErrDuplicateSticker) {
			res.Skipped = 1
			return res, nil
		}
		return nil, fmt.Errorf("insert sticker: %w", err)
	}
	res.Inserted = 1

	telemetryClient.TrackStickerAdded(sticker.FolderName, len(sticker.Tags), sticker.Animated, true)

	_ = database.SetMeta(models.MetaLastImportAt, time.Now().Format(time.RFC3339))

	return res, nil
}
