package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emotebox/stickerdex/internal/models"
)

func TestImportManifestRoundTrip(t *testing.T) {
	source := newTestCatalog(t)
	seedFolder(t, source)

	dir := t.TempDir()
	_, err := exportFolder(source, "alice", dir)
	require.NoError(t, err)

	// Restore into a fresh catalog
	target := newTestCatalog(t)
	res, err := importManifest(target, dir, false)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "alice", res.Folder)
	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 0, res.Skipped)

	// The owning user was created from the manifest
	user, err := target.GetUserByFolder("alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.SevenTVID)
	assert.Equal(t, "Alice", user.DisplayName)

	stickers, err := target.ListStickersByFolder("alice")
	require.NoError(t, err)
	require.Len(t, stickers, 2)
	assert.Equal(t, []string{"funny", "rare"}, stickers[0].TagList())
}

func TestImportManifestSkipsUnchangedDigest(t *testing.T) {
	source := newTestCatalog(t)
	seedFolder(t, source)

	dir := t.TempDir()
	_, err := exportFolder(source, "alice", dir)
	require.NoError(t, err)

	target := newTestCatalog(t)
	res, err := importManifest(target, dir, false)
	require.NoError(t, err)
	require.NotNil(t, res)

	// Second import of the same bytes short-circuits
	res, err = importManifest(target, dir, false)
	require.NoError(t, err)
	assert.Nil(t, res)

	// --force imports anyway, skipping the existing stickers
	res, err = importManifest(target, dir, true)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 2, res.Skipped)
}

func TestImportManifestSkipsExistingStickers(t *testing.T) {
	source := newTestCatalog(t)
	seedFolder(t, source)

	dir := t.TempDir()
	_, err := exportFolder(source, "alice", dir)
	require.NoError(t, err)

	// Target already holds one of the two stickers
	target := newTestCatalog(t)
	require.NoError(t, target.InsertSticker(&models.Sticker{
		SevenTVID: "s1", EmoteName: "Kappa", FileName: "Kappa_s1.webp",
		URL: "https://cdn.test/s1", FolderName: "alice",
	}))

	res, err := importManifest(target, dir, false)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Skipped)
}

func TestImportManifestMissingFile(t *testing.T) {
	database := newTestCatalog(t)

	_, err := importManifest(database, t.TempDir(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "_metadata.json")
}

func TestImportPackFile(t *testing.T) {
	database := newTestCatalog(t)

	content := `---
sevenTvId: "603caa69faf3a00d9deb30fb"
emoteName: "Kappa"
url: "https://cdn.7tv.app/emote/603caa69faf3a00d9deb30fb/4x.webp"
folder: "alice"
mimeType: "image/webp"
animated: false
tags:
  - funny
  - rare
---

# Kappa

Classic.
`
	path := filepath.Join(t.TempDir(), "kappa.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	res, err := importPackFile(database, path, "")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.Folder)
	assert.Equal(t, 1, res.Inserted)

	sticker, err := database.GetSticker("alice", "Kappa")
	require.NoError(t, err)
	require.NotNil(t, sticker)
	assert.Equal(t, "Kappa_603caa69faf3a00d9deb30fb.webp", sticker.FileName)
	assert.Equal(t, []string{"funny", "rare"}, sticker.TagList())

	// Re-import is detect-then-skip
	res, err = importPackFile(database, path, "")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 1, res.Skipped)
}

func TestImportPackFileFolderOverride(t *testing.T) {
	database := newTestCatalog(t)

	content := `---
sevenTvId: "abc123"
emoteName: "Wave"
url: "https://cdn.test/wave"
---

# Wave
`
	path := filepath.Join(t.TempDir(), "wave.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// No folder in frontmatter and none supplied
	_, err := importPackFile(database, path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--folder")

	res, err := importPackFile(database, path, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", res.Folder)
	assert.Equal(t, 1, res.Inserted)
}
