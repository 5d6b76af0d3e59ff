// Package manifest reads and writes per-folder catalog snapshots.
//
// Each exported sticker folder carries a _metadata.json file describing the
// folder's owner and every sticker in it, so a catalog can be rebuilt from
// the folders alone.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	// FileName is the manifest file name inside each folder.
	FileName = "_metadata.json"

	// CurrentVersion is the current manifest format version.
	CurrentVersion = 1
)

// ManifestFile is the JSON structure of _metadata.json.
type ManifestFile struct {
	Version      int            `json:"version"`
	FolderName   string         `json:"folderName"`
	SevenTVID    string         `json:"sevenTvId"`
	DisplayName  string         `json:"displayName"`
	LastSyncedAt time.Time      `json:"lastSyncedAt"`
	EmoteCount   int            `json:"emoteCount"`
	Stickers     []StickerEntry `json:"stickers"`
}

// StickerEntry is one sticker row in a folder manifest.
type StickerEntry struct {
	SevenTVID string    `json:"sevenTvId"`
	EmoteName string    `json:"emoteName"`
	FileName  string    `json:"fileName"`
	URL       string    `json:"url"`
	OwnerName string    `json:"ownerName,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Animated  bool      `json:"animated"`
	CreatedAt time.Time `json:"createdAt"`
}

// Read reads a manifest from the given folder directory.
// Returns nil, nil if the file does not exist.
func Read(dir string) (*ManifestFile, error) {
	p := Path(dir)

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var mf ManifestFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if mf.Stickers == nil {
		mf.Stickers = []StickerEntry{}
	}

	return &mf, nil
}

// Write writes a manifest to the given folder directory using atomic file
// operations.
func Write(dir string, mf *ManifestFile) error {
	if mf.Version == 0 {
		mf.Version = CurrentVersion
	}
	if mf.Stickers == nil {
		mf.Stickers = []StickerEntry{}
	}

	data, err := json.MarshalIndent(mf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	// Append trailing newline
	data = append(data, '\n')

	p := Path(dir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Atomic write: temp file + rename
	tmpPath := p + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, p); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename manifest: %w", err)
	}

	return nil
}

// Path returns the full path to _metadata.json in the given directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// New creates a new empty manifest for a folder.
func New(folderName string) *ManifestFile {
	return &ManifestFile{
		Version:    CurrentVersion,
		FolderName: folderName,
		Stickers:   []StickerEntry{},
	}
}

// StickerCount returns the number of stickers in the manifest.
func (mf *ManifestFile) StickerCount() int {
	return len(mf.Stickers)
}

// SortedEmoteNames returns the emote names in alphabetical order.
func (mf *ManifestFile) SortedEmoteNames() []string {
	names := make([]string, 0, len(mf.Stickers))
	for _, s := range mf.Stickers {
		names = append(names, s.EmoteName)
	}
	sort.Strings(names)
	return names
}
