// Package assets maps catalog entries to on-disk sticker files.
package assets

import (
	"fmt"
	"regexp"
	"strings"
)

// extensionsByMIME maps known sticker content types to file extensions.
var extensionsByMIME = map[string]string{
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/avif": "avif",
	"image/png":  "png",
}

// DefaultExtension is used when the content type is unknown.
const DefaultExtension = "png"

// SafeFileName replaces characters that are unsafe in file names.
// Letters, digits, dot, dash, underscore and space are kept; everything
// else becomes an underscore.
func SafeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_', r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// ExtensionForMIME returns the file extension for a sticker content type.
func ExtensionForMIME(mimeType string) string {
	// Strip any parameters, e.g. "image/webp; charset=binary"
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))

	if ext, ok := extensionsByMIME[mimeType]; ok {
		return ext
	}
	return DefaultExtension
}

// BuildFileName derives the canonical on-disk name for a sticker:
// "<safe emote name>_<external id>.<ext>". The external id keeps files
// unique when two emotes in a folder share a display name.
func BuildFileName(emoteName, sevenTVID, mimeType string) string {
	return fmt.Sprintf("%s_%s.%s", SafeFileName(emoteName), sevenTVID, ExtensionForMIME(mimeType))
}

// FolderSlug creates a filesystem-safe folder name from a display name.
// Converts to lowercase, removes special characters, replaces spaces with
// hyphens, and collapses consecutive hyphens. Maximum 50 characters.
func FolderSlug(displayName string) string {
	slug := strings.ToLower(displayName)

	// Remove special characters except spaces and hyphens
	slug = regexp.MustCompile(`[^a-z0-9\s\-]`).ReplaceAllString(slug, "")

	// Replace spaces with hyphens
	slug = regexp.MustCompile(`\s+`).ReplaceAllString(slug, "-")

	// Remove consecutive hyphens
	slug = regexp.MustCompile(`-+`).ReplaceAllString(slug, "-")

	// Trim leading/trailing hyphens
	slug = strings.Trim(slug, "-")

	// Limit to 50 characters
	if len(slug) > 50 {
		slug = slug[:50]
	}

	return slug
}
