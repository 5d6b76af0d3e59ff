// Package packfile parses sticker pack files: markdown documents with YAML
// frontmatter that describe a single sticker to add to the catalog.
package packfile

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/emotebox/stickerdex/internal/assets"
	"github.com/emotebox/stickerdex/internal/models"
)

// Parser parses sticker pack files and extracts sticker metadata.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a parser with frontmatter support.
func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return &Parser{md: md}
}

// Parse extracts a sticker from pack file content. The second return value
// is free-form notes taken from the markdown body, for display only.
//
// Recognized frontmatter keys: sevenTvId, emoteName, url, ownerName, folder,
// fileName, mimeType, animated, tags. sevenTvId and url are required;
// emoteName falls back to the first markdown heading. fileName is derived
// from the emote name and id when absent.
func (p *Parser) Parse(content string) (*models.Sticker, string, error) {
	var buf bytes.Buffer
	context := parser.NewContext()

	if err := p.md.Convert([]byte(content), &buf, parser.WithContext(context)); err != nil {
		return nil, "", fmt.Errorf("parse markdown: %w", err)
	}

	// Extract YAML frontmatter metadata
	frontmatter := meta.Get(context)

	sticker := &models.Sticker{}

	if id, ok := frontmatter["sevenTvId"].(string); ok {
		sticker.SevenTVID = strings.TrimSpace(id)
	}
	if sticker.SevenTVID == "" {
		return nil, "", fmt.Errorf("pack file: missing sevenTvId")
	}

	if url, ok := frontmatter["url"].(string); ok {
		sticker.URL = strings.TrimSpace(url)
	}
	if sticker.URL == "" {
		return nil, "", fmt.Errorf("pack file: missing url")
	}

	// Emote name from frontmatter or the first markdown heading
	if name, ok := frontmatter["emoteName"].(string); ok && name != "" {
		sticker.EmoteName = strings.TrimSpace(name)
	} else {
		sticker.EmoteName = extractFirstHeading(content)
	}
	if sticker.EmoteName == "" {
		return nil, "", fmt.Errorf("pack file: missing emoteName and no heading to fall back on")
	}

	if owner, ok := frontmatter["ownerName"].(string); ok {
		sticker.OwnerName = strings.TrimSpace(owner)
	}

	if folder, ok := frontmatter["folder"].(string); ok {
		sticker.FolderName = strings.TrimSpace(folder)
	}

	// File name from frontmatter, or derived from name + id + content type
	mimeType := ""
	if mt, ok := frontmatter["mimeType"].(string); ok {
		mimeType = mt
	}
	if name, ok := frontmatter["fileName"].(string); ok && name != "" {
		sticker.FileName = strings.TrimSpace(name)
	} else {
		sticker.FileName = assets.BuildFileName(sticker.EmoteName, sticker.SevenTVID, mimeType)
	}

	sticker.Animated = parseBool(frontmatter["animated"])
	sticker.Tags = toStringSlice(frontmatter["tags"])

	return sticker, extractNotes(content), nil
}

// parseBool handles the types YAML parsing may produce for a boolean field.
func parseBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "yes" || b == "1"
	default:
		return false
	}
}

// toStringSlice converts a frontmatter list to a string slice.
func toStringSlice(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// extractFirstHeading finds the first H1 or H2 heading in the markdown.
// Returns an empty string if no heading is found.
func extractFirstHeading(content string) string {
	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)

		// Skip frontmatter
		if line == "---" {
			continue
		}

		// Look for H1 or H2 headings
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
		if strings.HasPrefix(line, "## ") {
			return strings.TrimPrefix(line, "## ")
		}
	}
	return ""
}

// extractNotes extracts the first meaningful paragraph after the heading.
// Skips frontmatter, headings, code blocks, and lists.
// Returns up to 200 characters.
func extractNotes(content string) string {
	lines := strings.Split(content, "\n")
	inNotes := false
	var notes []string

	for _, line := range lines {
		line = strings.TrimSpace(line)

		// Skip frontmatter delimiters
		if line == "---" {
			continue
		}

		// Skip headings and set flag to start collecting notes
		if strings.HasPrefix(line, "#") {
			inNotes = true
			continue
		}

		// Collect non-empty note lines
		if inNotes && line != "" {
			notes = append(notes, line)
			// Limit to 3 lines
			if len(notes) >= 3 {
				break
			}
		}

		// Stop at code blocks or lists
		if strings.HasPrefix(line, "```") || strings.HasPrefix(line, "- ") {
			break
		}
	}

	result := strings.Join(notes, " ")
	if len(result) > 200 {
		result = result[:197] + "..."
	}
	return result
}
