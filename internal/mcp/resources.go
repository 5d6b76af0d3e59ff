package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// resourcePrefix is the URI scheme for Stickerdex resources.
const resourcePrefix = "stickerdex://"

// parseFolderURI extracts the folder name and optional emote name from a
// stickerdex://folder/{name}[/stickers/{emote}] URI.
func parseFolderURI(uri string) (folder, emote string, err error) {
	if !strings.HasPrefix(uri, resourcePrefix+"folder/") {
		return "", "", fmt.Errorf("invalid URI scheme: %s", uri)
	}

	path := strings.TrimPrefix(uri, resourcePrefix+"folder/")
	if idx := strings.Index(path, "/stickers/"); idx >= 0 {
		folder = path[:idx]
		emote = path[idx+len("/stickers/"):]
		if emote == "" {
			return "", "", fmt.Errorf("empty emote name in URI: %s", uri)
		}
	} else {
		folder = path
	}

	if folder == "" {
		return "", "", fmt.Errorf("empty folder name in URI: %s", uri)
	}

	return folder, emote, nil
}

// handleFolderResource handles stickerdex://folder/{name} resources.
func (s *Server) handleFolderResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	folder, _, err := parseFolderURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	resp, err := s.folderSnapshot(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder: %w", err)
	}
	if resp.StickerCount == 0 && resp.Owner == nil {
		return nil, fmt.Errorf("folder not found: %s", folder)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal folder: %v", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleStickerResource handles stickerdex://folder/{name}/stickers/{emote}
// resources.
func (s *Server) handleStickerResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	folder, emote, err := parseFolderURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	if emote == "" {
		return nil, fmt.Errorf("missing emote name in URI: %s", req.Params.URI)
	}

	sticker, err := s.db.GetSticker(folder, emote)
	if err != nil {
		return nil, fmt.Errorf("failed to get sticker: %w", err)
	}
	if sticker == nil {
		return nil, fmt.Errorf("sticker not found: %s/%s", folder, emote)
	}

	data, err := json.Marshal(toStickerResponse(sticker))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sticker: %v", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
