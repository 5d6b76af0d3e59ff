package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/emotebox/stickerdex/internal/models"
)

// trackToolCall is a helper to track MCP tool invocations.
func (s *Server) trackToolCall(toolName string, start time.Time, success bool) {
	if s.telemetry != nil {
		durationMs := time.Since(start).Milliseconds()
		s.telemetry.TrackMCPToolCalled(toolName, durationMs, success)
	}
}

// StickerResponse represents a sticker in MCP responses. Field names are
// camelCase, matching the folder manifest format.
type StickerResponse struct {
	SevenTVID string   `json:"sevenTvId"`
	EmoteName string   `json:"emoteName"`
	FileName  string   `json:"fileName"`
	URL       string   `json:"url"`
	OwnerName string   `json:"ownerName,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Animated  bool     `json:"animated"`
	Folder    string   `json:"folderName"`
	CreatedAt string   `json:"createdAt"`
}

// FolderResponse represents a folder listing in MCP responses.
type FolderResponse struct {
	Name         string            `json:"name"`
	Owner        *OwnerResponse    `json:"owner,omitempty"`
	StickerCount int               `json:"stickerCount"`
	Stickers     []StickerResponse `json:"stickers,omitempty"`
}

// OwnerResponse represents a folder's registered user.
type OwnerResponse struct {
	SevenTVID    string `json:"sevenTvId"`
	DisplayName  string `json:"displayName"`
	LastSyncedAt string `json:"lastSyncedAt"`
	EmoteCount   int    `json:"emoteCount"`
}

// TagResponse represents a tag in MCP responses.
type TagResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsResponse represents catalog statistics.
type StatsResponse struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalStickers int64 `json:"totalStickers"`
	TotalTags     int64 `json:"totalTags"`
	AnimatedCount int64 `json:"animatedCount"`
	DBSizeBytes   int64 `json:"dbSizeBytes"`
}

// toStickerResponse converts a models.Sticker to its response form.
func toStickerResponse(s *models.Sticker) StickerResponse {
	return StickerResponse{
		SevenTVID: s.SevenTVID,
		EmoteName: s.EmoteName,
		FileName:  s.FileName,
		URL:       s.URL,
		OwnerName: s.OwnerName,
		Tags:      s.TagList(),
		Animated:  s.Animated,
		Folder:    s.FolderName,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

// toOwnerResponse converts a models.User to its response form.
func toOwnerResponse(u *models.User) *OwnerResponse {
	if u == nil {
		return nil
	}
	return &OwnerResponse{
		SevenTVID:    u.SevenTVID,
		DisplayName:  u.DisplayName,
		LastSyncedAt: u.LastSyncedAt.Format(time.RFC3339),
		EmoteCount:   u.EmoteCount,
	}
}

// parseTagsArg extracts the tags array from tool arguments.
func parseTagsArg(arguments map[string]interface{}) []string {
	raw, ok := arguments["tags"].([]interface{})
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		if t, ok := v.(string); ok && t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// handleSearch handles the stickerdex_search tool.
func (s *Server) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	tags := parseTagsArg(req.Params.Arguments)
	if len(tags) == 0 {
		s.trackToolCall("stickerdex_search", start, false)
		return mcp.NewToolResultError("tags parameter is required and must be a non-empty array of strings"), nil
	}

	matchAll := false
	if v, ok := req.Params.Arguments["match_all"].(bool); ok {
		matchAll = v
	}

	stickers, err := s.db.SearchStickersByTags(tags, matchAll)
	if err != nil {
		s.trackToolCall("stickerdex_search", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	results := make([]StickerResponse, 0, len(stickers))
	for i := range stickers {
		results = append(results, toStickerResponse(&stickers[i]))
	}

	data, err := json.Marshal(results)
	if err != nil {
		s.trackToolCall("stickerdex_search", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	s.trackToolCall("stickerdex_search", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleListFolder handles the stickerdex_list_folder tool.
func (s *Server) handleListFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	folder, ok := req.Params.Arguments["folder"].(string)
	if !ok || folder == "" {
		s.trackToolCall("stickerdex_list_folder", start, false)
		return mcp.NewToolResultError("folder parameter is required"), nil
	}

	resp, err := s.folderSnapshot(folder)
	if err != nil {
		s.trackToolCall("stickerdex_list_folder", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to list folder: %v", err)), nil
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.trackToolCall("stickerdex_list_folder", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal folder: %v", err)), nil
	}

	s.trackToolCall("stickerdex_list_folder", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// folderSnapshot assembles the full folder response used by both the
// list_folder tool and the folder resource.
func (s *Server) folderSnapshot(folder string) (*FolderResponse, error) {
	stickers, err := s.db.ListStickersByFolder(folder)
	if err != nil {
		return nil, err
	}

	user, err := s.db.GetUserByFolder(folder)
	if err != nil {
		return nil, err
	}

	resp := &FolderResponse{
		Name:         folder,
		Owner:        toOwnerResponse(user),
		StickerCount: len(stickers),
		Stickers:     make([]StickerResponse, 0, len(stickers)),
	}
	for i := range stickers {
		resp.Stickers = append(resp.Stickers, toStickerResponse(&stickers[i]))
	}
	return resp, nil
}

// handleGetSticker handles the stickerdex_get_sticker tool.
func (s *Server) handleGetSticker(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	folder, ok := req.Params.Arguments["folder"].(string)
	if !ok || folder == "" {
		s.trackToolCall("stickerdex_get_sticker", start, false)
		return mcp.NewToolResultError("folder parameter is required"), nil
	}

	emote, ok := req.Params.Arguments["emote"].(string)
	if !ok || emote == "" {
		s.trackToolCall("stickerdex_get_sticker", start, false)
		return mcp.NewToolResultError("emote parameter is required"), nil
	}

	sticker, err := s.db.GetSticker(folder, emote)
	if err != nil {
		s.trackToolCall("stickerdex_get_sticker", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to get sticker: %v", err)), nil
	}
	if sticker == nil {
		s.trackToolCall("stickerdex_get_sticker", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("sticker not found: %s/%s", folder, emote)), nil
	}

	data, err := json.Marshal(toStickerResponse(sticker))
	if err != nil {
		s.trackToolCall("stickerdex_get_sticker", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal sticker: %v", err)), nil
	}

	s.trackToolCall("stickerdex_get_sticker", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleListFolders handles the stickerdex_list_folders tool.
func (s *Server) handleListFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	users, err := s.db.ListUsers()
	if err != nil {
		s.trackToolCall("stickerdex_list_folders", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to list users: %v", err)), nil
	}

	seen := make(map[string]bool, len(users))
	results := make([]FolderResponse, 0, len(users))
	for i := range users {
		user := &users[i]
		count, err := s.db.CountStickersByFolder(user.FolderName)
		if err != nil {
			s.trackToolCall("stickerdex_list_folders", start, false)
			return mcp.NewToolResultError(fmt.Sprintf("failed to count folder: %v", err)), nil
		}
		seen[user.FolderName] = true
		results = append(results, FolderResponse{
			Name:         user.FolderName,
			Owner:        toOwnerResponse(user),
			StickerCount: int(count),
		})
	}

	// Orphan folders carry stickers but no registered user
	folders, err := s.db.ListStickerFolders()
	if err != nil {
		s.trackToolCall("stickerdex_list_folders", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to list folders: %v", err)), nil
	}
	for _, name := range folders {
		if seen[name] {
			continue
		}
		count, _ := s.db.CountStickersByFolder(name)
		results = append(results, FolderResponse{Name: name, StickerCount: int(count)})
	}

	data, err := json.Marshal(results)
	if err != nil {
		s.trackToolCall("stickerdex_list_folders", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal folders: %v", err)), nil
	}

	s.trackToolCall("stickerdex_list_folders", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleListTags handles the stickerdex_list_tags tool.
func (s *Server) handleListTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	tags, err := s.db.ListTags()
	if err != nil {
		s.trackToolCall("stickerdex_list_tags", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to list tags: %v", err)), nil
	}

	results := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		results = append(results, TagResponse{Name: tag.Name, Count: tag.Count})
	}

	data, err := json.Marshal(results)
	if err != nil {
		s.trackToolCall("stickerdex_list_tags", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal tags: %v", err)), nil
	}

	s.trackToolCall("stickerdex_list_tags", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleGetStats handles the stickerdex_get_stats tool.
func (s *Server) handleGetStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	stats, err := s.db.GetStats()
	if err != nil {
		s.trackToolCall("stickerdex_get_stats", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}

	resp := StatsResponse{
		TotalUsers:    stats.TotalUsers,
		TotalStickers: stats.TotalStickers,
		TotalTags:     stats.TotalTags,
		AnimatedCount: stats.AnimatedCount,
		DBSizeBytes:   stats.DBSizeBytes,
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.trackToolCall("stickerdex_get_stats", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal stats: %v", err)), nil
	}

	s.trackToolCall("stickerdex_get_stats", start, true)
	return mcp.NewToolResultText(string(data)), nil
}
