package telemetry

import (
	"runtime"
	"strings"

	"github.com/emotebox/stickerdex/pkg/version"
)

// Event names - CLI
const (
	EventAppStarted         = "app_started"
	EventAppExited          = "app_exited"
	EventCLICommandExecuted = "cli_command_executed"
	EventUserAdded          = "user_added"
	EventUsersListed        = "users_listed"
	EventSyncRecorded       = "sync_recorded"
	EventStickerAdded       = "sticker_added"
	EventFolderListed       = "folder_listed"
	EventStickerInfoViewed  = "sticker_info_viewed"
	EventStatsViewed        = "stats_viewed"
	EventCLIErrorOccurred   = "cli_error_occurred"
	EventCLIHelpViewed      = "cli_help_viewed"
	EventFavoriteAdded      = "favorite_added"
	EventFavoriteRemoved    = "favorite_removed"
	EventFavoritesListed    = "favorites_listed"
	EventStickerCopied      = "sticker_copied"
	EventCatalogExported    = "catalog_exported"
	EventCatalogImported    = "catalog_imported"
)

// Event names - TUI
const (
	EventViewNavigated    = "view_navigated"
	EventStickerPreviewed = "sticker_previewed"
	EventSearchPerformed  = "search_performed"
	EventTagSelected      = "tag_selected"
	EventKeyboardShortcut = "keyboard_shortcut_used"
	EventErrorDisplayed   = "error_displayed"
)

// Event names - MCP
const (
	EventMCPToolCalled = "mcp_tool_called"
)

// Version is set at compile time via ldflags.
var Version string

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    Version,
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
	}
}

// --- CLI Tracking Methods ---

// TrackAppStarted tracks application startup.
func (c *posthogClient) TrackAppStarted(mode string, hasUsers bool, userCount int) {
	props := baseProperties()
	props["mode"] = mode
	props["has_users"] = hasUsers
	props["user_count"] = userCount
	c.Track(EventAppStarted, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64, commandsRun int) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	props["commands_run"] = commandsRun
	c.Track(EventAppExited, props)
}

// TrackCLICommandExecuted tracks CLI command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["execution_duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackUserAdded tracks when a user is registered.
func (c *posthogClient) TrackUserAdded(folderName string) {
	props := baseProperties()
	props["folder_name"] = folderName
	c.Track(EventUserAdded, props)
}

// TrackUsersListed tracks the users list command.
func (c *posthogClient) TrackUsersListed(userCount int) {
	props := baseProperties()
	props["user_count"] = userCount
	c.Track(EventUsersListed, props)
}

// TrackSyncRecorded tracks sync completion stamps.
func (c *posthogClient) TrackSyncRecorded(folderName string, emoteCount int) {
	props := baseProperties()
	props["folder_name"] = folderName
	props["emote_count"] = emoteCount
	c.Track(EventSyncRecorded, props)
}

// TrackStickerAdded tracks sticker insertion.
func (c *posthogClient) TrackStickerAdded(folderName string, tagCount int, animated, fromPackFile bool) {
	props := baseProperties()
	props["folder_name"] = folderName
	props["tag_count"] = tagCount
	props["animated"] = animated
	props["from_pack_file"] = fromPackFile
	c.Track(EventStickerAdded, props)
}

// TrackFolderListed tracks folder listing.
func (c *posthogClient) TrackFolderListed(folderName string, stickerCount int) {
	props := baseProperties()
	props["folder_name"] = folderName
	props["sticker_count"] = stickerCount
	c.Track(EventFolderListed, props)
}

// TrackStickerInfoViewed tracks sticker info viewing.
func (c *posthogClient) TrackStickerInfoViewed(folderName string, tagCount int, animated bool) {
	props := baseProperties()
	props["folder_name"] = folderName
	props["tag_count"] = tagCount
	props["animated"] = animated
	c.Track(EventStickerInfoViewed, props)
}

// TrackStatsViewed tracks the stats command.
func (c *posthogClient) TrackStatsViewed(totalUsers, totalStickers int64) {
	props := baseProperties()
	props["total_users"] = totalUsers
	props["total_stickers"] = totalStickers
	c.Track(EventStatsViewed, props)
}

// TrackCLIError tracks CLI errors.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackCLIHelpViewed tracks help command usage.
func (c *posthogClient) TrackCLIHelpViewed(commandName string, cliArgs []string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["cli_args"] = strings.Join(cliArgs, " ")
	c.Track(EventCLIHelpViewed, props)
}

// TrackFavoriteAdded tracks when a sticker is added to favorites.
func (c *posthogClient) TrackFavoriteAdded(folder, emoteName string) {
	props := baseProperties()
	props["folder_name"] = folder
	props["emote_name"] = emoteName
	c.Track(EventFavoriteAdded, props)
}

// TrackFavoriteRemoved tracks when a sticker is removed from favorites.
func (c *posthogClient) TrackFavoriteRemoved(folder, emoteName string) {
	props := baseProperties()
	props["folder_name"] = folder
	props["emote_name"] = emoteName
	c.Track(EventFavoriteRemoved, props)
}

// TrackFavoritesListed tracks when favorites are listed.
func (c *posthogClient) TrackFavoritesListed(count int) {
	props := baseProperties()
	props["favorites_count"] = count
	c.Track(EventFavoritesListed, props)
}

// TrackStickerCopied tracks clipboard copies.
func (c *posthogClient) TrackStickerCopied(folder, emoteName, target string) {
	props := baseProperties()
	props["folder_name"] = folder
	props["emote_name"] = emoteName
	props["copy_target"] = target
	c.Track(EventStickerCopied, props)
}

// TrackCatalogExported tracks catalog exports.
func (c *posthogClient) TrackCatalogExported(folderCount, stickerCount int) {
	props := baseProperties()
	props["folder_count"] = folderCount
	props["sticker_count"] = stickerCount
	c.Track(EventCatalogExported, props)
}

// TrackCatalogImported tracks catalog imports.
func (c *posthogClient) TrackCatalogImported(foldersImported, stickersImported, stickersSkipped int) {
	props := baseProperties()
	props["folders_imported"] = foldersImported
	props["stickers_imported"] = stickersImported
	props["stickers_skipped"] = stickersSkipped
	c.Track(EventCatalogImported, props)
}

// --- TUI Tracking Methods ---

// TrackViewNavigated tracks view navigation.
func (c *posthogClient) TrackViewNavigated(viewName, previousView string) {
	props := baseProperties()
	props["view_name"] = viewName
	props["previous_view"] = previousView
	c.Track(EventViewNavigated, props)
}

// TrackStickerPreviewed tracks sticker detail views in the browser.
func (c *posthogClient) TrackStickerPreviewed(folderName string, animated bool) {
	props := baseProperties()
	props["folder_name"] = folderName
	props["animated"] = animated
	c.Track(EventStickerPreviewed, props)
}

// TrackSearchPerformed tracks search operations.
func (c *posthogClient) TrackSearchPerformed(query string, resultCount int, matchAll bool) {
	props := baseProperties()
	props["query"] = query
	props["query_length"] = len(query)
	props["result_count"] = resultCount
	props["match_all"] = matchAll
	c.Track(EventSearchPerformed, props)
}

// TrackTagSelected tracks tag selection.
func (c *posthogClient) TrackTagSelected(tagName string) {
	props := baseProperties()
	props["tag_name"] = tagName
	c.Track(EventTagSelected, props)
}

// TrackKeyboardShortcut tracks keyboard shortcut usage.
func (c *posthogClient) TrackKeyboardShortcut(shortcutKey, contextView string) {
	props := baseProperties()
	props["shortcut_key"] = shortcutKey
	props["context_view"] = contextView
	c.Track(EventKeyboardShortcut, props)
}

// TrackErrorDisplayed tracks error display.
func (c *posthogClient) TrackErrorDisplayed(errorType, contextView string) {
	props := baseProperties()
	props["error_type"] = errorType
	props["context_view"] = contextView
	c.Track(EventErrorDisplayed, props)
}

// --- MCP Tracking Methods ---

// TrackMCPToolCalled tracks MCP tool invocations.
func (c *posthogClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {
	props := baseProperties()
	props["tool_name"] = toolName
	props["duration_ms"] = durationMs
	props["success"] = success
	c.Track(EventMCPToolCalled, props)
}

// --- noopClient implementations (no-ops) ---

func (c *noopClient) TrackAppStarted(mode string, hasUsers bool, userCount int)                   {}
func (c *noopClient) TrackAppExited(mode string, sessionDurationMs int64, commandsRun int)        {}
func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {}
func (c *noopClient) TrackUserAdded(folderName string)                                            {}
func (c *noopClient) TrackUsersListed(userCount int)                                              {}
func (c *noopClient) TrackSyncRecorded(folderName string, emoteCount int)                         {}
func (c *noopClient) TrackStickerAdded(folderName string, tagCount int, animated, fromPackFile bool) {
}
func (c *noopClient) TrackFolderListed(folderName string, stickerCount int)                 {}
func (c *noopClient) TrackStickerInfoViewed(folderName string, tagCount int, animated bool) {}
func (c *noopClient) TrackStatsViewed(totalUsers, totalStickers int64)                      {}
func (c *noopClient) TrackCLIError(commandName, errorType string)                           {}
func (c *noopClient) TrackCLIHelpViewed(commandName string, cliArgs []string)               {}
func (c *noopClient) TrackFavoriteAdded(folder, emoteName string)                           {}
func (c *noopClient) TrackFavoriteRemoved(folder, emoteName string)                         {}
func (c *noopClient) TrackFavoritesListed(count int)                                        {}
func (c *noopClient) TrackStickerCopied(folder, emoteName, target string)                   {}
func (c *noopClient) TrackCatalogExported(folderCount, stickerCount int)                    {}
func (c *noopClient) TrackCatalogImported(foldersImported, stickersImported, stickersSkipped int) {
}
func (c *noopClient) TrackViewNavigated(viewName, previousView string)                   {}
func (c *noopClient) TrackStickerPreviewed(folderName string, animated bool)             {}
func (c *noopClient) TrackSearchPerformed(query string, resultCount int, matchAll bool)  {}
func (c *noopClient) TrackTagSelected(tagName string)                                    {}
func (c *noopClient) TrackKeyboardShortcut(shortcutKey, contextView string)              {}
func (c *noopClient) TrackErrorDisplayed(errorType, contextView string)                  {}
func (c *noopClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {}
