package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventConstants(t *testing.T) {
	// CLI events
	assert.Equal(t, "app_started", EventAppStarted)
	assert.Equal(t, "app_exited", EventAppExited)
	assert.Equal(t, "cli_command_executed", EventCLICommandExecuted)
	assert.Equal(t, "user_added", EventUserAdded)
	assert.Equal(t, "users_listed", EventUsersListed)
	assert.Equal(t, "sync_recorded", EventSyncRecorded)
	assert.Equal(t, "sticker_added", EventStickerAdded)
	assert.Equal(t, "folder_listed", EventFolderListed)
	assert.Equal(t, "sticker_info_viewed", EventStickerInfoViewed)
	assert.Equal(t, "stats_viewed", EventStatsViewed)
	assert.Equal(t, "cli_error_occurred", EventCLIErrorOccurred)
	assert.Equal(t, "cli_help_viewed", EventCLIHelpViewed)
	assert.Equal(t, "favorite_added", EventFavoriteAdded)
	assert.Equal(t, "favorite_removed", EventFavoriteRemoved)
	assert.Equal(t, "favorites_listed", EventFavoritesListed)
	assert.Equal(t, "sticker_copied", EventStickerCopied)
	assert.Equal(t, "catalog_exported", EventCatalogExported)
	assert.Equal(t, "catalog_imported", EventCatalogImported)

	// TUI events
	assert.Equal(t, "view_navigated", EventViewNavigated)
	assert.Equal(t, "sticker_previewed", EventStickerPreviewed)
	assert.Equal(t, "search_performed", EventSearchPerformed)
	assert.Equal(t, "tag_selected", EventTagSelected)
	assert.Equal(t, "keyboard_shortcut_used", EventKeyboardShortcut)
	assert.Equal(t, "error_displayed", EventErrorDisplayed)

	// MCP events
	assert.Equal(t, "mcp_tool_called", EventMCPToolCalled)
}
