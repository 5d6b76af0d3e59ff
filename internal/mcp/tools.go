package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions for the Stickerdex MCP server. All tools are read-only.

// searchTool returns the stickerdex_search tool definition.
func searchTool() mcp.Tool {
	return mcp.NewTool("stickerdex_search",
		mcp.WithDescription("Search stickers by tag across all folders. Matches stickers carrying at least one queried tag, or every queried tag with match_all."),
		mcp.WithArray("tags",
			mcp.Required(),
			mcp.Description("Tag strings to search for"),
		),
		mcp.WithBoolean("match_all",
			mcp.Description("Require every queried tag instead of any (default: false)"),
		),
	)
}

// listFolderTool returns the stickerdex_list_folder tool definition.
func listFolderTool() mcp.Tool {
	return mcp.NewTool("stickerdex_list_folder",
		mcp.WithDescription("List a folder's stickers in insertion order, with the folder's registered owner when one exists."),
		mcp.WithString("folder",
			mcp.Required(),
			mcp.Description("The folder name"),
		),
	)
}

// getStickerTool returns the stickerdex_get_sticker tool definition.
func getStickerTool() mcp.Tool {
	return mcp.NewTool("stickerdex_get_sticker",
		mcp.WithDescription("Get a single sticker's full metadata, identified by folder and emote name."),
		mcp.WithString("folder",
			mcp.Required(),
			mcp.Description("The folder name"),
		),
		mcp.WithString("emote",
			mcp.Required(),
			mcp.Description("The emote display name"),
		),
	)
}

// listFoldersTool returns the stickerdex_list_folders tool definition.
func listFoldersTool() mcp.Tool {
	return mcp.NewTool("stickerdex_list_folders",
		mcp.WithDescription("List every folder in the catalog with its registered owner and sticker count. Includes orphan folders without a registered user."),
	)
}

// listTagsTool returns the stickerdex_list_tags tool definition.
func listTagsTool() mcp.Tool {
	return mcp.NewTool("stickerdex_list_tags",
		mcp.WithDescription("List every tag with the number of stickers carrying it, most used first."),
	)
}

// getStatsTool returns the stickerdex_get_stats tool definition.
func getStatsTool() mcp.Tool {
	return mcp.NewTool("stickerdex_get_stats",
		mcp.WithDescription("Get catalog statistics: user, sticker and tag totals plus database size."),
	)
}
