// Package mcp provides the Model Context Protocol server for Stickerdex.
//
// The server exposes the sticker catalog to local MCP-compatible agent
// clients over stdio. It is strictly read-only: the catalog is written
// through the CLI, never through a tool call.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/emotebox/stickerdex/internal/config"
	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/telemetry"
	"github.com/emotebox/stickerdex/pkg/version"
)

// Server wraps the MCP server with catalog access.
type Server struct {
	db        *db.DB
	cfg       *config.Config
	server    *server.MCPServer
	telemetry telemetry.Client
}

// NewServer creates a new MCP server instance.
func NewServer(database *db.DB, cfg *config.Config, tc telemetry.Client) *Server {
	s := &Server{
		db:        database,
		cfg:       cfg,
		telemetry: tc,
	}

	s.server = server.NewMCPServer(
		"stickerdex",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Serve starts the MCP server over stdio.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// registerTools adds the read-only catalog tools.
func (s *Server) registerTools() {
	s.server.AddTool(searchTool(), s.handleSearch)
	s.server.AddTool(listFolderTool(), s.handleListFolder)
	s.server.AddTool(getStickerTool(), s.handleGetSticker)
	s.server.AddTool(listFoldersTool(), s.handleListFolders)
	s.server.AddTool(listTagsTool(), s.handleListTags)
	s.server.AddTool(getStatsTool(), s.handleGetStats)
}

// registerResources adds folder and sticker resource templates.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"stickerdex://folder/{name}",
			"Folder contents",
			mcp.WithTemplateDescription("JSON snapshot of a folder: its owner and every sticker in it"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleFolderResource,
	)

	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"stickerdex://folder/{name}/stickers/{emote}",
			"Sticker metadata",
			mcp.WithTemplateDescription("JSON metadata for a single sticker"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleStickerResource,
	)
}
