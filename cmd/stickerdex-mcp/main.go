// Package main provides the stickerdex-mcp server.
//
// stickerdex-mcp exposes the sticker catalog via the Model Context
// Protocol, letting MCP-compatible agent clients search and browse it.
//
// Usage:
//
//	stickerdex-mcp [flags]
//
// The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emotebox/stickerdex/internal/config"
	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/mcp"
	"github.com/emotebox/stickerdex/internal/telemetry"
	"github.com/emotebox/stickerdex/pkg/version"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("stickerdex-mcp %s\n", version.Version)
		os.Exit(0)
	}

	// Handle --help flag
	if len(os.Args) > 1 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		printHelp()
		os.Exit(0)
	}

	// Setup context with cancellation on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load config and initialize database
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	telemetryClient := telemetry.New(database)
	defer telemetryClient.Close()

	// Create and run MCP server
	server := mcp.NewServer(database, cfg, telemetryClient)
	if err := server.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `stickerdex-mcp - MCP server for the Stickerdex catalog

USAGE:
    stickerdex-mcp [FLAGS]

FLAGS:
    -h, --help       Print this help message
    -v, --version    Print version information

DESCRIPTION:
    stickerdex-mcp is a Model Context Protocol (MCP) server that exposes
    the local sticker catalog to MCP-compatible clients.

    The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).
    It is read-only; the catalog is written through the stickerdex CLI.

CONFIGURATION:
    Add to your client's MCP configuration:

    {
      "mcpServers": {
        "stickerdex": {
          "type": "stdio",
          "command": "stickerdex-mcp"
        }
      }
    }

TOOLS PROVIDED:
    stickerdex_search        Search stickers by tag (any/all)
    stickerdex_list_folder   List a folder's stickers
    stickerdex_get_sticker   Get a single sticker's metadata
    stickerdex_list_folders  List every folder with owner and counts
    stickerdex_list_tags     List tags with usage counts
    stickerdex_get_stats     Get catalog statistics

RESOURCES PROVIDED:
    stickerdex://folder/{name}                   Folder snapshot as JSON
    stickerdex://folder/{name}/stickers/{emote}  Single sticker as JSON
`
	fmt.Print(help)
}
