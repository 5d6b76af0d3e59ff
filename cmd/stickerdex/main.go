// Stickerdex - local emote and sticker catalog
//
// An offline catalog of emotes collected from an external emote service,
// grouped into per-user folders and searchable by tag.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/emotebox/stickerdex/internal/cli"
	"github.com/emotebox/stickerdex/internal/config"
	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load config and open database for persistent tracking ID
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	// Use persistent tracking ID from database
	telemetryClient := telemetry.New(database)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
