package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mchmarny/menunav/pkg/config"
	"github.com/mchmarny/menunav/pkg/menu"
)

var version = "v0.0.0" // Set at build time via -ldflags "-X main.version=version"

func main() {
	cfg, err := config.Load(version)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := menu.Run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("session error", "error", err)
		os.Exit(1)
	}
}
