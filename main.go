package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/keystone/assets"
	"github.com/milk9111/keystone/config"
	"github.com/milk9111/keystone/logging"
	"github.com/milk9111/keystone/manifest"
	"github.com/peterbourgon/ff/v4"
)

func main() {
	cfg, err := config.Parse("keystone", os.Stderr, os.Args[1:])
	if errors.Is(err, ff.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "keystone: %v\n", err)
		os.Exit(2)
	}

	logger := logging.NewLogger(os.Stderr, cfg.Logging)

	m, err := manifest.LoadManifest(cfg.Manifest)
	if err != nil {
		logger.Logger.Error("load manifest", "error", err)
		os.Exit(1)
	}
	requests, err := m.Requests()
	if err != nil {
		logger.Logger.Error("load manifest", "error", err)
		os.Exit(1)
	}

	server := assets.NewServer(cfg.AssetFS(),
		assets.WithWorkers(cfg.Workers),
		assets.WithLogger(logger.Logger),
		assets.WithDecoder(".wav", decodeWAV),
	)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("keystone")

	game := NewGame(cfg, logger, server, requests)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Logger.Error("run game", "error", err)
		game.Close()
		os.Exit(1)
	}
}
