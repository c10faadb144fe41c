// cmd/spacewars/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/engine"
	"github.com/opd-ai/go-spacewars/pkg/logging"
	engorender "github.com/opd-ai/go-spacewars/pkg/render/engo"
	"github.com/opd-ai/go-spacewars/pkg/validation"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	// Load configuration
	var gameConfig *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using defaults",
			"path", *configPath)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if err := validation.ValidateGameConfig(gameConfig); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	game := engine.NewGame(gameConfig)
	if err := game.InitializeResourceManager(); err != nil {
		log.Fatalf("Failed to initialize resource manager: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := game.ResourceManager.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Resource manager shutdown", err)
		}
	}()

	logger.Info(ctx, "Starting game window",
		"width", *width,
		"height", *height,
		"crafts", len(gameConfig.Crafts),
	)

	opts := engo.RunOptions{
		Title:      "Spacewars",
		Width:      *width,
		Height:     *height,
		Fullscreen: *fullscreen,
	}
	engo.Run(opts, engorender.NewGameScene(game, gameConfig))
}
