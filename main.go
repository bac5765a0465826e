package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"phantompong/internal/config"
	"phantompong/internal/game"
)

func main() {
	configPath := flag.String("config", "", "TOML settings file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	flag.Parse()

	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	path := config.Path(*configPath)
	cfg, err := config.Load(path, logger)
	if err != nil {
		logger.Error("config unreadable, using defaults", "err", err)
	}
	level.Set(cfg.SlogLevel())
	logger.Info("starting", "config", path, "tps", cfg.TPS, "speed_multiplier", cfg.SpeedMultiplier)

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if err := ebiten.RunGame(NewGame(cfg, logger)); err != nil {
		logger.Error("game loop stopped", "err", err)
		os.Exit(1)
	}
}
