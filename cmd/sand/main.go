//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"sandbox/internal/app"
	"sandbox/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		app.NewConfig().Logger(os.Stderr).Error("invalid configuration", "err", err)
		os.Exit(2)
	}
	logger := cfg.Logger(os.Stderr)

	world := sand.NewWithConfig(sand.FromMap(cfg.SimOptions()))
	session := app.NewSession(world, cfg.Brush, logger)
	game := app.New(session, cfg, logger)

	size := world.Size()
	logger.Info("starting", "w", size.W, "h", size.H, "scale", cfg.Scale, "tps", cfg.TPS, "seed", cfg.Seed)

	ebiten.SetWindowTitle("sandbox - " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
