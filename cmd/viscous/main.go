//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"viscous-bg/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg.Renderer(), cfg.Logger(os.Stderr))
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("viscous")
	ebiten.SetTPS(cfg.Refresh)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
