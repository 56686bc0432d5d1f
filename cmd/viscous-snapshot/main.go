package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"viscous-bg/internal/app"
	"viscous-bg/internal/snapshot"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	img, err := snapshot.Render(cfg.Renderer(), cfg.Width, cfg.Height, cfg.At, cfg.Logger(os.Stderr))
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%dx%d at %v)\n", cfg.Output, cfg.Width, cfg.Height, cfg.At)
}
