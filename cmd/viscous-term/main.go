package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"viscous-bg/internal/app"
	"viscous-bg/internal/term"
)

func main() {
	cfg := app.NewConfig()
	logPath := flag.String("log", "", "write lifecycle logs to this file (-v)")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	host, err := term.NewHost(screen, cfg.Renderer(), cfg.Refresh, cfg.Logger(logOut))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = host.Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
