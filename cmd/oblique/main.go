package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cbodonnell/oblique/client/game"
	"github.com/cbodonnell/oblique/client/terminal"
	"github.com/cbodonnell/oblique/pkg/config"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/cbodonnell/oblique/pkg/session"
	"github.com/cbodonnell/oblique/pkg/version"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load("oblique", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.SetupLogger(); err != nil {
		panic(fmt.Sprintf("Failed to set up logger: %v", err))
	}
	log.Debug("Starting oblique version %s", version.Get())

	engine, err := cfg.Engine()
	if err != nil {
		panic(fmt.Sprintf("Failed to create engine: %v", err))
	}
	log.Debug("Using gravity %.2f m/s²", engine.Gravity())

	var renderer session.Renderer
	switch cfg.Renderer {
	case config.RendererWindow:
		renderer = &game.WindowRenderer{Debug: log.Enabled(log.LogLevelDebug)}
	case config.RendererTerminal:
		renderer = &terminal.Renderer{}
	}

	s := session.NewSession(session.NewSessionOptions{
		In:       os.Stdin,
		Out:      os.Stdout,
		Engine:   engine,
		Steps:    cfg.Steps,
		Renderer: renderer,
	})
	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
