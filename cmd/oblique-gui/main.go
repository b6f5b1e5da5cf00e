package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cbodonnell/oblique/client/game"
	"github.com/cbodonnell/oblique/pkg/config"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/cbodonnell/oblique/pkg/plot"
	"github.com/cbodonnell/oblique/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load("oblique-gui", os.Args[1:])
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
	log.Info("Starting oblique gui version %s", version.Get())

	engine, err := cfg.Engine()
	if err != nil {
		panic(fmt.Sprintf("Failed to create engine: %v", err))
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:  log.Enabled(log.LogLevelDebug),
		Engine: engine,
		Steps:  cfg.Steps,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle(plot.DefaultTitle)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
