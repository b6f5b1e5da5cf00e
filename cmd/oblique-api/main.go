package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/oblique/pkg/api"
	"github.com/cbodonnell/oblique/pkg/config"
	"github.com/cbodonnell/oblique/pkg/log"
	"github.com/cbodonnell/oblique/pkg/version"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load("oblique-api", os.Args[1:])
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
	log.Info("Starting api server version %s", version.Get())

	engine, err := cfg.Engine()
	if err != nil {
		panic(fmt.Sprintf("Failed to create engine: %v", err))
	}
	log.Info("Default gravity %.2f m/s²", engine.Gravity())

	apiServerOpts := api.NewAPIServerOptions{
		Port:   cfg.Port,
		Engine: engine,
		Steps:  cfg.Steps,
	}
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: cfg.TLSCertFile,
			KeyFile:  cfg.TLSKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
