package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-launcher/internal/client"
	"github.com/MKhiriev/go-launcher/internal/config"
	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/internal/tui"
)

const role = "go-launcher"

func main() {
	cfg, err := config.GetLauncherConfig()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLauncherLogger(role, cfg.Log.Level, cfg.Log.File)
	logger.SetGlobal(log)

	info := client.ResolveVersionInfo(cfg.Version, log)

	var ui client.UI
	if !cfg.Version.Print {
		ui, err = tui.New(info, tui.Options{
			AppName:   cfg.App.Name,
			Theme:     cfg.UI.Theme,
			Mouse:     cfg.UI.Mouse,
			StatusTTL: cfg.UI.StatusTTL,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}
	}

	app, err := client.NewApp(cfg, info, ui, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init launcher app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("launcher run error")
	}
}
