package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/keepno/internal/client"
	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
	"github.com/MKhiriev/keepno/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("keepno-client").Err(err).Msg("error getting configs")
		return 2
	}
	log := logger.NewClientLogger("keepno-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("close client app")
		}
	}()

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		if errors.Is(err, client.ErrNoSession) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
