// Command export exports one keepno note and prints its download URL.
//
//	export -note 7 -format pdf -session <cookie>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/keepno/internal/client"
	"github.com/MKhiriev/keepno/internal/config"
	"github.com/MKhiriev/keepno/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewLogger("keepno-export")

	cfg, err := config.GetExportConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return 2
	}
	if cfg.App.LogFile != "" {
		log = logger.NewClientLogger("keepno-export", cfg.App.LogFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exporter, err := client.NewExporter(ctx, cfg, log)
	if err != nil {
		log.Err(err).Msg("init exporter")
		return 1
	}
	defer func() {
		if err := exporter.Close(); err != nil {
			log.Err(err).Msg("close exporter")
		}
	}()

	location, err := exporter.Run(ctx)
	if err != nil {
		log.Err(err).Msg("export failed")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println(location)
	return 0
}
