package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill"
	"github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill/medibillclient"
	"github.com/medibill/revenue-dashboard-api/internal/api"
	"github.com/medibill/revenue-dashboard-api/internal/config"
	"github.com/medibill/revenue-dashboard-api/internal/scheduler"
	"github.com/medibill/revenue-dashboard-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if !cfg.HasCredentials() {
		logrus.Warn("MEDIBILL_EMAIL or MEDIBILL_PASSWORD not configured; report requests will fail until they are set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	medibillClient := medibillclient.NewClient(cfg)
	medibillIntegrator := medibill.New(cfg, medibillClient)

	reportService := reporting.NewService(cfg, medibillIntegrator)
	snapshots := reporting.NewSnapshotStore()

	reportRefreshService := scheduler.NewReportRefreshService(reportService, snapshots, cfg)
	if err := reportRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start the report refresh scheduler")
	}

	server, err := api.New(
		cfg,
		reportService,
		snapshots,
		reportRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format used across the service
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
