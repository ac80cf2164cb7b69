package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AngelCh415/geoacq-etl/internal/ads"
	"github.com/AngelCh415/geoacq-etl/internal/config"
	"github.com/AngelCh415/geoacq-etl/internal/gsheet"
	"github.com/AngelCh415/geoacq-etl/internal/httpx"
	"github.com/AngelCh415/geoacq-etl/internal/metrics"
	"github.com/AngelCh415/geoacq-etl/internal/pipeline"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()
	sheetSvc, err := gsheet.NewService(ctx, []byte(cfg.CredentialsJSON), logger)
	if err != nil {
		logger.Error("sheets init", slog.String("err", err.Error()))
		os.Exit(1)
	}

	adsClient := ads.NewClient(ads.NewHTTPClient(cfg.HTTPTimeout), cfg.AdsURL, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	mSvc := metrics.NewService(reg)

	p := pipeline.New(adsClient, sheetSvc, mSvc, logger, cfg)
	r := httpx.NewRouter(logger, p, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
