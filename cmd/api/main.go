package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"

	"catalog-manager/config"
	_ "catalog-manager/docs" // Swagger docs
	"catalog-manager/internal/catalog"
	"catalog-manager/internal/catalog/projector"
	"catalog-manager/internal/catalog/repository/memory"
	"catalog-manager/internal/catalog/session"
	"catalog-manager/internal/catalog/usecase"
	"catalog-manager/internal/httpserver"
	"catalog-manager/internal/middleware"
	"catalog-manager/pkg/log"
	"catalog-manager/pkg/metrics"
)

// @title       Catalog Manager API
// @description In-memory product catalog with filtering, sorting and order counting.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Catalog Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPrometheus(registry)
	if err != nil {
		logger.Error(ctx, "Failed to register metrics: ", err)
		return
	}
	httpMetrics, err := metrics.NewHTTP(registry)
	if err != nil {
		logger.Error(ctx, "Failed to register HTTP metrics: ", err)
		return
	}

	// 4. Catalog domain
	tag, err := projector.ParseLocale(cfg.Catalog.Locale)
	if err != nil {
		logger.Warnf(ctx, "Invalid catalog locale %q, falling back to English: %v", cfg.Catalog.Locale, err)
		tag = language.English
	}
	proj := projector.New(tag)
	logger.Infof(ctx, "Collating item names as %s", proj.Locale())

	catalogRepo := memory.New(logger)
	catalogUC := usecase.New(logger, catalogRepo, proj, recorder, presetImages(cfg.Catalog))
	sessions := session.New(cfg.Session.MaxEntries, cfg.Session.TTL)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		HTTPMetrics:     httpMetrics,
		CatalogUC:       catalogUC,
		Sessions:        sessions,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func presetImages(cfg config.CatalogConfig) []catalog.PresetImage {
	images := make([]catalog.PresetImage, 0, len(cfg.PresetImages))
	for _, img := range cfg.PresetImages {
		images = append(images, catalog.PresetImage{Name: img.Name, Path: img.Path})
	}
	return images
}
