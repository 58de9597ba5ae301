package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shambaledger/farm_ledger_app/internal/adapters/memory"
	"github.com/shambaledger/farm_ledger_app/internal/core/services"
	"github.com/shambaledger/farm_ledger_app/internal/handlers"
	"github.com/shambaledger/farm_ledger_app/internal/middleware"
	"github.com/shambaledger/farm_ledger_app/internal/platform/config"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/shambaledger/farm_ledger_app/internal/core/ports/services"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// In-memory adapters: the entry snapshot and the fixed farm chart
	ledgerRepo := memory.NewLedgerRepository()
	chartRepo := memory.NewChartRepository()

	container := &portssvc.ServiceContainer{
		Ledger:    services.NewLedgerService(ledgerRepo, chartRepo),
		EntryView: services.NewEntryViewService(ledgerRepo, chartRepo),
		Account:   services.NewAccountService(chartRepo),
		Reporting: services.NewReportingService(ledgerRepo, chartRepo),
	}

	if cfg.SeedDemoData {
		count, err := container.Ledger.IngestEntries(context.Background(), memory.DemoEntries(), true)
		if err != nil {
			logger.Error("Failed to seed demo ledger", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Demo ledger seeded", slog.Int("entries", count))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
