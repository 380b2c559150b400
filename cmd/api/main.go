package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clientatech-analyst/config"
	_ "clientatech-analyst/docs" // Swagger docs
	analystUC "clientatech-analyst/internal/analyst/usecase"
	"clientatech-analyst/internal/httpserver"
	"clientatech-analyst/internal/router"
	"clientatech-analyst/internal/sqlgen"
	cacheSQLite "clientatech-analyst/internal/sqlgen/repository/sqlite"
	warehouseSQLite "clientatech-analyst/internal/warehouse/sqlite"
	"clientatech-analyst/pkg/datemath"
	"clientatech-analyst/pkg/llmprovider"
	"clientatech-analyst/pkg/log"
)

// @title       ClientaTech Analyst API
// @description LLM-powered CRM analyst: intent routing, SQL generation with exact-match caching, and natural-language synthesis over a SQLite warehouse.
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

	logger.Info(ctx, "Starting ClientaTech Analyst...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Warehouse: %s", cfg.Warehouse.Path)

	// 3. Warehouse
	store, err := warehouseSQLite.New(cfg.Warehouse.Path, cfg.Warehouse.Tables)
	if err != nil {
		logger.Errorf(ctx, "Failed to open warehouse: %v", err)
		return
	}
	defer store.Close()

	// Schema is rendered once at startup; without it there is no
	// query generation, so failure here is fatal.
	schema, err := store.Schema(ctx)
	if err != nil {
		logger.Errorf(ctx, "Failed to introspect warehouse schema: %v", err)
		return
	}
	logger.Debugf(ctx, "Warehouse schema:\n%s", schema)

	// 4. Query cache
	hotTTL, err := time.ParseDuration(cfg.Cache.HotTTL)
	if err != nil {
		logger.Warnf(ctx, "Invalid cache.hotttl %q, using 10m: %v", cfg.Cache.HotTTL, err)
		hotTTL = 10 * time.Minute
	}
	cache, err := cacheSQLite.New(cfg.Cache.Path, cfg.Cache.HotEntries, hotTTL, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open query cache: %v", err)
		return
	}
	defer cache.Close()

	// 5. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, managerConfig(ctx, logger, &cfg.LLM), logger)

	// 6. Pipeline
	intentRouter := router.New(manager, logger)
	dispatcher := sqlgen.NewDispatcher(cache, intentRouter, manager, schema, logger)

	dateMath, err := datemath.NewParser(cfg.Analyst.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Analyst.Timezone, err)
		dateMath, _ = datemath.NewParser("UTC")
	}

	uc := analystUC.New(logger, dispatcher, store, manager, dateMath)

	// 7. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AnalystUC:   uc,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// managerConfig parses the duration strings from config into the
// manager's typed config, with loud fallbacks on bad values.
func managerConfig(ctx context.Context, logger log.Logger, cfg *config.LLMConfig) *llmprovider.Config {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.retry_delay %q, using 500ms: %v", cfg.RetryDelay, err)
		retryDelay = 500 * time.Millisecond
	}
	maxTotal, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, using 5m: %v", cfg.MaxTotalTimeout, err)
		maxTotal = 5 * time.Minute
	}
	return &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}
}
