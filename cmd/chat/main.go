package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"clientatech-analyst/config"
	"clientatech-analyst/internal/analyst"
	analystUC "clientatech-analyst/internal/analyst/usecase"
	"clientatech-analyst/internal/model"
	"clientatech-analyst/internal/router"
	"clientatech-analyst/internal/sqlgen"
	cacheSQLite "clientatech-analyst/internal/sqlgen/repository/sqlite"
	warehouseSQLite "clientatech-analyst/internal/warehouse/sqlite"
	"clientatech-analyst/pkg/datemath"
	"clientatech-analyst/pkg/llmprovider"
	"clientatech-analyst/pkg/log"

	"github.com/google/uuid"
)

// Interactive terminal client for the analyst pipeline. Shares the
// exact wiring of cmd/api minus the HTTP surface.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := warehouseSQLite.New(cfg.Warehouse.Path, cfg.Warehouse.Tables)
	if err != nil {
		logger.Errorf(ctx, "Failed to open warehouse: %v", err)
		return
	}
	defer store.Close()

	schema, err := store.Schema(ctx)
	if err != nil {
		logger.Errorf(ctx, "Failed to introspect warehouse schema: %v", err)
		return
	}

	hotTTL, err := time.ParseDuration(cfg.Cache.HotTTL)
	if err != nil {
		hotTTL = 10 * time.Minute
	}
	cache, err := cacheSQLite.New(cfg.Cache.Path, cfg.Cache.HotEntries, hotTTL, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open query cache: %v", err)
		return
	}
	defer cache.Close()

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}

	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		retryDelay = 500 * time.Millisecond
	}
	maxTotal, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		maxTotal = 5 * time.Minute
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)

	intentRouter := router.New(manager, logger)
	dispatcher := sqlgen.NewDispatcher(cache, intentRouter, manager, schema, logger)

	dateMath, err := datemath.NewParser(cfg.Analyst.Timezone)
	if err != nil {
		dateMath, _ = datemath.NewParser("UTC")
	}

	uc := analystUC.New(logger, dispatcher, store, manager, dateMath)

	fmt.Println("🤖 ClientaTech Analyst initialized. ('sair' para encerrar)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n👤 Você: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "exit", "quit", "sair":
			fmt.Println("👋 Encerrando...")
			return
		}

		sc := model.Scope{RequestID: uuid.NewString(), Channel: "chat"}

		fmt.Println("⏳ Processando...")
		out, err := uc.Ask(ctx, sc, analyst.AskInput{Question: question})
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			continue
		}

		if out.SQL != "" {
			fmt.Printf("🔍 SQL (Intenção: %s): %s\n", out.Intent, out.SQL)
			fmt.Printf("📊 Resultados encontrados: %d\n", out.RowCount)
		}
		fmt.Printf("\n%s\n", out.Answer)
	}
}
