package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"proxy-jobs-export/config"
	_ "proxy-jobs-export/docs" // Swagger docs
	"proxy-jobs-export/internal/export"
	"proxy-jobs-export/internal/httpserver"
	jobHTTP "proxy-jobs-export/internal/job/delivery/http"
	"proxy-jobs-export/internal/job/repository/clickup"
	"proxy-jobs-export/internal/job/usecase"
	"proxy-jobs-export/internal/middleware"
	"proxy-jobs-export/pkg/datemath"
	"proxy-jobs-export/pkg/gsheets"
	"proxy-jobs-export/pkg/log"
)

// @title       Proxy Jobs Export API
// @description Builds job rows from ClickUp project folders and exports them as XLSX, CSV or Google Sheets.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Proxy Jobs Export...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Source: %q / %q", cfg.ClickUp.WorkspaceName, cfg.ClickUp.SpaceName)

	// 3. Job domain
	dateMathParser, err := datemath.NewParser(cfg.Extract.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid timezone: %v", err)
	}

	clickupClient, err := clickup.NewClient(cfg.ClickUp.Token, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create ClickUp client: %v", err)
	}
	clickupClient.
		WithBaseURL(cfg.ClickUp.BaseURL).
		WithTimeout(cfg.ClickUp.Timeout).
		WithPageSize(cfg.ClickUp.PageSize).
		WithRateLimit(cfg.ClickUp.RequestsPerMinute).
		WithBackoff(cfg.ClickUp.BackoffBase, cfg.ClickUp.BackoffMax)

	jobUC := usecase.New(logger, clickup.New(clickupClient, logger), dateMathParser, usecase.Config{
		WorkspaceName: cfg.ClickUp.WorkspaceName,
		SpaceName:     cfg.ClickUp.SpaceName,
		StrictLabels:  cfg.Extract.StrictLabels,
		SkipNames:     cfg.Extract.SkipNames,
	})

	// Google Sheets publisher (optional)
	var publisher jobHTTP.Publisher
	if cfg.GoogleSheets.CredentialsPath != "" && cfg.GoogleSheets.SpreadsheetID != "" {
		sheetsClient, sheetsErr := gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
		if sheetsErr != nil {
			logger.Warnf(ctx, "Google Sheets not available (optional): %v", sheetsErr)
		} else {
			publisher = sheetsClient
			logger.Info(ctx, "Google Sheets publisher initialized")
		}
	}

	jobHandler := jobHTTP.New(logger, jobUC, publisher, jobHTTP.Config{
		Export:        export.Options{IncludeAdjournment: cfg.Export.IncludeAdjournment},
		FileName:      cfg.Export.FileName,
		PreviewRows:   cfg.Export.PreviewRows,
		CacheSize:     cfg.Export.CacheSize,
		CacheTTL:      cfg.Export.CacheTTL,
		SpreadsheetID: cfg.GoogleSheets.SpreadsheetID,
		SheetName:     cfg.GoogleSheets.SheetName,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,
		JobHandler:     jobHandler,
		Middleware:     middleware.New(logger, cfg.HTTPServer.BuildRateLimitPerM),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
