package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kiki830621/che-things-mcp/config"
	"github.com/kiki830621/che-things-mcp/internal/httpserver"
	"github.com/kiki830621/che-things-mcp/internal/things/repository/applescript"
	"github.com/kiki830621/che-things-mcp/internal/things/usecase"
	"github.com/kiki830621/che-things-mcp/pkg/datemath"
	"github.com/kiki830621/che-things-mcp/pkg/log"
	"github.com/kiki830621/che-things-mcp/pkg/osascript"
	"github.com/kiki830621/che-things-mcp/pkg/thingsurl"
)

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

	logger.Info(ctx, "Starting Things bridge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Things domain
	dates, err := datemath.NewParser(cfg.Things.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Things.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	runner := osascript.New()
	defer runner.Close()

	urls := thingsurl.New(cfg.Things.AuthToken)
	if !urls.HasAuthToken() {
		logger.Warn(ctx, "THINGS_AUTH_TOKEN not set, checklist tools will be rejected by the app")
	}

	repo := applescript.New(logger, runner, dates)
	thingsUC := usecase.New(logger, repo, urls)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ThingsUseCase:   thingsUC,
		RateLimitPerMin: cfg.Things.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
