package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insurance-renewal-assistant/config"
	_ "insurance-renewal-assistant/docs" // Swagger docs
	"insurance-renewal-assistant/internal/httpserver"
	paymentRepo "insurance-renewal-assistant/internal/payment/repository"
	paymentMemory "insurance-renewal-assistant/internal/payment/repository/memory"
	paymentSQLite "insurance-renewal-assistant/internal/payment/repository/sqlite"
	"insurance-renewal-assistant/pkg/llmprovider"
	"insurance-renewal-assistant/pkg/log"
)

const paymentCleanupInterval = time.Hour

// @title       Insurance Renewal Assistant API
// @description Conversational car insurance renewal with LLM function calling, quotes, add-ons, road tax and payment flow.
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

	logger.Info(ctx, "Starting Insurance Renewal Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d", len(providers))

	// 4. Payment repository
	repo, err := newPaymentRepository(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize payment repository: ", err)
		return
	}
	go runPaymentCleanup(ctx, logger, repo)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		LLM:         llmManager,
		PaymentRepo: repo,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newPaymentRepository(cfg *config.Config, logger log.Logger) (paymentRepo.Repository, error) {
	switch cfg.Payment.StoreBackend {
	case "sqlite":
		return paymentSQLite.Open(cfg.Payment.SQLitePath, logger)
	case "", "memory":
		return paymentMemory.New(logger), nil
	default:
		return nil, fmt.Errorf("unknown payment store backend: %s", cfg.Payment.StoreBackend)
	}
}

// runPaymentCleanup periodically removes day-old payment records.
func runPaymentCleanup(ctx context.Context, logger log.Logger, repo paymentRepo.Repository) {
	ticker := time.NewTicker(paymentCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleaned, err := repo.CleanupExpired(ctx, time.Now().Add(-24*time.Hour))
			if err != nil {
				logger.Warnf(ctx, "Payment cleanup failed: %v", err)
				continue
			}
			if cleaned > 0 {
				logger.Infof(ctx, "Payment cleanup removed %d records", cleaned)
			}
		}
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
