package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/adamwal/payout-receipt/internal/config"
	"github.com/adamwal/payout-receipt/internal/document"
	httpserver "github.com/adamwal/payout-receipt/internal/interfaces/http"
	"github.com/adamwal/payout-receipt/internal/service"
	"github.com/adamwal/payout-receipt/pkg/utils"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	// Optional .env next to the binary; missing file is fine.
	_ = gotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting payout-receipt service",
		zap.Int("port", cfg.Server.Port),
		zap.String("output_dir", cfg.Receipt.OutputDir))

	if err := os.MkdirAll(cfg.Receipt.OutputDir, 0755); err != nil {
		logger.Fatal("Failed to create output directory", zap.Error(err))
	}

	assembler := document.NewAssembler(document.FontConfig{
		RegularPath: cfg.Receipt.FontPath,
		BoldPath:    cfg.Receipt.FontBoldPath,
	}, logger)

	receiptService := service.NewReceiptService(assembler, cfg.Receipt.OutputDir, logger)

	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, receiptService, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited")
}
