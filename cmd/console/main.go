package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lixing-Zhang/table-orders/internal/config"
	"github.com/Lixing-Zhang/table-orders/internal/console"
	"github.com/Lixing-Zhang/table-orders/internal/handlers"
	"github.com/Lixing-Zhang/table-orders/internal/middleware"
	"github.com/Lixing-Zhang/table-orders/internal/repository"
	"github.com/Lixing-Zhang/table-orders/internal/service"
	"github.com/Lixing-Zhang/table-orders/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	log.Info("starting order console",
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
	)

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()
	orderRepo := repository.NewInMemoryOrderRepository()

	// Initialize services
	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(productRepo, orderRepo, log)
	salesService := service.NewSalesService(orderRepo)

	// Initialize handlers
	dispatcher := handlers.NewDispatcher(
		handlers.NewProductHandler(productService, log),
		handlers.NewOrderHandler(orderService, log),
		handlers.NewSalesHandler(salesService, log),
	)

	// Apply middleware
	handle := middleware.Chain(dispatcher.Handle,
		middleware.Recoverer(log),
		middleware.Logger(log),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session := console.NewSession(handle, os.Stdin, os.Stdout, cfg.Console, log)

	// Run the session in a goroutine; reading stdin cannot be interrupted
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	// Wait for the session to end or for an interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Error("session failed", "error", err)
			os.Exit(1)
		}
		log.Info("session ended")
	case sig := <-quit:
		log.Info("interrupted, discarding session", "signal", sig.String())
		cancel()
		os.Exit(130)
	}
}
