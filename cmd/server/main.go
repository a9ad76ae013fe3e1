package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/babitas-kitchen/storefront/internal/checkout"
	"github.com/babitas-kitchen/storefront/internal/config"
	"github.com/babitas-kitchen/storefront/internal/handlers"
	"github.com/babitas-kitchen/storefront/internal/intro"
	"github.com/babitas-kitchen/storefront/internal/promo"
	"github.com/babitas-kitchen/storefront/internal/repository"
	"github.com/babitas-kitchen/storefront/internal/service"
	"github.com/babitas-kitchen/storefront/internal/session"
	"github.com/babitas-kitchen/storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Promo codes are optional; without sources every code is rejected
	promoValidator := promo.NewValidator()
	if len(cfg.Promo.Sources) > 0 {
		log.Info("loading promo codes...", "sources", len(cfg.Promo.Sources))
		if err := promoValidator.LoadFromSources(ctx, cfg.Promo.Sources); err != nil {
			log.Error("failed to load promo codes", "error", err)
			os.Exit(1)
		}
		stats := promoValidator.GetStats()
		log.Info("promo codes loaded",
			"total_sources", stats["total_sources"],
			"total_codes", stats["total_codes"],
		)
	}

	// Initialize repositories
	productRepo := repository.NewInMemoryProductRepository()

	// Initialize services
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(productRepo)

	sessions := session.NewStore(session.Options{
		IdleTimeout:     cfg.Session.IdleTimeout,
		NotificationTTL: cfg.Session.NotificationTTL,
		Checkout: checkout.Options{
			SubmitDelay: cfg.Checkout.SubmitDelay,
			ResetDelay:  cfg.Checkout.ResetDelay,
			DeliveryFee: cfg.Checkout.DeliveryFee,
			Promo:       promoValidator,
		},
	}, log)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sessions.Run(sweepCtx)
	}()

	router := handlers.NewRouter(handlers.RouterDeps{
		Config:         cfg,
		Logger:         log,
		Sessions:       sessions,
		ProductService: productService,
		CartService:    cartService,
		Promo:          promoValidator,
		IntroSteps:     intro.DefaultSteps(),
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	stop()

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Sessions close once in-flight requests are done
	stopSweeper()
	<-sweeperDone

	log.Info("server stopped gracefully")
}
