package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lojinha/internal/config"
	"lojinha/internal/database"
	"lojinha/internal/handler"
	"lojinha/internal/model"
	"lojinha/internal/notify"
	"lojinha/internal/repository"
	"lojinha/internal/router"
	"lojinha/internal/service"
	"lojinha/internal/session"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watchOrders tails the orders collection and surfaces new orders and
// status changes as notifications for whoever is watching the logs.
func watchOrders(ctx context.Context, db *mongo.Database, notifier notify.Notifier, logger zerolog.Logger) {
	orders := db.Collection(database.CollectionOrders)

	events, err := repository.WatchCollection[model.Order](ctx, orders, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("order feed unavailable")
		return
	}

	for event := range events {
		if event.Document == nil {
			continue
		}
		switch event.OperationType {
		case "insert":
			notifier.Notify(notify.Notification{
				Title:       "New order received",
				Description: fmt.Sprintf("Order #%s, total %.2f", event.Document.Reference(), event.Document.Total),
			})
		case "update", "replace":
			logger.Info().
				Str("order_id", event.DocumentID).
				Str("status", event.Document.Status.String()).
				Msg("order updated")
		}
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting lojinha API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MongoDB connection
	client, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from database")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Initialize Redis-backed session store
	redisClient := session.NewClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()
	sessions := session.NewStore(redisClient, cfg.Session.TTL, logger)

	// Initialize notifier
	notifier := notify.NewLogNotifier(logger)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)
	customerRepo := repository.NewCustomerRepository(db, logger)
	bannerRepo := repository.NewBannerRepository(db, logger)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, logger)
	checkoutService := service.NewCheckoutService(orderRepo, customerRepo, productRepo, sessions, notifier, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	bannerService := service.NewBannerService(bannerRepo, logger)
	customerService := service.NewCustomerService(customerRepo, logger)

	// Live order feed. Change streams need a replica set, so a standalone
	// deployment just logs a warning and runs without the feed.
	go watchOrders(ctx, db, notifier, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:  handler.NewProductHandler(catalogService, logger),
		Banner:   handler.NewBannerHandler(bannerService, logger),
		Cart:     handler.NewCartHandler(sessions, catalogService, notifier, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, sessions, notifier, logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Customer: handler.NewCustomerHandler(customerService, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
