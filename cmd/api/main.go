package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scan-kart/internal/auth"
	"scan-kart/internal/cart"
	"scan-kart/internal/catalog"
	"scan-kart/internal/checkout"
	"scan-kart/internal/config"
	"scan-kart/internal/handler"
	"scan-kart/internal/history"
	"scan-kart/internal/router"
	"scan-kart/internal/service"
	"scan-kart/internal/storage"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
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
	logger.Info().Msg("starting scan-kart terminal API")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the key-value backend
	kv, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStore()

	// Cart state loads in the background; mutations wait for it.
	cartStore := cart.Open(ctx, kv, logger, cart.Options{})
	orders := history.NewRepository(kv, logger)

	// Initialize product lookup
	var lookup catalog.Lookup
	switch cfg.Catalog.Mode {
	case "http":
		lookup = catalog.NewHTTPLookup(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, logger)
		logger.Info().Str("base_url", cfg.Catalog.BaseURL).Msg("using remote product catalogue")
	default:
		lookup = catalog.NewMockLookup(cfg.Catalog.MockLatency, logger)
		logger.Info().Msg("using mock product catalogue")
	}

	// Initialize checkout
	gateway := checkout.NewSimulatedGateway(cfg.Checkout.PaymentDelay, logger)
	process := checkout.NewProcess(cartStore, orders, gateway, checkout.Config{
		PaymentTimeout:      cfg.Checkout.PaymentTimeout,
		HistoryWriteTimeout: cfg.Checkout.HistoryWriteTimeout,
	}, logger)

	// Initialize auth
	session := auth.NewSession()
	authClient := auth.NewClient(auth.Endpoints{Login: cfg.Auth.LoginURL, Signup: cfg.Auth.SignupURL}, cfg.Auth.Timeout, session, logger)

	// Initialize services
	productService := service.NewProductService(lookup, logger)
	cartService := service.NewCartService(cartStore, productService, logger)
	checkoutService := service.NewCheckoutService(process, logger)
	orderService := service.NewOrderService(orders, logger)
	authService := service.NewAuthService(authClient, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Product:  handler.NewProductHandler(productService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Auth:     handler.NewAuthHandler(authService, logger),
	}, session, logger)

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
		stopCheckout(process, cartStore, logger)
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
			stopCheckout(process, cartStore, logger)
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		stopCheckout(process, cartStore, logger)
		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// stopCheckout settles the checkout process and drains pending cart writes
// before the storage backend is closed.
func stopCheckout(process *checkout.Process, store *cart.Store, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The error is logged by the process.
	_ = process.Shutdown(ctx)

	if err := store.Close(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to persist cart on shutdown")
	}
}

// openStore builds the configured key-value backend and returns a cleanup
// function for its connections.
func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (storage.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case storage.BackendMemory:
		logger.Warn().Msg("using in-memory storage, cart and orders are lost on restart")
		return storage.NewMemoryStore(), noop, nil

	case storage.BackendFile:
		store, err := storage.NewFileStore(cfg.Storage.Dir, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case storage.BackendPostgres:
		pool, err := storage.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewPostgresStore(ctx, pool, logger)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	case storage.BackendRedis:
		client, err := storage.NewRedisClient(ctx, cfg.Storage.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close redis client")
			}
		}
		return storage.NewRedisStore(client, cfg.Storage.RedisPrefix, logger), closeClient, nil

	case storage.BackendS3:
		client, err := storage.NewS3Client(ctx, cfg.Storage.S3Region)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewS3Store(client, cfg.Storage.S3Bucket, cfg.Storage.S3Prefix, logger), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
