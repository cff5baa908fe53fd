package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"

	"akbstore/internal/config"
	"akbstore/internal/handlers"
	"akbstore/internal/logging"
	"akbstore/internal/metrics"
	"akbstore/internal/middleware"
	"akbstore/internal/repositories"
	"akbstore/internal/services"
	"akbstore/pkg/rabbitmq"
)

const serviceName = "akbstore"

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(logging.Config{
		ServiceName: serviceName,
		Env:         cfg.AppEnv,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Service stopped with error", zap.Error(err))
		logging.Sync(logger)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	logger.Info("Starting service",
		zap.String("port", cfg.AppPort),
		zap.String("store_driver", cfg.StoreDriver),
		zap.Bool("events_enabled", cfg.EventsEnabled()))

	// --- Store ---
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	repo, err := openRepository(connectCtx, cfg, logger)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := repo.Close(ctx); err != nil {
			logger.Error("Error closing product store", zap.Error(err))
		}
	}()

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// --- Events ---
	opts := []services.Option{services.WithLogger(logger), services.WithMetrics(m)}
	if cfg.EventsEnabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			// Events are best effort; the catalog still serves without them.
			logger.Warn("RabbitMQ unavailable, cart events disabled", zap.Error(err))
		} else {
			defer func() {
				if err := mqClient.Close(); err != nil {
					logger.Error("Error closing RabbitMQ client", zap.Error(err))
				}
			}()
			logger.Info("RabbitMQ connected", zap.String("queue", mqClient.Queue()))
			opts = append(opts, services.WithPublisher(mqClient))
		}
	}

	productService := services.NewProductService(repo, opts...)

	// --- Seeding ---
	seedCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	productService.EnsureSeeded(seedCtx)
	cancel()

	app := newApp(cfg, productService, logger, m)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Error("Error during Fiber shutdown", zap.Error(err))
	}
	logger.Info("Server gracefully stopped")
	return nil
}

// newApp wires the HTTP surface around an already built service.
func newApp(cfg config.Config, productService *services.ProductService, logger *zap.Logger, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger, m))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
	}))

	// --- Static images ---
	app.Static("/images", cfg.ImagesDir)

	// --- API Routes ---
	api := app.Group("/api")
	api.Get("/health", handlers.HandleHealth)
	handlers.NewProductHandler(productService, logger).RegisterRoutes(api)
	handlers.NewCartHandler(productService, logger).RegisterRoutes(api)

	return app
}

// openRepository builds the product store selected by cfg.StoreDriver.
func openRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories.ProductRepository, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		logger.Info("Connecting to MongoDB", zap.String("url", cfg.RedactedMongoURL()), zap.String("db", cfg.MongoDB))
		client, err := repositories.ConnectMongo(ctx, cfg.MongoURL)
		if err != nil {
			return nil, err
		}
		repo := repositories.NewMongoProductRepository(client, cfg.MongoDB)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Warn("Could not ensure product indexes", zap.Error(err))
		}
		return repo, nil
	case config.DriverPostgres:
		return repositories.OpenGORMProductRepository(postgres.Open(cfg.DatabaseDSN), nil)
	case config.DriverSQLite:
		return repositories.OpenGORMProductRepository(sqlite.Open(cfg.DatabaseDSN), nil)
	case config.DriverMemory:
		return repositories.NewMemoryProductRepository(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.StoreDriver)
	}
}
