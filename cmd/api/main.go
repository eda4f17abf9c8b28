package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/rgvh/city-explorer-api/internal/config"
	"github.com/rgvh/city-explorer-api/internal/database"
	"github.com/rgvh/city-explorer-api/internal/handlers"
	"github.com/rgvh/city-explorer-api/internal/logger"
	"github.com/rgvh/city-explorer-api/internal/middleware"
	"github.com/rgvh/city-explorer-api/internal/resolver"
	"github.com/rgvh/city-explorer-api/internal/store"
	"github.com/rgvh/city-explorer-api/internal/telemetry"
	"github.com/rgvh/city-explorer-api/internal/upstream"
)

const serviceName = "city-explorer-api"

func main() {
	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.GetLogger("main")

	ctx := context.Background()

	// OpenTelemetry
	tracerShutdown, err := telemetry.InitTracer(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Warnw("failed to initialize tracer", "error", err)
	} else {
		defer func() {
			if err := tracerShutdown(ctx); err != nil {
				log.Warnw("error shutting down tracer", "error", err)
			}
		}()
	}

	meterShutdown, err := telemetry.InitMeter(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		log.Warnw("failed to initialize metrics", "error", err)
	} else {
		defer func() {
			if err := meterShutdown(ctx); err != nil {
				log.Warnw("error shutting down metrics", "error", err)
			}
		}()
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	poolCtx, poolCancel := context.WithCancel(ctx)
	defer poolCancel()
	go database.StartConnectionPoolMetricsCollector(poolCtx, db.DB, 15*time.Second)

	// Core wiring: store and gateways are constructed here and injected
	// into the resolver; nothing below holds ambient globals.
	res := resolver.New(store.New(db), upstream.New(cfg))

	app := fiber.New(fiber.Config{
		AppName:      "City Explorer API",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     `{"time":"${time}","status":${status},"latency":"${latency}","ip":"${ip}","method":"${method}","path":"${path}","user_agent":"${ua}","error":"${error}"}` + "\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	}))
	app.Use(middleware.Prometheus())
	app.Use(telemetry.New(telemetry.Config{
		ServiceName: serviceName,
		Skip: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
	}))
	app.Use(cors.New())

	setupRoutes(app, db, res)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Warnw("error shutting down server", "error", err)
		}
	}()

	log.Infow("server starting", "port", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}

func setupRoutes(app *fiber.App, db *database.DB, res *resolver.Resolver) {
	app.Get("/healthz", handlers.HealthCheck)
	app.Get("/readiness", handlers.ReadinessCheck(db))
	app.Get("/metrics", middleware.PrometheusHandler())

	handlers.SetupRoutes(app, res)
}
