package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"helpmap/docs"
	"helpmap/internal/config"
	"helpmap/internal/database"
	"helpmap/internal/database/migration"
	handlers "helpmap/internal/http/handler"
	"helpmap/internal/http/middleware"
	"helpmap/internal/logging"
	"helpmap/internal/otel"
	"helpmap/internal/repository"
	"helpmap/internal/repository/postgres"
	"helpmap/internal/repository/sqlite"
	"helpmap/internal/service"
	"helpmap/internal/web"
)

const shutdownTimeout = 10 * time.Second

// @title Help Map API
// @version 1.0
// @BasePath /
func main() {
	// .env is auto-loaded if present
	cfg := config.Load()

	loc, err := cfg.Location()
	if err != nil {
		logrus.WithError(err).Fatal("invalid timezone")
	}
	log := logging.New(os.Stdout, cfg.LogLevel, loc)

	if err := run(cfg, loc, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.AppConfig, loc *time.Location, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracer shutdown")
		}
	}()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.Run(ctx, db, cfg.Database, log); err != nil {
		return err
	}

	repo, err := newRepository(cfg.Database.Driver, db)
	if err != nil {
		return err
	}
	svc := service.NewHelpRequestService(repo, loc)

	app := fiber.New(fiber.Config{
		ErrorHandler:       handlers.ErrorHandler(log),
		Views:              web.NewEngine(),
		ProxyHeader:        cfg.ProxyHeader,
		EnableIPValidation: cfg.ProxyHeader != "",
	})

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get(middleware.MetricsPath, middleware.MetricsHandler(prometheus.DefaultGatherer))
	app.Use("/static", web.Static())
	handlers.RegisterRoutes(app, db, svc, log)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"port":      cfg.Port,
			"db_driver": cfg.Database.Driver,
			"timezone":  loc.String(),
		}).Info("server starting")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func newRepository(driver string, db *sql.DB) (repository.HelpRequestRepository, error) {
	switch driver {
	case config.DriverSQLite:
		return sqlite.NewHelpRequestSQLite(db), nil
	case config.DriverPostgres:
		return postgres.NewHelpRequestPostgres(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
