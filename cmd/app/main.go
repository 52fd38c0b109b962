package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/jobs"

	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	gormDB := mustGormOpen(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	manager := startJobs(&app, configs, logger)
	defer manager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: configs.DSN(), PreferSimpleProtocol: true}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to postgres: %v", err)
	}

	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
	return gormDB
}

// startJobs runs the outbox relay when a broker is configured.
func startJobs(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *jobs.JobManager {
	if configs.KafkaHost == "" {
		logger.Info("KAFKA_HOST is not set, outbox relay disabled")
		return jobs.NewJobManager(logger)
	}

	relay, publisher := app.CreateOutboxRelay()
	// StopAll runs in reverse, so the relay stops before the publisher closes.
	manager := jobs.NewJobManager(logger, closerJob{name: "kafka_publisher", close: publisher.Close, logger: logger}, relay)
	if err := manager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return manager
}

// closerJob releases a resource when the job manager stops.
type closerJob struct {
	name   string
	close  func() error
	logger *slog.Logger
}

func (j closerJob) Name() string { return j.name }
func (j closerJob) Start() error { return nil }
func (j closerJob) Stop() {
	if err := j.close(); err != nil {
		j.logger.Error("Failed to close", "job", j.name, "error", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()
	logger.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
