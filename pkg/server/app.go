package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CourtIQ/internal/domain/repository"
	"CourtIQ/pkg/config"
	xhttp "CourtIQ/pkg/http"
	pkgkafka "CourtIQ/pkg/kafka"
	applogger "CourtIQ/pkg/logger"
)

// App encapsulates the entire application lifecycle: the HTTP API, the
// optional Kafka stat-updates consumer, and graceful shutdown of both.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	consumer   *pkgkafka.Consumer
	producer   *pkgkafka.Producer
	kh         pkgkafka.MessageHandler
	handler    xhttp.Handler
	store      repository.PlayerStore
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	consumer *pkgkafka.Consumer,
	producer *pkgkafka.Producer,
	kh pkgkafka.MessageHandler,
	handler xhttp.Handler,
	store repository.PlayerStore,
) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		consumer: consumer,
		producer: producer,
		kh:       kh,
		handler:  handler,
		store:    store,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ship aggregated error logs when a producer and topic are configured.
	if a.producer != nil && a.cfg.Kafka.LogsTopic != "" {
		a.log.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          a.cfg.Kafka.LogsTopic,
			Publisher:      a.producer,
		})
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if a.consumer != nil && a.kh != nil {
		a.consumer.RegisterHandler(a.kh)
		go func() {
			if err := a.consumer.Start(); err != nil {
				a.log.Error("kafka consumer error", applogger.Error(err))
			}
		}()
		a.log.Info("kafka consumer started", applogger.String("topic", a.kh.Topic()))
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("default_season", a.cfg.League.DefaultSeason),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if a.consumer != nil {
		if err := a.consumer.Stop(shutdownCtx); err != nil {
			a.log.Warn("kafka consumer stop error", applogger.Error(err))
		}
	}

	// Flush the log collector before the producer goes away.
	a.log.RemoveCollector()
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.log.Warn("kafka producer close error", applogger.Error(err))
		}
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("store close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
