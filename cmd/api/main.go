package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"photodrop/internal/adapters/eventbroker/nats"
	"photodrop/internal/adapters/handlers/http/chi"
	eventhandler "photodrop/internal/adapters/handlers/http/chi/v1/event"
	photohandler "photodrop/internal/adapters/handlers/http/chi/v1/photo"
	"photodrop/internal/adapters/repository/postgres"
	"photodrop/internal/adapters/storage/minio"
	"photodrop/internal/config"
	"photodrop/internal/core/port"
	"photodrop/internal/core/service/cleanup"
	eventservice "photodrop/internal/core/service/event"
	"photodrop/internal/core/service/upload"
	"photodrop/internal/core/service/validation"
	"photodrop/internal/pkg/auth"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//broker, optional: accepted photos just go unannounced without it
	var publisher port.NotificationPublisher
	natsPublisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Warn("running without NATS publisher", "error", err)
	} else {
		publisher = natsPublisher
		defer natsPublisher.Close()
	}

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	//services
	validationCfg := cfg.Validation.ToDomain()
	extractor := validation.NewExtractor(logger)
	eventService := eventservice.NewEventService(unitOfWork, validation.NewEventTimeValidator())
	uploadService := upload.NewUploadService(unitOfWork, minioAdapter, publisher, extractor, validationCfg, logger)
	cleanupService := cleanup.NewCleanupService(unitOfWork, minioAdapter, logger)

	//http
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	requireAuth := auth.Middleware(tokens, logger)

	router := chi.NewRouter(chi.RouterDeps{
		Logger:       logger,
		EventHandler: eventhandler.NewEventHandlerV1(eventService, requireAuth, logger),
		PhotoHandler: photohandler.NewPhotoHandlerV1(uploadService, requireAuth, logger),
		RateLimit:    cfg.RateLimit,
		Env:          cfg.Env.Env,
	})
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init cleanup task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initCleanupTask(ctx, cleanupService, cfg.Cleanup, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initCleanupTask(ctx context.Context, service port.CleanupService, cfg config.CleanupConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.Every)
	defer ticker.Stop()

	logger.Info("cleanup task initialized", "interval", cfg.Every, "retention", cfg.Retention)

	for {
		select {
		case <-ticker.C:
			logger.Info("cleanup task starting")
			err := service.PurgeDeletedPhotos(ctx, time.Now().Add(-cfg.Retention))
			if err != nil {
				logger.Error("failed to purge deleted photos", "error", err)
			} else {
				logger.Info("cleanup task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("cleanup task stopped")
			return
		}
	}

}
