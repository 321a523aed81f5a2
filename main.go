package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cardoctor/config"
	"cardoctor/database"
	"cardoctor/database/repository"
	"cardoctor/handlers"
	"cardoctor/routes"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: %v", err)
	}

	logger, err := utils.NewLogger(cfg)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := client.Database(cfg.DatabaseName)

	// repositories.
	serviceRepo := repository.NewMongoServiceRepo(db, cfg.DBTimeout)
	bookingRepo := repository.NewMongoBookingRepo(db, cfg.DBTimeout)
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("main: booking indexes not created", zap.Error(err))
	}

	tokens := utils.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)
	monitor := utils.NewHealthMonitor(func(ctx context.Context) error {
		return database.Ping(ctx, client)
	}, cfg.DBTimeout)
	monitor.Start(ctx, time.Minute)

	handlerBundle := &handlers.HandlerBundle{
		Health:         handlers.NewHealthHandler(monitor),
		Auth:           handlers.NewAuthHandler(tokens),
		Services:       handlers.NewServiceHandler(serviceRepo),
		Bookings:       handlers.NewBookingHandler(bookingRepo),
		TokenValidator: tokens,
	}
	router := routes.NewRouter(logger, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Car doctor server listening on %s", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")
	shutdown(srv, client, logger)
	logger.Info("main: server stopped gracefully")
}

func shutdown(srv *http.Server, client *mongo.Client, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
	}
}
