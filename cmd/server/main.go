package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/schooldesk/ordering/internal/config"
	"github.com/schooldesk/ordering/internal/db"
)

var migrateOnly = flag.Bool("migrate-only", false, "run DB migrations and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	dbConn, err := db.ConnectAndMigrate(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	if *migrateOnly {
		logger.Info("migrations completed; exiting as requested")
		return
	}

	logger.Info("starting server", zap.String("env", cfg.Env), zap.String("port", cfg.Port))
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: NewApp(dbConn, cfg, logger)}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
