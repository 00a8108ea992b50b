package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pkrms_db/internal/config"
	"pkrms_db/internal/hub"
	"pkrms_db/internal/ingest"
	"pkrms_db/internal/logger"
	"pkrms_db/internal/metrics"
	"pkrms_db/internal/middleware"
	"pkrms_db/internal/routes"
	"pkrms_db/internal/schema"
	"pkrms_db/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration.")
	}

	// Initialize structured logging to file
	logFile, err := logger.Setup(logger.Options{Level: cfg.Log.Level, Path: cfg.Log.Path, Stdout: cfg.Log.Stdout})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to set up logging.")
	}
	defer logFile.Close()

	db, err := config.InitDB(cfg.Database, logger.GormLogger(logrus.StandardLogger(), 200*time.Millisecond))
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database.")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to obtain database handle.")
	}
	defer sqlDB.Close()

	uploadHub := hub.NewUploadHub(logrus.StandardLogger())
	defer uploadHub.Close()

	reg := schema.Default()
	st := store.NewGorm(db, store.WithLinkLocks(cfg.Database.LinkLocks))
	opts := []ingest.Option{ingest.WithPublisher(uploadHub)}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
		opts = append(opts, ingest.WithRecorder(collector))
	}

	gin.SetMode(gin.ReleaseMode)
	r := routes.SetupRouter(routes.Deps{
		Service:      ingest.NewService(reg, st, opts...),
		Store:        st,
		Hub:          uploadHub,
		Metrics:      collector,
		Ping:         sqlDB.PingContext,
		MaxBodyBytes: cfg.MaxBodyBytes,
		CORSOrigins:  cfg.CORSOrigins,
		AccessLog:    logrus.StandardLogger().Out,
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           middleware.EnableCORS(cfg.CORSOrigins, r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"port": cfg.Port, "db_driver": cfg.Database.Driver}).Info("Server running.")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server stopped unexpectedly.")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed.")
	}
	logrus.Info("Server stopped.")
}
