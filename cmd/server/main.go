package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/rangeland-tools/grazeplan/internal/config"
	"github.com/rangeland-tools/grazeplan/internal/repository/mongodb"
	"github.com/rangeland-tools/grazeplan/internal/repository/sheets"
	"github.com/rangeland-tools/grazeplan/internal/scheduler"
	"github.com/rangeland-tools/grazeplan/internal/server/handlers"
	"github.com/rangeland-tools/grazeplan/internal/server/router"
	plannersvc "github.com/rangeland-tools/grazeplan/internal/service/planner"
	"github.com/rangeland-tools/grazeplan/pkg/clients/notify"
	"github.com/rangeland-tools/grazeplan/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var planLog sheets.Repository
	if cfg.SheetsEnabled() {
		planLog, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("plan-log spreadsheet export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, plan-log export disabled")
	}

	plannerService := plannersvc.NewService(mongoRepo, planLog, baseLogger.Named("svc.planner"))

	var notifier notify.Client
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("rotation notifications enabled")
	} else {
		baseLogger.Warn("notification webhook missing, rotation alerts disabled")
	}

	calcHandler := handlers.NewCalculatorHandler(baseLogger.Named("handlers.calc"))
	farmHandler := handlers.NewFarmHandler(mongoRepo, plannerService, baseLogger.Named("handlers.farms"))
	engine := router.New(calcHandler, farmHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Rotation, plannerService, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
