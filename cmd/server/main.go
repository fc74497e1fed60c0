package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/sainikartavya76-gif/aidconnect-now/api/handler"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/config"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/infrastructure/location"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/infrastructure/monitor"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/infrastructure/store"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/middleware"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/router"
	"github.com/sainikartavya76-gif/aidconnect-now/internal/services/lifecycle"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/httpcontext"
	"github.com/sainikartavya76-gif/aidconnect-now/pkg/logger"
	boltRepo "github.com/sainikartavya76-gif/aidconnect-now/repository/bolt"
	dispatchUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/dispatch"
	matchingUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/matching"
	registryUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/registry"
	statsUC "github.com/sainikartavya76-gif/aidconnect-now/usecase/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	recordStore, err := store.Open(cfg.Store.Path, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open record store", zap.Error(err))
	}
	manager.Register("store", func(ctx context.Context) error {
		return recordStore.Close()
	})

	if cfg.Store.Seed {
		if err := recordStore.Seed(store.DefaultFixture(time.Now())); err != nil {
			zapLogger.Fatal("failed to seed record store", zap.Error(err))
		}
	}

	mon := monitor.New(recordStore, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	volunteerRepo := boltRepo.NewVolunteerRepository(recordStore)
	emergencyRepo := boltRepo.NewEmergencyRepository(recordStore)
	taskRepo := boltRepo.NewTaskRepository(recordStore)

	// no position provider is attached in this deployment; registration
	// without coordinates resolves to the fallback after the bounded wait
	locator := location.NewResolver(nil, cfg.Location.Timeout, zapLogger)

	registryUseCase := registryUC.New(volunteerRepo, emergencyRepo, locator, zapLogger)
	matchingEngine := matchingUC.NewEngine(volunteerRepo, emergencyRepo, zapLogger)
	dispatchUseCase := dispatchUC.New(volunteerRepo, emergencyRepo, taskRepo, zapLogger)
	statsUseCase := statsUC.New(volunteerRepo, emergencyRepo, taskRepo)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Volunteer: apiHandler.NewVolunteerHandler(registryUseCase, ctxAdapter, zapLogger),
		Emergency: apiHandler.NewEmergencyHandler(registryUseCase, dispatchUseCase, ctxAdapter, zapLogger),
		Matching:  apiHandler.NewMatchingHandler(matchingEngine, dispatchUseCase, volunteerRepo, ctxAdapter, zapLogger),
		Task:      apiHandler.NewTaskHandler(dispatchUseCase, ctxAdapter, zapLogger),
		Stats:     apiHandler.NewStatsHandler(statsUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)
	accessLog := middleware.AccessLog(zapLogger)

	server := &fasthttp.Server{
		Handler:      accessLog(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
