package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mamadbah2/abanico/internal/config"
	"github.com/mamadbah2/abanico/internal/repository/mongodb"
	"github.com/mamadbah2/abanico/internal/repository/sheets"
	"github.com/mamadbah2/abanico/internal/scheduler"
	"github.com/mamadbah2/abanico/internal/server/handlers"
	"github.com/mamadbah2/abanico/internal/server/router"
	"github.com/mamadbah2/abanico/internal/service/analyzer"
	"github.com/mamadbah2/abanico/internal/service/growth"
	"github.com/mamadbah2/abanico/internal/service/investment"
	"github.com/mamadbah2/abanico/internal/service/projection"
	"github.com/mamadbah2/abanico/internal/service/reference"
	"github.com/mamadbah2/abanico/pkg/clients/referenceapi"
	"github.com/mamadbah2/abanico/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	provider, err := newReferenceProvider(context.Background(), cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init reference provider", zap.Error(err))
	}

	refCache := gocache.New(cfg.Reference.CacheTTL, 2*cfg.Reference.CacheTTL)
	refSvc := reference.NewService(provider, refCache, cfg.Reference.CacheTTL, baseLogger.Named("svc.reference"))

	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 30*time.Second)
	if err := refSvc.Warm(warmCtx); err != nil {
		baseLogger.Warn("reference data partially unavailable, serving defaults", zap.Error(err))
	}
	cancelWarm()

	var store handlers.ProjectionStore
	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		if err := mongoRepo.EnsureIndexes(context.Background()); err != nil {
			baseLogger.Warn("failed to ensure projection indexes", zap.Error(err))
		}
		store = mongoRepo
	} else {
		baseLogger.Warn("MONGODB_URI missing, projections will not be stored")
	}

	investmentEngine := investment.NewDefaultEngine(baseLogger.Named("svc.investment"))
	projectionEngine := projection.NewDefaultEngine(baseLogger.Named("svc.projection"))
	growthSvc := growth.NewService(baseLogger.Named("svc.growth"))

	calculatorHandler := handlers.NewCalculatorHandler(refSvc, investmentEngine, growthSvc, analyzer.DefaultScenarios(), baseLogger.Named("handlers.calculators"))
	projectionHandler := handlers.NewProjectionHandler(projectionEngine, store, cfg.Simulation, baseLogger.Named("handlers.projections"))
	engine := router.New(calculatorHandler, projectionHandler, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(cfg.Scheduler, refSvc, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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

func newReferenceProvider(ctx context.Context, cfg *config.Config, log *zap.Logger) (reference.Provider, error) {
	if cfg.Reference.Source == config.SourceSheets {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, log.Named("repo.sheets"))
		if err != nil {
			return nil, err
		}
		log.Info("reference data from google sheets", zap.String("spreadsheet_id", cfg.Sheets.SpreadsheetID))
		return sheets.NewReferenceProvider(sheetsRepo, log.Named("repo.sheets.reference")), nil
	}

	log.Info("reference data from api", zap.String("base_url", cfg.Reference.APIBaseURL))
	return referenceapi.NewClient(cfg.Reference), nil
}
