package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"modcon/internal/adapter/repo"
	"modcon/internal/domain"
	"modcon/internal/export"
	"modcon/internal/http/handlers"
	httpapi "modcon/internal/http/httpapi"
	"modcon/internal/infra"
	"modcon/internal/infra/credentials"
	"modcon/internal/infra/geoip"
	"modcon/internal/middleware"
	"modcon/internal/production"
	"modcon/internal/providers/brief"
	"modcon/internal/speclib"
	"modcon/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg, "modcon-api")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Production tickets live in PostgreSQL when configured, in memory otherwise.
	var productionRepo domain.ProductionRepository = repo.NewMemory()
	var keys brief.KeySource
	if cfg.HasDatabase() {
		dbpool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()
		runner := infra.NewSQLRunner(dbpool, logger)
		pg := repo.NewProductionPG(runner)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply schema")
		}
		productionRepo = pg
		keys = credentials.NewStore(runner)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, production tickets are kept in memory")
	}

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	defer resolver.Close()
	var lookup middleware.CountryLookup
	if resolver.Available() {
		lookup = resolver.CountryCode
	}

	var exportStore export.Store
	if cfg.ExportStoragePath != "" {
		fs, err := storage.NewFileStore(cfg.ExportStoragePath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare export storage")
		}
		exportStore = fs
	}

	specs := speclib.New(speclib.Options{
		CatalogPath: cfg.PlatformSpecsPath,
		CustomPath:  cfg.CustomSpecsPath,
		CacheTTL:    cfg.SpecCacheTTL,
		Logger:      logger,
	})

	app := &handlers.App{
		Specs:      specs,
		Production: production.NewService(specs, productionRepo, logger),
		Exports:    export.NewGenerator(exportStore, logger),
		Agent: brief.NewAgent(brief.Options{
			OpenAIAPIKey:  cfg.OpenAIAPIKey,
			OpenAIModel:   cfg.OpenAIModel,
			OpenAIBaseURL: cfg.OpenAIBaseURL,
			GeminiAPIKey:  cfg.GeminiAPIKey,
			GeminiModel:   cfg.GeminiModel,
			GeminiBaseURL: cfg.GeminiBaseURL,
			DemoStub:      cfg.DemoAgentStub,
			MaxRetries:    cfg.AgentMaxRetries,
			Keys:          keys,
			Logger:        logger,
		}),
		Logger: logger,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
		CountryLookup:   lookup,
	})

	server := infra.NewHTTPServer(cfg, router, logger)
	if err := server.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("http server failed")
	}
}
