package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"medcoder/internal/api"
	"medcoder/internal/cache"
	"medcoder/internal/classifier"
	"medcoder/internal/config"
	"medcoder/internal/database"
	"medcoder/internal/inference"
	"medcoder/internal/knowledge"
	"medcoder/internal/logging"
	"medcoder/internal/predictor"
	"medcoder/internal/service"
	"medcoder/internal/telemetry"
)

// Components holds everything needed to run the HTTP server.
type Components struct {
	DB     *sqlx.DB // nil when no catalog DSN is configured
	Server *api.Server
}

// NewComponents builds the full component graph: knowledge base (built-in or
// catalog-backed), keyword classifier, local predictor, remote client,
// cache, prediction service, and the HTTP server.
func NewComponents(cfg *config.Config, logger logging.Logger, tel *telemetry.Provider) (*Components, error) {
	base, db, err := setupKnowledge(cfg, logger)
	if err != nil {
		return nil, err
	}

	keywordClassifier := classifier.New(classifier.DefaultRules())
	local := predictor.NewLocal(keywordClassifier, base)

	remote := inference.NewClient(inference.Config{
		URL:              cfg.Endpoint.URL,
		Name:             cfg.Endpoint.Name,
		Region:           cfg.Endpoint.Region,
		Timeout:          cfg.Endpoint.Timeout,
		InvokesPerSecond: cfg.Endpoint.InvokesPerSecond,
	})
	if remote.Configured() {
		logger.Info("Remote inference endpoint configured",
			"timeout", cfg.Endpoint.Timeout.String())
	} else {
		logger.Info("No remote inference endpoint configured, serving local predictions only")
	}

	predictionCache := cache.New(cfg.Cache.TTL)
	svc := service.New(remote, local, predictionCache, logger, tel)

	var metricsHandler http.Handler
	if tel != nil {
		metricsHandler = tel.Handler()
	}

	handler := api.NewHandler(svc, remote, logger, cfg.Service.Name, cfg.Service.Version)
	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, metricsHandler, logger)

	return &Components{DB: db, Server: server}, nil
}

// setupKnowledge builds the knowledge base. With a catalog DSN configured,
// the store is opened, seeded with the built-in tables on first run, and its
// rows become the candidate tables; otherwise the built-ins are used as is.
func setupKnowledge(cfg *config.Config, logger logging.Logger) (*knowledge.Base, *sqlx.DB, error) {
	if cfg.Database.DSN == "" {
		return knowledge.Default(cfg.Codes.TopKPerType), nil, nil
	}

	db, err := database.Connect(database.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect code catalog: %w", err)
	}

	ctx := context.Background()
	repo := database.NewCatalogRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		closeDB(db)
		return nil, nil, err
	}
	if err := repo.Seed(ctx, knowledge.DefaultEntries()); err != nil {
		closeDB(db)
		return nil, nil, err
	}

	entries, err := repo.ListEntries(ctx)
	if err != nil {
		closeDB(db)
		return nil, nil, err
	}

	base, err := knowledge.NewBase(entries, cfg.Codes.TopKPerType)
	if err != nil {
		closeDB(db)
		return nil, nil, fmt.Errorf("build knowledge base from catalog: %w", err)
	}

	total := 0
	for _, codes := range entries {
		total += len(codes)
	}
	logger.Info("Code catalog loaded",
		"driver", cfg.Database.Driver,
		"categories", len(entries),
		"codes", total)
	return base, db, nil
}

func closeDB(db *sqlx.DB) {
	if db != nil {
		_ = db.Close()
	}
}
