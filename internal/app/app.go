package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/league-stats/internal/config"
	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/matchstats"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/league-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-stats/internal/platform/cache"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

type App struct {
	Server *http.Server
	Stats  *usecase.StatsService
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	catalog, err := buildCatalog(cfg)
	if err != nil {
		return nil, err
	}

	repo := csvfile.NewRepository(cfg.DataDir, catalog, logger)
	datasets := cache.NewStore[matchstats.Dataset](cfg.CacheTTL)
	statsSvc := usecase.NewStatsService(repo, catalog, datasets, logger)

	handler := httpapi.NewHandler(statsSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Stats: statsSvc,
	}, nil
}

func buildCatalog(cfg config.Config) (league.Catalog, error) {
	catalog := league.DefaultCatalog()

	overrides, err := csvfile.LoadFileOverrides(cfg.LeagueFilesPath)
	if err != nil {
		return league.Catalog{}, fmt.Errorf("load league file overrides: %w", err)
	}
	if len(overrides) == 0 {
		return catalog, nil
	}

	catalog, err = catalog.WithFiles(overrides)
	if err != nil {
		return league.Catalog{}, fmt.Errorf("apply league file overrides: %w", err)
	}
	return catalog, nil
}
