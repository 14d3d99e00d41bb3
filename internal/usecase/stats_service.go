package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/matchstats"
	"github.com/riskibarqy/league-stats/internal/platform/cache"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

// TeamOptions are the distinct team names usable for a single-match lookup.
type TeamOptions struct {
	Home []string
	Away []string
}

type StatsService struct {
	repo     matchstats.Repository
	catalog  league.Catalog
	datasets *cache.Store[matchstats.Dataset]
	logger   *logging.Logger
}

func NewStatsService(
	repo matchstats.Repository,
	catalog league.Catalog,
	datasets *cache.Store[matchstats.Dataset],
	logger *logging.Logger,
) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if datasets == nil {
		datasets = cache.NewStore[matchstats.Dataset](0)
	}

	return &StatsService{
		repo:     repo,
		catalog:  catalog,
		datasets: datasets,
		logger:   logger,
	}
}

func (s *StatsService) ListLeagues(ctx context.Context) []league.League {
	_, span := startUsecaseSpan(ctx, "usecase.StatsService.ListLeagues")
	defer span.End()

	return s.catalog.List()
}

func (s *StatsService) ListMetrics(ctx context.Context) []matchstats.MetricInfo {
	_, span := startUsecaseSpan(ctx, "usecase.StatsService.ListMetrics")
	defer span.End()

	return matchstats.Metrics()
}

// LoadDataset returns the memoized dataset of a league.
// On failure it returns the empty dataset alongside the error.
func (s *StatsService) LoadDataset(ctx context.Context, leagueKey string) (matchstats.Dataset, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.LoadDataset", attribute.String("league", leagueKey))
	defer span.End()

	item, ok := s.catalog.Resolve(leagueKey)
	if !ok {
		err := fmt.Errorf("%w: league %q not found in filename mapping", matchstats.ErrUnknownLeague, leagueKey)
		s.logger.WarnContext(ctx, "load dataset failed", "league", leagueKey, "error", err)
		return matchstats.Dataset{}, err
	}

	ds, err := s.datasets.GetOrLoad(ctx, datasetCacheKey(item), func(ctx context.Context) (matchstats.Dataset, error) {
		return s.repo.Load(ctx, item.Name)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "load dataset failed", "league", item.Name, "file", item.File, "error", err)
		return matchstats.Dataset{}, fmt.Errorf("load dataset league=%s: %w", item.Name, err)
	}

	return ds, nil
}

func (s *StatsService) Summarize(ctx context.Context, leagueKey, metric string) (matchstats.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Summarize",
		attribute.String("league", leagueKey),
		attribute.String("metric", metric),
	)
	defer span.End()

	info, err := matchstats.ParseMetric(metric)
	if err != nil {
		return matchstats.Summary{}, err
	}

	ds, err := s.LoadDataset(ctx, leagueKey)
	if err != nil {
		return matchstats.Summary{}, err
	}

	summary, err := matchstats.Aggregate(ds, info.Code)
	if err != nil {
		s.logSchemaMismatch(ctx, ds, err)
		return matchstats.Summary{}, fmt.Errorf("aggregate %s league=%s: %w", info.Code, ds.League, err)
	}

	return summary, nil
}

// SummarizeAll aggregates every metric of a league, in catalog order.
func (s *StatsService) SummarizeAll(ctx context.Context, leagueKey string) ([]matchstats.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.SummarizeAll", attribute.String("league", leagueKey))
	defer span.End()

	ds, err := s.LoadDataset(ctx, leagueKey)
	if err != nil {
		return nil, err
	}
	if err := ds.CheckSchema(); err != nil {
		s.logSchemaMismatch(ctx, ds, err)
		return nil, fmt.Errorf("aggregate league=%s: %w", ds.League, err)
	}

	summaries, err := iter.MapErr(matchstats.Metrics(), func(info *matchstats.MetricInfo) (matchstats.Summary, error) {
		return matchstats.Aggregate(ds, info.Code)
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate league=%s: %w", ds.League, err)
	}

	return summaries, nil
}

func (s *StatsService) ListTeams(ctx context.Context, leagueKey string) (TeamOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListTeams", attribute.String("league", leagueKey))
	defer span.End()

	ds, err := s.LoadDataset(ctx, leagueKey)
	if err != nil {
		return TeamOptions{}, err
	}

	home, away := matchstats.Teams(ds)
	return TeamOptions{Home: home, Away: away}, nil
}

func (s *StatsService) FindMatches(ctx context.Context, leagueKey, homeTeam, awayTeam string) ([]matchstats.MatchRecord, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.FindMatches",
		attribute.String("league", leagueKey),
		attribute.String("home_team", homeTeam),
		attribute.String("away_team", awayTeam),
	)
	defer span.End()

	homeTeam = strings.TrimSpace(homeTeam)
	awayTeam = strings.TrimSpace(awayTeam)
	if homeTeam == "" {
		return nil, fmt.Errorf("%w: home team is required", ErrInvalidInput)
	}
	if awayTeam == "" {
		return nil, fmt.Errorf("%w: away team is required", ErrInvalidInput)
	}

	ds, err := s.LoadDataset(ctx, leagueKey)
	if err != nil {
		return nil, err
	}

	return matchstats.FindMatches(ds, homeTeam, awayTeam), nil
}

func (s *StatsService) logSchemaMismatch(ctx context.Context, ds matchstats.Dataset, err error) {
	var mismatch *matchstats.SchemaMismatchError
	if !errors.As(err, &mismatch) {
		return
	}
	s.logger.WarnContext(ctx, "dataset schema mismatch",
		"league", ds.League,
		"missing_columns", mismatch.Missing,
	)
}

func datasetCacheKey(item league.League) string {
	return "dataset:" + item.ID
}
