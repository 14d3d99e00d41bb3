package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

type WarmUpLeagueResult struct {
	League     string
	Rows       int
	Error      string
	DurationMs int64
}

type WarmUpResult struct {
	LoadedCount int
	FailedCount int
	Leagues     []WarmUpLeagueResult
}

// WarmUp loads every supported league into the dataset cache.
// A league that fails to load is reported in the result, not as an error.
func (s *StatsService) WarmUp(ctx context.Context, workers int) (WarmUpResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.WarmUp")
	defer span.End()

	leagues := s.catalog.List()
	if workers <= 0 {
		workers = 1
	}
	if workers > len(leagues) {
		workers = len(leagues)
	}
	if len(leagues) == 0 {
		return WarmUpResult{}, nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return WarmUpResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	order := make(map[string]int, len(leagues))
	results := make(chan WarmUpLeagueResult, len(leagues))
	var loaded atomic.Int32
	var failed atomic.Int32

	var wg sync.WaitGroup
	for i, item := range leagues {
		order[item.Name] = i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			start := time.Now()
			row := WarmUpLeagueResult{League: item.Name}
			ds, err := s.LoadDataset(ctx, item.Name)
			if err != nil {
				row.Error = err.Error()
				failed.Add(1)
			} else {
				row.Rows = ds.Len()
				loaded.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			wg.Done()
			wg.Wait()
			return WarmUpResult{}, fmt.Errorf("submit warm-up task: %w", err)
		}
	}

	wg.Wait()
	close(results)

	out := WarmUpResult{Leagues: make([]WarmUpLeagueResult, 0, len(leagues))}
	for row := range results {
		out.Leagues = append(out.Leagues, row)
	}
	sort.SliceStable(out.Leagues, func(i, j int) bool {
		return order[out.Leagues[i].League] < order[out.Leagues[j].League]
	})
	out.LoadedCount = int(loaded.Load())
	out.FailedCount = int(failed.Load())

	s.logger.InfoContext(ctx, "dataset warm-up finished",
		"loaded", out.LoadedCount,
		"failed", out.FailedCount,
	)

	return out, nil
}
