package csvfile

import (
	"context"
	"os"
	"path/filepath"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/matchstats"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
)

// Repository loads league datasets from CSV files under a data directory.
type Repository struct {
	dataDir string
	catalog league.Catalog
	logger  *logging.Logger
}

func NewRepository(dataDir string, catalog league.Catalog, logger *logging.Logger) *Repository {
	if logger == nil {
		logger = logging.Default()
	}
	return &Repository{
		dataDir: dataDir,
		catalog: catalog,
		logger:  logger,
	}
}

func (r *Repository) Load(ctx context.Context, leagueName string) (matchstats.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return matchstats.Dataset{}, err
	}

	item, ok := r.catalog.Resolve(leagueName)
	if !ok {
		return matchstats.Dataset{}, crerr.Wrapf(matchstats.ErrUnknownLeague, "league %q not found in filename mapping", leagueName)
	}

	path := r.pathFor(item)
	f, err := os.Open(path)
	if err != nil {
		return matchstats.Dataset{}, crerr.WithSecondaryError(
			crerr.Wrapf(matchstats.ErrSourceUnavailable, "file %s", item.File),
			err,
		)
	}
	defer f.Close()

	ds, err := ParseDataset(f, item.Name)
	if err != nil {
		return matchstats.Dataset{}, crerr.WithSecondaryError(
			crerr.Wrapf(matchstats.ErrSourceUnavailable, "file %s is unreadable", item.File),
			err,
		)
	}

	r.logger.DebugContext(ctx, "dataset loaded",
		"league", item.Name,
		"path", path,
		"rows", ds.Len(),
		"columns", len(ds.Columns),
	)

	return ds, nil
}

func (r *Repository) pathFor(item league.League) string {
	if filepath.IsAbs(item.File) {
		return item.File
	}
	return filepath.Join(r.dataDir, item.File)
}
