package matchstats

import (
	"errors"
	"strings"
)

var (
	ErrUnknownLeague     = errors.New("league not found")
	ErrSourceUnavailable = errors.New("file not found")
	ErrSchemaMismatch    = errors.New("required columns missing")
	ErrUnknownMetric     = errors.New("unknown metric")
)

// SchemaMismatchError lists every required column absent from a dataset.
type SchemaMismatchError struct {
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return "the following columns are missing from the dataset: " + strings.Join(e.Missing, ", ")
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}
