package csvfile

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-stats/internal/domain/matchstats"
)

const utf8BOM = "\ufeff"

// missingMarkers are the cell spellings read as a missing value (the pandas
// read_csv default NA set).
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

func isMissingCell(cell string) bool {
	if cell == "" {
		return true
	}
	_, ok := missingMarkers[cell]
	return ok
}

// ParseDataset reads a football-data style results CSV.
// Missing columns are tolerated; schema checks belong to the aggregator.
func ParseDataset(r io.Reader, leagueName string) (matchstats.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return matchstats.Dataset{League: leagueName}, nil
	}
	if err != nil {
		return matchstats.Dataset{}, crerr.Wrap(err, "read header")
	}

	columns := make([]string, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		columns[i] = strings.TrimSpace(name)
	}

	metricAt := make(map[int]matchstats.Metric)
	for i, name := range columns {
		if _, ok := matchstats.LookupMetric(matchstats.Metric(name)); ok {
			metricAt[i] = matchstats.Metric(name)
		}
	}

	matches := make([]matchstats.MatchRecord, 0, 380)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return matchstats.Dataset{}, crerr.Wrap(err, "read row")
		}
		if isBlank(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		item := matchstats.MatchRecord{
			Stats: make(map[matchstats.Metric]float64, len(metricAt)),
			Extra: make(map[string]string, len(columns)),
		}
		for i, name := range columns {
			cell := ""
			if i < len(record) {
				cell = strings.TrimSpace(record[i])
			}

			switch name {
			case matchstats.ColumnHomeTeam:
				item.HomeTeam = cell
				continue
			case matchstats.ColumnAwayTeam:
				item.AwayTeam = cell
				continue
			}

			metric, isMetric := metricAt[i]
			if !isMetric {
				item.Extra[name] = cell
				continue
			}
			if isMissingCell(cell) {
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				return matchstats.Dataset{}, crerr.Newf("line %d column %s: non-numeric value %q", line, name, cell)
			}
			item.Stats[metric] = value
		}

		matches = append(matches, item)
	}

	return matchstats.Dataset{
		League:  leagueName,
		Columns: columns,
		Matches: matches,
	}, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
