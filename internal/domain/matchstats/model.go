package matchstats

import "context"

const (
	ColumnHomeTeam = "HomeTeam"
	ColumnAwayTeam = "AwayTeam"
)

// MatchRecord is one played fixture.
type MatchRecord struct {
	HomeTeam string
	AwayTeam string
	// Stats holds recognised metric values; a metric is absent when its cell was empty.
	Stats map[Metric]float64
	// Extra keeps every other source column verbatim, keyed by header name.
	Extra map[string]string
}

func (m MatchRecord) Value(metric Metric) (float64, bool) {
	v, ok := m.Stats[metric]
	return v, ok
}

// Team returns the team occupying role in this fixture.
func (m MatchRecord) Team(role Role) string {
	if role == RoleAway {
		return m.AwayTeam
	}
	return m.HomeTeam
}

// Dataset is one league-season of fixtures. The zero value is the empty dataset.
type Dataset struct {
	League  string
	Columns []string
	Matches []MatchRecord
}

func (d Dataset) Len() int {
	return len(d.Matches)
}

func (d Dataset) IsEmpty() bool {
	return len(d.Columns) == 0 && len(d.Matches) == 0
}

func (d Dataset) HasColumn(name string) bool {
	for _, column := range d.Columns {
		if column == name {
			return true
		}
	}
	return false
}

// RequiredColumns lists the team-identity columns followed by every metric column.
func RequiredColumns() []string {
	out := make([]string, 0, len(metricCatalog)+2)
	out = append(out, ColumnHomeTeam, ColumnAwayTeam)
	for _, item := range metricCatalog {
		out = append(out, string(item.Code))
	}
	return out
}

// MissingColumns returns the required columns absent from d, in RequiredColumns order.
func (d Dataset) MissingColumns() []string {
	present := make(map[string]struct{}, len(d.Columns))
	for _, column := range d.Columns {
		present[column] = struct{}{}
	}

	var missing []string
	for _, column := range RequiredColumns() {
		if _, ok := present[column]; !ok {
			missing = append(missing, column)
		}
	}
	return missing
}

// CheckSchema refuses datasets lacking any required column.
func (d Dataset) CheckSchema() error {
	if missing := d.MissingColumns(); len(missing) > 0 {
		return &SchemaMismatchError{Missing: missing}
	}
	return nil
}

// Repository loads the dataset backing a league.
type Repository interface {
	Load(ctx context.Context, leagueName string) (Dataset, error)
}
