package matchstats

import (
	"fmt"
	"strings"
)

// Role tells which side of a fixture a metric is attributed to.
type Role string

const (
	RoleHome Role = "home"
	RoleAway Role = "away"
)

// TeamColumn returns the team-identity column rows are grouped by for this role.
func (r Role) TeamColumn() string {
	if r == RoleAway {
		return ColumnAwayTeam
	}
	return ColumnHomeTeam
}

// Metric is a per-match statistic code as it appears in the source header.
type Metric string

const (
	MetricHomeGoals       Metric = "FTHG"
	MetricHomeCorners     Metric = "HC"
	MetricHomeFouls       Metric = "HF"
	MetricHomeYellowCards Metric = "HY"
	MetricHomeRedCards    Metric = "HR"
	MetricAwayGoals       Metric = "FTAG"
	MetricAwayCorners     Metric = "AC"
	MetricAwayFouls       Metric = "AF"
	MetricAwayYellowCards Metric = "AY"
	MetricAwayRedCards    Metric = "AR"
)

// MetricInfo tags a metric code with its role and a human-readable label.
type MetricInfo struct {
	Code  Metric
	Role  Role
	Label string
}

// OptionText is the selector text shown to users, e.g. "FTHG - Full Time Home Goals".
func (m MetricInfo) OptionText() string {
	return string(m.Code) + " - " + m.Label
}

// ValueColumn names the averaged column in the per-team table.
func (m MetricInfo) ValueColumn() string {
	return "Average_" + string(m.Code)
}

// Home metrics come first, then away metrics.
var metricCatalog = []MetricInfo{
	{Code: MetricHomeGoals, Role: RoleHome, Label: "Full Time Home Goals"},
	{Code: MetricHomeCorners, Role: RoleHome, Label: "Home Corners"},
	{Code: MetricHomeFouls, Role: RoleHome, Label: "Home Fouls"},
	{Code: MetricHomeYellowCards, Role: RoleHome, Label: "Home Yellow Cards"},
	{Code: MetricHomeRedCards, Role: RoleHome, Label: "Home Red Cards"},
	{Code: MetricAwayGoals, Role: RoleAway, Label: "Full Time Away Goals"},
	{Code: MetricAwayCorners, Role: RoleAway, Label: "Away Corners"},
	{Code: MetricAwayFouls, Role: RoleAway, Label: "Away Fouls"},
	{Code: MetricAwayYellowCards, Role: RoleAway, Label: "Away Yellow Cards"},
	{Code: MetricAwayRedCards, Role: RoleAway, Label: "Away Red Cards"},
}

var metricIndex map[Metric]int

func init() {
	index, err := indexMetrics(metricCatalog)
	if err != nil {
		panic(err)
	}
	metricIndex = index
}

func indexMetrics(items []MetricInfo) (map[Metric]int, error) {
	out := make(map[Metric]int, len(items))
	for i, item := range items {
		if strings.TrimSpace(string(item.Code)) == "" {
			return nil, fmt.Errorf("metric at position %d has empty code", i)
		}
		if item.Role != RoleHome && item.Role != RoleAway {
			return nil, fmt.Errorf("metric %s has invalid role %q", item.Code, item.Role)
		}
		if strings.TrimSpace(item.Label) == "" {
			return nil, fmt.Errorf("metric %s has empty label", item.Code)
		}
		if _, exists := out[item.Code]; exists {
			return nil, fmt.Errorf("metric %s declared twice", item.Code)
		}
		out[item.Code] = i
	}
	return out, nil
}

// Metrics returns every supported metric in catalog order.
func Metrics() []MetricInfo {
	out := make([]MetricInfo, len(metricCatalog))
	copy(out, metricCatalog)
	return out
}

// MetricsByRole returns the metrics attributed to role, in catalog order.
func MetricsByRole(role Role) []MetricInfo {
	out := make([]MetricInfo, 0, len(metricCatalog)/2)
	for _, item := range metricCatalog {
		if item.Role == role {
			out = append(out, item)
		}
	}
	return out
}

func LookupMetric(code Metric) (MetricInfo, bool) {
	i, ok := metricIndex[code]
	if !ok {
		return MetricInfo{}, false
	}
	return metricCatalog[i], true
}

// ParseMetric accepts a metric code (case-insensitive) or its option text.
func ParseMetric(raw string) (MetricInfo, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return MetricInfo{}, fmt.Errorf("%w: metric is required", ErrUnknownMetric)
	}

	if info, ok := LookupMetric(Metric(strings.ToUpper(value))); ok {
		return info, nil
	}
	for _, item := range metricCatalog {
		if strings.EqualFold(item.OptionText(), value) {
			return item, nil
		}
	}

	return MetricInfo{}, fmt.Errorf("%w: %s", ErrUnknownMetric, value)
}
