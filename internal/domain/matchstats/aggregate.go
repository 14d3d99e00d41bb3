package matchstats

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// TeamAverage is the rounded mean of one metric for one team in one role.
type TeamAverage struct {
	Team    string
	Average float64
	Matches int
}

// Summary is the per-team table and the overall mean for a metric.
type Summary struct {
	Metric      MetricInfo
	GroupColumn string
	ValueColumn string
	Title       string
	Teams       []TeamAverage
	// OverallAverage is taken over every row carrying a value, regardless of role.
	OverallAverage float64
	Samples        int
}

func (s Summary) OverallAverageText() string {
	return fmt.Sprintf("%.2f", s.OverallAverage)
}

type accumulator struct {
	sum   float64
	count int
}

// Aggregate groups rows by the team owning the metric's role and averages the metric.
func Aggregate(ds Dataset, metric Metric) (Summary, error) {
	info, ok := LookupMetric(metric)
	if !ok {
		return Summary{}, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}
	if err := ds.CheckSchema(); err != nil {
		return Summary{}, err
	}

	groupColumn := info.Role.TeamColumn()
	groups := make(map[string]*accumulator)
	var overall accumulator

	for _, match := range ds.Matches {
		value, ok := match.Value(info.Code)
		if !ok {
			continue
		}
		overall.sum += value
		overall.count++

		team := match.Team(info.Role)
		if team == "" {
			continue
		}
		acc, exists := groups[team]
		if !exists {
			acc = &accumulator{}
			groups[team] = acc
		}
		acc.sum += value
		acc.count++
	}

	teams := make([]TeamAverage, 0, len(groups))
	for team, acc := range groups {
		teams = append(teams, TeamAverage{
			Team:    team,
			Average: roundTo2(acc.sum / float64(acc.count)),
			Matches: acc.count,
		})
	}
	slices.SortFunc(teams, func(a, b TeamAverage) int {
		return strings.Compare(a.Team, b.Team)
	})

	summary := Summary{
		Metric:      info,
		GroupColumn: groupColumn,
		ValueColumn: info.ValueColumn(),
		Title:       fmt.Sprintf("Average %s by %s", info.Code, groupColumn),
		Teams:       teams,
		Samples:     overall.count,
	}
	if overall.count > 0 {
		summary.OverallAverage = overall.sum / float64(overall.count)
	}

	return summary, nil
}

// roundTo2 rounds half-to-even at two decimals.
func roundTo2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
