package httpapi

import (
	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/matchstats"
)

type leagueDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Season      string `json:"season"`
	File        string `json:"file"`
}

type metricDTO struct {
	Code        string `json:"code"`
	Role        string `json:"role"`
	Label       string `json:"label"`
	Option      string `json:"option"`
	GroupColumn string `json:"groupColumn"`
	ValueColumn string `json:"valueColumn"`
}

type teamOptionsDTO struct {
	Home []string `json:"home"`
	Away []string `json:"away"`
}

type teamAverageDTO struct {
	Team    string  `json:"team"`
	Average float64 `json:"average"`
	Matches int     `json:"matches"`
}

type summaryDTO struct {
	Metric             metricDTO        `json:"metric"`
	Title              string           `json:"title"`
	GroupColumn        string           `json:"groupColumn"`
	ValueColumn        string           `json:"valueColumn"`
	Teams              []teamAverageDTO `json:"teams"`
	OverallAverage     float64          `json:"overallAverage"`
	OverallAverageText string           `json:"overallAverageText"`
	Samples            int              `json:"samples"`
}

type matchDTO struct {
	HomeTeam string             `json:"homeTeam"`
	AwayTeam string             `json:"awayTeam"`
	Stats    map[string]float64 `json:"stats"`
	Extra    map[string]string  `json:"extra,omitempty"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:          v.ID,
		Name:        v.Name,
		CountryCode: v.CountryCode,
		Season:      v.Season,
		File:        v.File,
	}
}

func metricToDTO(v matchstats.MetricInfo) metricDTO {
	return metricDTO{
		Code:        string(v.Code),
		Role:        string(v.Role),
		Label:       v.Label,
		Option:      v.OptionText(),
		GroupColumn: v.Role.TeamColumn(),
		ValueColumn: v.ValueColumn(),
	}
}

func summaryToDTO(v matchstats.Summary) summaryDTO {
	teams := make([]teamAverageDTO, 0, len(v.Teams))
	for _, item := range v.Teams {
		teams = append(teams, teamAverageDTO{
			Team:    item.Team,
			Average: item.Average,
			Matches: item.Matches,
		})
	}

	return summaryDTO{
		Metric:             metricToDTO(v.Metric),
		Title:              v.Title,
		GroupColumn:        v.GroupColumn,
		ValueColumn:        v.ValueColumn,
		Teams:              teams,
		OverallAverage:     v.OverallAverage,
		OverallAverageText: v.OverallAverageText(),
		Samples:            v.Samples,
	}
}

// matchToDTO omits metrics whose cell was empty in the source file.
func matchToDTO(v matchstats.MatchRecord) matchDTO {
	stats := make(map[string]float64, len(v.Stats))
	for metric, value := range v.Stats {
		stats[string(metric)] = value
	}

	return matchDTO{
		HomeTeam: v.HomeTeam,
		AwayTeam: v.AwayTeam,
		Stats:    stats,
		Extra:    v.Extra,
	}
}
