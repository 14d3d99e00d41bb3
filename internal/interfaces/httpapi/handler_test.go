package httpapi

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-stats/internal/domain/league"
	"github.com/riskibarqy/league-stats/internal/domain/matchstats"
	"github.com/riskibarqy/league-stats/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/league-stats/internal/platform/cache"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundesligaCSV = `HomeTeam,AwayTeam,FTHG,FTAG,HC,AC,HF,AF,HY,AY,HR,AR
Ein Frankfurt,Bayern Munich,1,6,2,3,12,10,2,0,0,0
Augsburg,Freiburg,0,4,3,5,17,14,3,2,0,0
Dortmund,Leverkusen,1,0,6,4,13,12,1,3,0,1
Bayern Munich,Dortmund,2,2,7,1,8,13,2,4,0,0
Dortmund,Bayern Munich,,2,3,6,11,9,3,1,0,0
`

// No HY column.
const serieACSV = `HomeTeam,AwayTeam,FTHG,FTAG,HC,AC,HF,AF,AY,HR,AR
Inter,Milan,2,1,5,4,10,12,2,0,0
`

type envelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       json.RawMessage  `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ger1_2022-23.csv"), []byte(bundesligaCSV), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "italy1_2022-23.csv"), []byte(serieACSV), 0o600))

	logger := logging.NewNop()
	catalog := league.DefaultCatalog()
	repo := csvfile.NewRepository(dir, catalog, logger)
	service := usecase.NewStatsService(repo, catalog, cache.NewStore[matchstats.Dataset](0), logger)

	return NewRouter(NewHandler(service, logger), logger, RouterOptions{ServiceName: "league-stats-test"})
}

func doGet(t *testing.T, router http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "2.0", body.APIVersion)
	}
	return rec, body
}

func leaguePath(name string) string {
	return "/v1/leagues/" + url.PathEscape(name)
}

func TestHandler_Healthz(t *testing.T) {
	rec, _ := doGet(t, newTestRouter(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ListLeagues(t *testing.T) {
	rec, body := doGet(t, newTestRouter(t), "/v1/leagues")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []leagueDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &items))
	require.Len(t, items, 5)
	assert.Equal(t, league.NameBundesliga, items[0].Name)
	assert.Equal(t, "ger1_2022-23.csv", items[0].File)
}

func TestHandler_ListMetrics(t *testing.T) {
	rec, body := doGet(t, newTestRouter(t), "/v1/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []metricDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &items))
	require.Len(t, items, 10)
	assert.Equal(t, "FTHG - Full Time Home Goals", items[0].Option)
	assert.Equal(t, "HomeTeam", items[0].GroupColumn)
}

func TestHandler_GetMetricSummary(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{
		leaguePath(league.NameBundesliga) + "/metrics/FTHG",
		"/v1/leagues/ger1/metrics/" + url.PathEscape("FTHG - Full Time Home Goals"),
	} {
		rec, body := doGet(t, router, target)
		require.Equal(t, http.StatusOK, rec.Code, target)

		var summary summaryDTO
		require.NoError(t, sonic.Unmarshal(body.Data, &summary))
		assert.Equal(t, "HomeTeam", summary.GroupColumn)
		assert.Equal(t, "Average_FTHG", summary.ValueColumn)
		assert.Equal(t, []teamAverageDTO{
			{Team: "Augsburg", Average: 0, Matches: 1},
			{Team: "Bayern Munich", Average: 2, Matches: 1},
			{Team: "Dortmund", Average: 1, Matches: 1},
			{Team: "Ein Frankfurt", Average: 1, Matches: 1},
		}, summary.Teams)
		assert.Equal(t, "1.00", summary.OverallAverageText)
		assert.Equal(t, 4, summary.Samples)
	}
}

func TestHandler_GetMetricSummary_CSV(t *testing.T) {
	rec, _ := doGet(t, newTestRouter(t), "/v1/leagues/ger1/metrics/AC?format=csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))

	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"AwayTeam", "Average_AC"},
		{"Bayern Munich", "4.5"},
		{"Dortmund", "1"},
		{"Freiburg", "5"},
		{"Leverkusen", "4"},
	}, rows)
}

func TestHandler_GetMetricSummary_Errors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{name: "unknown league", target: "/v1/leagues/ned1/metrics/FTHG", status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "unknown metric", target: "/v1/leagues/ger1/metrics/XG", status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "missing file", target: "/v1/leagues/eng1/metrics/FTHG", status: http.StatusServiceUnavailable, code: "UNAVAILABLE"},
		{name: "missing column", target: "/v1/leagues/italy1/metrics/HY", status: http.StatusUnprocessableEntity, code: "FAILED_PRECONDITION"},
		{name: "bad format", target: "/v1/leagues/ger1/metrics/FTHG?format=xml", status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doGet(t, router, tt.target)
			require.Equal(t, tt.status, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Status)
		})
	}

	_, body := doGet(t, router, "/v1/leagues/italy1/metrics/HY")
	require.Len(t, body.Error.Errors, 1)
	assert.Equal(t, "HY", body.Error.Errors[0].Message)
}

func TestHandler_ListMetricSummaries(t *testing.T) {
	router := newTestRouter(t)

	rec, body := doGet(t, router, "/v1/leagues/ger1/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []summaryDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &items))
	require.Len(t, items, 10)
	assert.Equal(t, "FTHG", items[0].Metric.Code)

	rec, _ = doGet(t, router, "/v1/leagues/italy1/metrics")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandler_ListTeams(t *testing.T) {
	rec, body := doGet(t, newTestRouter(t), "/v1/leagues/ger1/teams")
	require.Equal(t, http.StatusOK, rec.Code)

	var teams teamOptionsDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &teams))
	assert.Equal(t, []string{"Augsburg", "Bayern Munich", "Dortmund", "Ein Frankfurt"}, teams.Home)
	assert.Equal(t, []string{"Bayern Munich", "Dortmund", "Freiburg", "Leverkusen"}, teams.Away)
}

func TestHandler_FindMatches(t *testing.T) {
	router := newTestRouter(t)

	query := url.Values{"home": {"Dortmund"}, "away": {"Bayern Munich"}}
	rec, body := doGet(t, router, "/v1/leagues/ger1/matches?"+query.Encode())
	require.Equal(t, http.StatusOK, rec.Code)

	var items []matchDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, 2.0, items[0].Stats["FTAG"])
	_, hasHomeGoals := items[0].Stats["FTHG"]
	assert.False(t, hasHomeGoals)

	query = url.Values{"home": {"Freiburg"}, "away": {"Augsburg"}}
	rec, body = doGet(t, router, "/v1/leagues/ger1/matches?"+query.Encode())
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, sonic.Unmarshal(body.Data, &items))
	assert.Empty(t, items)

	rec, body = doGet(t, router, "/v1/leagues/ger1/matches?home=Dortmund")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status)
}
