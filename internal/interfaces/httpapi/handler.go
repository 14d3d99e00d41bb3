package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-stats/internal/platform/logging"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

type Handler struct {
	statsService *usecase.StatsService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(statsService *usecase.StatsService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService: statsService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues := h.statsService.ListLeagues(ctx)
	items := make([]leagueDTO, 0, len(leagues))
	for _, item := range leagues {
		items = append(items, leagueToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMetrics")
	defer span.End()

	metrics := h.statsService.ListMetrics(ctx)
	items := make([]metricDTO, 0, len(metrics))
	for _, item := range metrics {
		items = append(items, metricToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueKey := r.PathValue("league")
	teams, err := h.statsService.ListTeams(ctx, leagueKey)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamOptionsDTO{Home: teams.Home, Away: teams.Away})
}

func (h *Handler) GetMetricSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMetricSummary")
	defer span.End()

	req := metricSummaryRequest{
		League: r.PathValue("league"),
		Metric: r.PathValue("metric"),
		Format: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.statsService.Summarize(ctx, req.League, req.Metric)
	if err != nil {
		h.logger.WarnContext(ctx, "summarize metric failed", "league", req.League, "metric", req.Metric, "error", err)
		writeError(ctx, w, err)
		return
	}

	if req.Format == formatCSV {
		if err := writeSummaryCSV(ctx, w, summary); err != nil {
			h.logger.ErrorContext(ctx, "write summary csv failed", "league", req.League, "metric", req.Metric, "error", err)
		}
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) ListMetricSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMetricSummaries")
	defer span.End()

	leagueKey := r.PathValue("league")
	summaries, err := h.statsService.SummarizeAll(ctx, leagueKey)
	if err != nil {
		h.logger.WarnContext(ctx, "summarize all metrics failed", "league", leagueKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]summaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, summaryToDTO(summary))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) FindMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindMatches")
	defer span.End()

	query := r.URL.Query()
	req := matchLookupRequest{
		League:   r.PathValue("league"),
		HomeTeam: strings.TrimSpace(query.Get("home")),
		AwayTeam: strings.TrimSpace(query.Get("away")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.statsService.FindMatches(ctx, req.League, req.HomeTeam, req.AwayTeam)
	if err != nil {
		h.logger.WarnContext(ctx, "find matches failed",
			"league", req.League,
			"home_team", req.HomeTeam,
			"away_team", req.AwayTeam,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, item := range matches {
		items = append(items, matchToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

const formatCSV = "csv"

type metricSummaryRequest struct {
	League string `validate:"required"`
	Metric string `validate:"required"`
	Format string `validate:"omitempty,oneof=json csv"`
}

type matchLookupRequest struct {
	League   string `validate:"required"`
	HomeTeam string `validate:"required,max=100"`
	AwayTeam string `validate:"required,max=100"`
}
