package httpapi

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/league-stats/internal/domain/matchstats"
	"github.com/valyala/bytebufferpool"
)

// writeSummaryCSV renders the per-team table with the dashboard's column names.
func writeSummaryCSV(ctx context.Context, w http.ResponseWriter, summary matchstats.Summary) error {
	ctx, span := startSpan(ctx, "httpapi.writeSummaryCSV")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	cw := csv.NewWriter(buf)
	if err := cw.Write([]string{summary.GroupColumn, summary.ValueColumn}); err != nil {
		writeInternalError(ctx, w)
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range summary.Teams {
		if err := cw.Write([]string{item.Team, strconv.FormatFloat(item.Average, 'f', -1, 64)}); err != nil {
			writeInternalError(ctx, w)
			return fmt.Errorf("write csv row team=%s: %w", item.Team, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		writeInternalError(ctx, w)
		return fmt.Errorf("flush csv: %w", err)
	}

	filename := strings.ToLower(fmt.Sprintf("average_%s_by_%s.csv", summary.Metric.Code, summary.GroupColumn))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write csv body: %w", err)
	}

	return nil
}
