package httpapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-stats/internal/domain/matchstats"
	"github.com/riskibarqy/league-stats/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad query", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "unknown league", err: fmt.Errorf("%w: x", matchstats.ErrUnknownLeague), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "unknown metric", err: matchstats.ErrUnknownMetric, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "source unavailable", err: fmt.Errorf("load: %w", matchstats.ErrSourceUnavailable), status: http.StatusServiceUnavailable, code: "UNAVAILABLE"},
		{name: "schema mismatch", err: &matchstats.SchemaMismatchError{Missing: []string{"HY"}}, status: http.StatusUnprocessableEntity, code: "FAILED_PRECONDITION"},
		{name: "invalid input", err: usecase.ErrInvalidInput, status: http.StatusBadRequest, code: "INVALID_ARGUMENT"},
		{name: "other", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(context.Background(), tt.err)
			if got.HTTPStatus != tt.status || got.Status != tt.code {
				t.Fatalf("mapError(%v)=%+v want status=%d code=%s", tt.err, got, tt.status, tt.code)
			}
		})
	}
}

func TestWriteError_SchemaMismatchListsMissingColumns(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("aggregate: %w", &matchstats.SchemaMismatchError{Missing: []string{"HY", "AY"}})
	writeError(context.Background(), rec, err)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", rec.Code)
	}

	var body googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Error == nil || len(body.Error.Errors) != 2 {
		t.Fatalf("expected two error items, got %+v", body.Error)
	}
	for i, want := range []string{"HY", "AY"} {
		item := body.Error.Errors[i]
		if item.Reason != "missingColumn" || item.Message != want {
			t.Fatalf("unexpected error item %d: %+v", i, item)
		}
	}
}

func TestWriteSuccess_UnencodablePayloadIsInternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]float64{"average": math.NaN()})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body googleResponseEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Error == nil || body.Error.Status != "INTERNAL" {
		t.Fatalf("expected INTERNAL error envelope, got %+v", body.Error)
	}
}
