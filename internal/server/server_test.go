package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanav/askledger/internal/common"
	"github.com/sahanav/askledger/internal/engine"
	"github.com/sahanav/askledger/internal/model"
)

// stubService returns canned values so handler behavior can be tested
// without a store.
type stubService struct {
	report     string
	searchRes  engine.SearchResult
	summaryRes model.PeriodSummary
	err        error
	lastUserID string
	lastText   string
}

func (s *stubService) Query(_ context.Context, text, userID string) (string, error) {
	s.lastText, s.lastUserID = text, userID
	if s.err != nil {
		return "", s.err
	}
	return s.report, nil
}

func (s *stubService) SearchExpenses(_ context.Context, userID string, _ engine.SearchFilter) (engine.SearchResult, error) {
	s.lastUserID = userID
	if s.err != nil {
		return engine.SearchResult{}, s.err
	}
	return s.searchRes, nil
}

func (s *stubService) CategorySummary(_ context.Context, userID, _, _ string) (model.PeriodSummary, error) {
	s.lastUserID = userID
	if s.err != nil {
		return model.PeriodSummary{}, s.err
	}
	return s.summaryRes, nil
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHandleQuery(t *testing.T) {
	stub := &stubService{report: "## 📊 Expense Summary"}
	srv := New(":0", stub)

	rec := postJSON(t, srv.Handler(), "/v1/tools/query", queryRequest{
		Text:   "food expenses",
		UserID: "u1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp queryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "## 📊 Expense Summary", resp.Report)
	assert.Equal(t, "u1", stub.lastUserID)
	assert.Equal(t, "food expenses", stub.lastText)
}

func TestHandleQuery_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "authorization",
			err:        &common.AuthorizationError{Reason: "user id is required"},
			wantStatus: http.StatusUnauthorized,
			wantKind:   "authorization",
		},
		{
			name:       "validation",
			err:        common.NewValidationError("month", "13"),
			wantStatus: http.StatusBadRequest,
			wantKind:   "validation",
		},
		{
			name:       "ambiguous",
			err:        &common.AmbiguousQueryError{Query: "hello"},
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   "ambiguous_query",
		},
		{
			name:       "store",
			err:        &common.StoreError{Op: "list expenses", Err: context.DeadlineExceeded},
			wantStatus: http.StatusInternalServerError,
			wantKind:   "store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(":0", &stubService{err: tt.err})

			rec := postJSON(t, srv.Handler(), "/v1/tools/query", queryRequest{Text: "x", UserID: "u1"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.Equal(t, tt.err.Error(), body.Message)
		})
	}
}

func TestHandleSearch(t *testing.T) {
	stub := &stubService{searchRes: engine.SearchResult{TotalCount: 2, TotalAmount: 45.5}}
	srv := New(":0", stub)

	rec := postJSON(t, srv.Handler(), "/v1/tools/search_expenses", searchRequest{
		UserID:    "u1",
		Category:  "food",
		StartDate: "2024-02-01",
		EndDate:   "2024-02-29",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp engine.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalCount)
	assert.InDelta(t, 45.5, resp.TotalAmount, 1e-9)
}

func TestHandleSearch_BadDate(t *testing.T) {
	srv := New(":0", &stubService{})

	rec := postJSON(t, srv.Handler(), "/v1/tools/search_expenses", searchRequest{
		UserID:    "u1",
		StartDate: "02/01/2024",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeError(t, rec).Kind)
}

func TestHandleSummary(t *testing.T) {
	stub := &stubService{summaryRes: model.PeriodSummary{Month: "02", Year: "2024", TotalCount: 3}}
	srv := New(":0", stub)

	rec := postJSON(t, srv.Handler(), "/v1/tools/category_summary", summaryRequest{UserID: "u1"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.PeriodSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "02", resp.Month)
	assert.Equal(t, 3, resp.TotalCount)
}

func TestHandleHealth(t *testing.T) {
	srv := New(":0", &stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := New(":0", &stubService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/tools/query", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
