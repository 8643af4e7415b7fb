package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sahanav/askledger/internal/common"
	"github.com/sahanav/askledger/internal/engine"
)

type queryRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}

type queryResponse struct {
	Report string `json:"report"`
}

type searchRequest struct {
	UserID    string `json:"user_id"`
	Category  string `json:"category,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type summaryRequest struct {
	UserID string `json:"user_id"`
	Month  string `json:"month,omitempty"`
	Year   string `json:"year,omitempty"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewValidationError("body", err.Error()))
		return
	}

	report, err := s.service.Query(r.Context(), req.Text, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, queryResponse{Report: report})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewValidationError("body", err.Error()))
		return
	}

	filter := engine.SearchFilter{Category: req.Category}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			writeError(w, common.NewValidationError("start_date", req.StartDate))
			return
		}
		filter.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			writeError(w, common.NewValidationError("end_date", req.EndDate))
			return
		}
		// The bound is inclusive of the whole day.
		end = end.AddDate(0, 0, 1).Add(-time.Second)
		filter.EndDate = &end
	}

	result, err := s.service.SearchExpenses(r.Context(), req.UserID, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewValidationError("body", err.Error()))
		return
	}

	summary, err := s.service.CategorySummary(r.Context(), req.UserID, req.Month, req.Year)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto HTTP statuses. Messages pass
// through verbatim: they are self-contained by construction.
func writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *common.ValidationError
		authErr       *common.AuthorizationError
		ambiguousErr  *common.AmbiguousQueryError
		storeErr      *common.StoreError
	)

	kind := "internal"
	status := http.StatusInternalServerError

	switch {
	case errors.As(err, &validationErr):
		kind, status = "validation", http.StatusBadRequest
	case errors.As(err, &authErr):
		kind, status = "authorization", http.StatusUnauthorized
	case errors.As(err, &ambiguousErr):
		kind, status = "ambiguous_query", http.StatusUnprocessableEntity
	case errors.As(err, &storeErr):
		kind = "store"
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Kind:    kind,
		Message: err.Error(),
	}})
}
