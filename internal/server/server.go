// Package server exposes the query engine over an HTTP tool-invocation
// surface: one POST endpoint per tool, JSON in and out.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sahanav/askledger/internal/engine"
	"github.com/sahanav/askledger/internal/model"
)

// QueryService is the slice of the engine the server needs.
type QueryService interface {
	Query(ctx context.Context, text, userID string) (string, error)
	SearchExpenses(ctx context.Context, userID string, filter engine.SearchFilter) (engine.SearchResult, error)
	CategorySummary(ctx context.Context, userID, month, year string) (model.PeriodSummary, error)
}

// Server hosts the tool endpoints.
type Server struct {
	httpServer *http.Server
	service    QueryService
}

// New creates a server listening on addr.
func New(addr string, service QueryService) *Server {
	s := &Server{service: service}

	r := mux.NewRouter()
	r.Use(requestLogging)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	tools := r.PathPrefix("/v1/tools").Subrouter()
	tools.HandleFunc("/query", s.handleQuery).Methods(http.MethodPost)
	tools.HandleFunc("/search_expenses", s.handleSearch).Methods(http.MethodPost)
	tools.HandleFunc("/category_summary", s.handleSummary).Methods(http.MethodPost)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	slog.Info("Server listening", "addr", s.httpServer.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
