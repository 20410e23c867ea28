package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"recordaccel/internal/app"
	"recordaccel/internal/util"
)

const maxBodyBytes = 1 << 20

// Config wires required dependencies for the HTTP server.
type Config struct {
	App *app.App
}

// Server exposes the HTTP endpoints of the sample recorder.
type Server struct {
	app *app.App
	mux *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) (*Server, error) {
	if cfg.App == nil {
		return nil, fmt.Errorf("app required")
	}
	s := &Server{
		app: cfg.App,
		mux: http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

// Router returns the configured handler with the middleware chain applied.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithRequestLog(util.WithSecurityHeaders(util.WithCORS(s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/samples", s.handleSamples)
	s.mux.HandleFunc("/samples/day", s.handleDay)
	s.mux.HandleFunc("/samples/days", s.handleDays)
	s.mux.HandleFunc("/users/registered", s.handleRegistered)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSamples serves ingestion on POST and the unfiltered per-user sample
// list on GET.
func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleIngest(w, r)
	case http.MethodGet:
		s.handleListAll(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	candidates, err := app.DecodeBatch(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	result, err := s.app.Ingest(r.Context(), candidates)
	if errors.Is(err, app.ErrNoValidSamples) {
		writeError(w, http.StatusBadRequest, "userId or data is not valid")
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListAll(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId not found")
		return
	}
	samples, err := s.app.ListAll(r.Context(), userID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, samples)
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	userID := r.URL.Query().Get("userId")
	date := r.URL.Query().Get("date")
	if userID == "" || date == "" {
		writeError(w, http.StatusBadRequest, "userId or date not found")
		return
	}
	samples, err := s.app.QueryDay(r.Context(), userID, date)
	if errors.Is(err, app.ErrInvalidDate) {
		writeError(w, http.StatusBadRequest, "userId or date not found")
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, samples)
}

func (s *Server) handleDays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	userID := r.URL.Query().Get("userId")
	rawPage := r.URL.Query().Get("pageNumber")
	if userID == "" || rawPage == "" {
		writeError(w, http.StatusBadRequest, "userId or pageNumber not found")
		return
	}
	page, err := strconv.Atoi(rawPage)
	if err != nil {
		writeError(w, http.StatusBadRequest, "userId or pageNumber not found")
		return
	}
	days, err := s.app.ListDays(r.Context(), userID, page)
	if errors.Is(err, app.ErrInvalidPage) {
		writeError(w, http.StatusBadRequest, "userId or pageNumber not found")
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (s *Server) handleRegistered(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId not found")
		return
	}
	registered, err := s.app.IsRegistered(r.Context(), userID)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"registered": registered})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	util.LoggerFromContext(r.Context()).Error("request failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
