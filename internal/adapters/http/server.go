package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"urltrust/internal/ports"
	"urltrust/internal/report"
	"urltrust/internal/services/checker"
)

// Pinger reports store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	checker ports.Checker
	store   Pinger
}

func New(checker ports.Checker, store Pinger) *Server {
	return &Server{checker: checker, store: store}
}

// Routes returns a chi.Router with all API endpoints mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/api/health", s.handleHealth)
	r.Post("/api/check", s.handleCheck)
	r.Get("/api/history", s.handleHistory)
	r.Get("/api/checks/{id}", s.handleGetCheck)
	r.Get("/api/download-report/csv", s.handleCSVReport)
	r.Get("/api/download-report/pdf/{id}", s.handlePDFReport)
	return r
}

type checkRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "Please provide a valid URL string")
		return
	}

	rec, cached, err := s.checker.Check(r.Context(), req.URL)
	if errors.Is(err, checker.ErrInvalidURL) {
		writeError(w, http.StatusBadRequest, "Invalid URL", "The provided URL is not valid")
		return
	}
	if err != nil {
		log.Printf("check error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "An error occurred while checking the URL")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		ID        string    `json:"id"`
		URL       string    `json:"url"`
		Verdict   string    `json:"verdict"`
		Score     int       `json:"score"`
		Reasons   []string  `json:"reasons"`
		CheckedAt time.Time `json:"checkedAt"`
		Cached    bool      `json:"cached"`
	}{rec.ID, rec.URL, string(rec.Verdict), rec.Score, rec.Reasons, rec.CheckedAt, cached})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"), 50)
	checks, err := s.checker.History(r.Context(), limit)
	if err != nil {
		log.Printf("history error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "An error occurred while fetching history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":  len(checks),
		"checks": checks,
	})
}

func (s *Server) handleGetCheck(w http.ResponseWriter, r *http.Request) {
	rec, err := s.checker.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found", "Check record not found")
		return
	}
	if err != nil {
		log.Printf("get check error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "An error occurred while fetching the check")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCSVReport(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"), 100)
	checks, err := s.checker.History(r.Context(), limit)
	if err != nil {
		log.Printf("csv report error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "An error occurred while generating the CSV report")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=url-checks-%d.csv", time.Now().Unix()))
	if err := report.WriteCSV(w, checks); err != nil {
		log.Printf("csv render error: %v", err)
	}
}

func (s *Server) handlePDFReport(w http.ResponseWriter, r *http.Request) {
	rec, err := s.checker.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ports.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found", "Check record not found")
		return
	}
	if err != nil {
		log.Printf("pdf report error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", "An error occurred while generating the PDF report")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=url-check-%s.pdf", rec.ID))
	if err := report.WritePDF(w, rec); err != nil {
		log.Printf("pdf render error: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if err := s.store.Ping(r.Context()); err != nil {
		dbStatus = "disconnected"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  dbStatus,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "URL Trust Checker API",
		"version": "2.0.0",
		"endpoints": map[string]string{
			"check":     "POST /api/check",
			"history":   "GET /api/history",
			"lookup":    "GET /api/checks/{id}",
			"pdfReport": "GET /api/download-report/pdf/{id}",
			"csvReport": "GET /api/download-report/csv",
			"health":    "GET /api/health",
		},
	})
}

func parseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, errName, message string) {
	writeJSON(w, status, map[string]string{"error": errName, "message": message})
}
