package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"stocksentinel/internal/analysis"
	"stocksentinel/internal/logger"
	"stocksentinel/internal/scoring"
	"stocksentinel/internal/stocks"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"service": "stocksentinel",
		"endpoints": []string{
			"GET /health",
			"GET /api/analyze/{ticker}",
			"GET /api/stock-info/{ticker}",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	if err := stocks.ValidateTicker(ticker); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	days := queryInt(r, "days", s.cfg.News.Days, 1, 30)
	maxArticles := queryInt(r, "max_articles", s.cfg.News.MaxArticles, 1, 100)

	report, err := s.analyzer.Analyze(r.Context(), ticker, days, maxArticles)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, report)
	case errors.Is(err, analysis.ErrNoArticles):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, scoring.ErrInvalidTicker):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.ErrorWithErr(r.Context(), "Analysis failed", err, "ticker", ticker)
		respondError(w, http.StatusInternalServerError, "analysis failed")
	}
}

func (s *Server) handleStockInfo(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	if err := stocks.ValidateTicker(ticker); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, s.stocks.Lookup(r.Context(), ticker))
}

// queryInt parses an integer query parameter, clamping to [lo, hi].
// Missing or malformed values fall back to def.
func queryInt(r *http.Request, name string, def, lo, hi int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
