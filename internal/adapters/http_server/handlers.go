package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"feedback_insights/internal/app"
	"feedback_insights/internal/domain"
)

type Handlers struct {
	Analysis  *app.AnalysisService
	Analytics *app.AnalyticsService
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/feedback", h.analyzeFeedback)
	s.mux.Post("/v1/analytics", h.getAnalytics)
	s.mux.Get("/v1/analytics", h.getAnalytics)
}

type analyzeRequest struct {
	Feedback   string         `json:"feedback"`
	CustomerID string         `json:"customer_id"`
	Metadata   map[string]any `json:"metadata"`
}

type analyticsRequest struct {
	Limit int `json:"limit"`
}

func (h *Handlers) analyzeFeedback(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.Analysis.Analyze(r.Context(), app.AnalyzeInput{
		Text:       req.Feedback,
		CustomerID: req.CustomerID,
		Metadata:   req.Metadata,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// getAnalytics serves both verbs. POST takes {limit} in the body; GET takes
// ?limit=N. A malformed body degrades to the default limit instead of
// failing: the analytics path always answers.
func (h *Handlers) getAnalytics(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if r.Method == http.MethodGet {
		if ls := r.URL.Query().Get("limit"); ls != "" {
			if l, err := strconv.Atoi(ls); err == nil {
				limit = l
			}
		}
	} else {
		var req analyticsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			limit = req.Limit
		}
	}

	out := h.Analytics.Snapshot(r.Context(), limit)
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
