package handlers

import (
	"net/http"
	"strconv"

	"github.com/municipress/flipbook/internal/observability"
	"github.com/municipress/flipbook/internal/storage"
)

const defaultHistoryLimit = 20

// HistoryHandler serves the conversion log.
type HistoryHandler struct {
	logger *observability.Logger
	repo   *storage.ConversionRepository
}

// NewHistoryHandler creates a conversion log handler.
func NewHistoryHandler(logger *observability.Logger, repo *storage.ConversionRepository) *HistoryHandler {
	return &HistoryHandler{logger: logger, repo: repo}
}

// List handles GET /api/conversions?account=&limit=.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer", "")
			return
		}
		limit = n
	}

	records, err := h.repo.ListByAccount(r.Context(), account, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("account", account).Msg("failed to list conversions")
		writeError(w, http.StatusInternalServerError, "failed to list conversions", "")
		return
	}

	if records == nil {
		records = []storage.ConversionRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"conversions": records,
		"count":       len(records),
	})
}

// Stats handles GET /api/stats?account=.
func (h *HistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")

	stats, err := h.repo.Stats(r.Context(), account)
	if err != nil {
		h.logger.Error().Err(err).Str("account", account).Msg("failed to compute stats")
		writeError(w, http.StatusInternalServerError, "failed to compute stats", "")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
