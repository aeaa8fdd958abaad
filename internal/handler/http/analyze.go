package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/service"
	"github.com/sentinelmind/shield/internal/utils"
	"github.com/sentinelmind/shield/models"
)

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.ThreatService.Analyze(ctx, request.Type, request.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid analysis request provided")
			http.Error(w, "invalid analysis request provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrAnalyzerUnavailable):
			log.Err(err).Msg("analysis provider unavailable")
			http.Error(w, "analysis provider unavailable", http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during analysis")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
