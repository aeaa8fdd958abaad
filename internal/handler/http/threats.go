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

func (h *Handler) submitThreat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var threat models.Threat
	if err := json.NewDecoder(r.Body).Decode(&threat); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	stored, err := h.services.ThreatService.Submit(ctx, threat)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid threat record provided")
			http.Error(w, "invalid threat record provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during threat submission")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", stored.ID).Str("type", stored.Type).Msg("threat record stored")

	utils.WriteJSON(w, models.SubmitResponse{Success: true}, http.StatusCreated)
}

func (h *Handler) listThreats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	threats, err := h.services.ThreatService.History(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during threat history retrieval")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, threats, http.StatusOK)
}
