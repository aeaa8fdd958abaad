package http

import (
	"net/http"

	"github.com/sentinelmind/shield/internal/logger"
	"github.com/sentinelmind/shield/internal/utils"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.ThreatService.DashboardStats(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during dashboard stats computation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
