package handlers

import (
	"encoding/json"
	"net/http"

	"tasteTribeBack/internal/auth"
	"tasteTribeBack/internal/services"
)

type StatsHandler struct {
	Service *services.StatsService
}

func (h *StatsHandler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetAdminStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(stats)
}

func (h *StatsHandler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetUserStats(r.Context(), auth.EmailFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(stats)
}
