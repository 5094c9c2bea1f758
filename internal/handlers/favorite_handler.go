package handlers

import (
	"encoding/json"
	"net/http"

	"tasteTribeBack/internal/auth"
	"tasteTribeBack/internal/models"
	"tasteTribeBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReviewID == 0 {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	fav, err := h.Service.AddFavorite(r.Context(), auth.EmailFromContext(r.Context()), req.ReviewID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(fav)
}

func (h *FavoriteHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Service.GetFavorites(r.Context(), auth.EmailFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(favs)
}

func (h *FavoriteHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Invalid favorite ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteFavorite(r.Context(), auth.EmailFromContext(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
