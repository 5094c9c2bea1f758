package handlers

import (
	"encoding/json"
	"net/http"

	"tasteTribeBack/internal/auth"
	"tasteTribeBack/internal/models"
	"tasteTribeBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

// SignIn is the first-contact upsert: clients post the profile from the
// identity provider after sign-in. Posting a known email returns the
// stored record unchanged.
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	user, created, err := h.Service.SignIn(r.Context(), u)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if created {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetUsers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(users)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	user, err := h.Service.GetUserByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetProfile(r.Context(), auth.EmailFromContext(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	user, err := h.Service.UpdateProfile(r.Context(), auth.EmailFromContext(r.Context()), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, models.RoleAdmin)
}

func (h *UserHandler) DemoteToUser(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, models.RoleUser)
}

func (h *UserHandler) changeRole(w http.ResponseWriter, r *http.Request, role string) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	user, err := h.Service.ChangeRole(r.Context(), auth.EmailFromContext(r.Context()), id, role)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteUser(r.Context(), auth.EmailFromContext(r.Context()), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
