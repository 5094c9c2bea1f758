package handlers

import (
	"encoding/json"
	"net/http"

	"tasteTribeBack/internal/auth"
	"tasteTribeBack/internal/models"
	"tasteTribeBack/internal/services"
)

type PaymentHandler struct {
	Payments *services.PaymentService
	Users    *services.UserService
}

// CreateIntent looks the package price up and returns a provider-opaque
// client secret for the frontend to confirm.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	amount, err := h.Payments.PriceOf(req.Package)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	intent, err := h.Payments.CreateIntent(amount, req.Package)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(intent)
}

// PromoteToPremium records the confirmed payment on the caller's own
// account. The client secret must be one CreateIntent issued for the
// package's price, so a bare package name never buys the role.
func (h *PaymentHandler) PromoteToPremium(w http.ResponseWriter, r *http.Request) {
	var req models.PremiumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	amount, err := h.Payments.PriceOf(req.Package)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if !h.Payments.VerifyIntentSecret(req.ClientSecret, amount) {
		writeDomainError(w, models.ErrPaymentRequired)
		return
	}
	user, err := h.Users.PromoteToPremium(r.Context(), auth.EmailFromContext(r.Context()), req.Package)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(user)
}
