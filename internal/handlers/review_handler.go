package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasteTribeBack/internal/auth"
	"tasteTribeBack/internal/models"
	"tasteTribeBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeDomainError(w, models.ErrUnauthenticated)
		return
	}
	var rev models.Review
	if err := decodeReview(r, &rev); err != nil {
		writeDomainError(w, err)
		return
	}
	created, err := h.Service.CreateReview(r.Context(), claims, rev)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	filter := models.ReviewFilter{
		Search:    r.URL.Query().Get("search"),
		MinRating: intQuery(r, "min_rating", 0),
		Sort:      r.URL.Query().Get("sort"),
		Page:      intQuery(r, "page", 0),
		Limit:     intQuery(r, "limit", 0),
	}
	page, err := h.Service.GetReviews(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(page)
}

func (h *ReviewHandler) GetFeaturedReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetFeatured(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}
	rev, err := h.Service.GetReviewByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(rev)
}

func (h *ReviewHandler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	email := auth.EmailFromContext(r.Context())
	reviews, err := h.Service.GetMyReviews(r.Context(), email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}
	var rev models.Review
	if err := decodeReview(r, &rev); err != nil {
		writeDomainError(w, err)
		return
	}
	rev.ID = id
	updated, err := h.Service.UpdateReview(r.Context(), auth.EmailFromContext(r.Context()), rev)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(updated)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}
	result, err := h.Service.DeleteReview(r.Context(), auth.EmailFromContext(r.Context()), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	json.NewEncoder(w).Encode(result)
}

// decodeReview maps a malformed rating in the body onto the validation
// error instead of a bare decode failure.
func decodeReview(r *http.Request, rev *models.Review) error {
	if err := json.NewDecoder(r.Body).Decode(rev); err != nil {
		if errors.Is(err, models.ErrInvalidRating) {
			return err
		}
		return models.ErrMissingField
	}
	return nil
}
