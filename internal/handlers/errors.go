package handlers

import (
	"errors"
	"log"
	"net/http"

	"tasteTribeBack/internal/models"
)

// writeDomainError converts the error taxonomy into HTTP responses at the
// boundary. Role and ownership failures stay opaque; InvalidOperation and
// Validation failures carry their reason. Anything unmapped is a server
// error that is logged but never leaked.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		http.Error(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrSelfModification):
		http.Error(w, "admins cannot modify their own account", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidPackage):
		http.Error(w, "unknown package name", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidRating):
		http.Error(w, "rating must be an integer between 1 and 5", http.StatusBadRequest)
	case errors.Is(err, models.ErrMissingField):
		http.Error(w, "missing required field", http.StatusBadRequest)
	case errors.Is(err, models.ErrPaymentRequired):
		http.Error(w, "payment not confirmed", http.StatusPaymentRequired)
	case errors.Is(err, models.ErrAlreadyFavorite):
		http.Error(w, "review already in favorites", http.StatusConflict)
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrReviewNotFound),
		errors.Is(err, models.ErrFavoriteNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		log.Printf("internal error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
