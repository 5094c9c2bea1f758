package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"tasteTribeBack/internal/models"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.authenticate)
	adminMiddleware := authMiddleware.Append(app.requireRole(models.RoleAdmin))

	mux := pat.New()

	// Users
	mux.Post("/users", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/users/me", authMiddleware.ThenFunc(app.userHandler.GetMe))
	mux.Add("PATCH", "/users/me", authMiddleware.ThenFunc(app.userHandler.UpdateMe))
	mux.Get("/users", adminMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Get("/users/:id", adminMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Add("PATCH", "/users/:id/promote", adminMiddleware.ThenFunc(app.userHandler.PromoteToAdmin))
	mux.Add("PATCH", "/users/:id/demote", adminMiddleware.ThenFunc(app.userHandler.DemoteToUser))
	mux.Del("/users/:id", adminMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Reviews
	mux.Post("/reviews", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/reviews/featured", standardMiddleware.ThenFunc(app.reviewHandler.GetFeaturedReviews))
	mux.Get("/reviews", standardMiddleware.ThenFunc(app.reviewHandler.GetReviews))
	mux.Get("/reviews/:id", standardMiddleware.ThenFunc(app.reviewHandler.GetReviewByID))
	mux.Get("/my-reviews", authMiddleware.ThenFunc(app.reviewHandler.GetMyReviews))
	mux.Put("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))
	mux.Get("/admin/reviews", adminMiddleware.ThenFunc(app.reviewHandler.GetReviews))

	// Favorites
	mux.Post("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.AddFavorite))
	mux.Get("/favorites", authMiddleware.ThenFunc(app.favoriteHandler.GetFavorites))
	mux.Del("/favorites/:id", authMiddleware.ThenFunc(app.favoriteHandler.DeleteFavorite))

	// Stats
	mux.Get("/admin/stats", adminMiddleware.ThenFunc(app.statsHandler.GetAdminStats))
	mux.Get("/my-stats", authMiddleware.ThenFunc(app.statsHandler.GetMyStats))

	// Payments
	mux.Post("/payments/intent", authMiddleware.ThenFunc(app.paymentHandler.CreateIntent))
	mux.Post("/payments/premium", authMiddleware.ThenFunc(app.paymentHandler.PromoteToPremium))

	// Uploads
	mux.Post("/uploads/photo", authMiddleware.ThenFunc(app.uploadHandler.UploadPhoto))

	return standardMiddleware.Then(mux)
}
