package main

import (
	"fmt"
	"net/http"
	"strings"

	"tasteTribeBack/internal/auth"
	"tasteTribeBack/internal/guard"
	"tasteTribeBack/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.errorLog.Printf("panic: %v", err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authenticate verifies the bearer credential and attaches the verified
// claims to the request context. Every trust decision downstream reads
// the email from that context, never from the request body.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "Authorization header missing or invalid", http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := app.verifier.Verify(r.Context(), token)
		if err != nil {
			http.Error(w, "Invalid or expired credential", http.StatusUnauthorized)
			return
		}

		ctx := auth.WithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole runs after authenticate and checks the caller's stored role.
// An unknown caller gets a plain 403 so the check never reveals whether
// the account exists.
func (app *application) requireRole(role string) func(http.Handler) http.Handler {
	policy := guard.RequireRole(app.userRepo, role)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := auth.EmailFromContext(r.Context())
			if err := policy(r.Context(), email); err != nil {
				switch err {
				case models.ErrUnauthenticated:
					http.Error(w, "Authorization header missing or invalid", http.StatusUnauthorized)
				case models.ErrForbidden:
					http.Error(w, fmt.Sprintf("Forbidden: only %s allowed", role), http.StatusForbidden)
				default:
					app.errorLog.Printf("role check: %v", err)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
