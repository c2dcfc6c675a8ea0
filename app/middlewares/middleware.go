package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/utils/sessions"
)

// AuthMiddleware resolves the session cookie into the current user and
// cart and puts both on the request context. It never rejects: anonymous
// requests pass through with an empty context.
func AuthMiddleware(store sessions.SessionStore, users repositories.UserRepositoryImpl) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := store.GetUserID(r); userID != "" {
				user, err := users.FindByID(ctx, userID)
				if err != nil {
					log.Printf("AuthMiddleware: lookup of user %s failed: %v", userID, err)
				}
				if user != nil && user.IsActive {
					ctx = context.WithValue(ctx, helpers.ContextKeyUserID, user.ID)
					ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
				}
			}

			if cartID := store.GetCartID(r); cartID != "" {
				ctx = context.WithValue(ctx, helpers.ContextKeyCartID, cartID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggingMiddleware logs method and path for every request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
