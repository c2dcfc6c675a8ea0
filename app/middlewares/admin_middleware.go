package middlewares

import (
	"net/http"

	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/models"
	"github.com/unrolled/render"
)

// AdminMiddleware gates the back office: 401 without a session, 403 for
// users without a staff role.
func AdminMiddleware(renderer *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
			if !ok || user == nil {
				renderer.JSON(w, http.StatusUnauthorized, map[string]string{
					"error": "Debe iniciar sesión",
				})
				return
			}
			if !user.IsStaff() {
				renderer.JSON(w, http.StatusForbidden, map[string]string{
					"error": "Acceso restringido al personal",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin gates customer-only endpoints with a 401.
func RequireLogin(renderer *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User); !ok {
				renderer.JSON(w, http.StatusUnauthorized, map[string]string{
					"error": "Debe iniciar sesión",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
