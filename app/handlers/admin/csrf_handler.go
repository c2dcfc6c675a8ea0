package admin

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/unrolled/render"
)

type CSRFHandler struct {
	render *render.Render
}

func NewCSRFHandler(r *render.Render) *CSRFHandler {
	return &CSRFHandler{render: r}
}

// Token hands the SPA a token for the mutating admin endpoints.
func (h *CSRFHandler) Token(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]string{
		"csrf_token": csrf.Token(r),
	})
}
