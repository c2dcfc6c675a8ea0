package handlers

import (
	"log"
	"net/http"

	"github.com/dquispe/electromarket/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	render     *render.Render
	categories repositories.CategoryRepositoryImpl
}

func NewCategoryHandler(r *render.Render, categories repositories.CategoryRepositoryImpl) *CategoryHandler {
	return &CategoryHandler{render: r, categories: categories}
}

// Tree serves the active category hierarchy for the storefront menu.
func (h *CategoryHandler) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.categories.GetTree(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.Tree: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": tree})
}

func (h *CategoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	category, err := h.categories.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("CategoryHandler.Detail: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if category == nil || !category.IsActive {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Categoría no encontrada"})
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}
