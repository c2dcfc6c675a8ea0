package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	render     *render.Render
	validate   *validator.Validate
	categories repositories.CategoryRepositoryImpl
}

func NewCategoryHandler(r *render.Render, categories repositories.CategoryRepositoryImpl) *CategoryHandler {
	return &CategoryHandler{render: r, validate: validator.New(), categories: categories}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAll(r.Context())
	if err != nil {
		log.Printf("admin.CategoryHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

type categoryRequest struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
	IsActive    *bool   `json:"is_active"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Cuerpo de la petición inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	existing, err := h.categories.FindByName(r.Context(), req.Name)
	if err != nil {
		log.Printf("admin.CategoryHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if existing != nil {
		h.render.JSON(w, http.StatusConflict, map[string]string{"error": "La categoría ya existe"})
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := h.categories.Create(r.Context(), &category); err != nil {
		log.Printf("admin.CategoryHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.CategoryHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if category == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Categoría no encontrada"})
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Cuerpo de la petición inválido"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": helpers.FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	category.Name = req.Name
	category.Description = req.Description
	category.ParentID = req.ParentID
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if err := h.categories.Update(r.Context(), category); err != nil {
		log.Printf("admin.CategoryHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.CategoryHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if category == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Categoría no encontrada"})
		return
	}

	if err := h.categories.Delete(r.Context(), category.ID); err != nil {
		log.Printf("admin.CategoryHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Categoría eliminada"})
}
