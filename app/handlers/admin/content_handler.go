package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type ContentHandler struct {
	render   *render.Render
	validate *validator.Validate
	db       *gorm.DB
	banners  repositories.BannerRepositoryImpl
	blocks   repositories.ContentBlockRepositoryImpl
}

func NewContentHandler(
	r *render.Render,
	db *gorm.DB,
	banners repositories.BannerRepositoryImpl,
	blocks repositories.ContentBlockRepositoryImpl,
) *ContentHandler {
	return &ContentHandler{render: r, validate: validator.New(), db: db, banners: banners, blocks: blocks}
}

func (h *ContentHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	var banners []models.Banner
	err := h.db.WithContext(r.Context()).Order("start_date DESC").Find(&banners).Error
	if err != nil {
		log.Printf("admin.ContentHandler.ListBanners: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"banners": banners})
}

type bannerRequest struct {
	Title     string    `json:"title" validate:"required,max=255"`
	Tagline   string    `json:"tagline" validate:"max=255"`
	ImagePath string    `json:"image_path" validate:"required,max=255"`
	Link      string    `json:"link" validate:"max=255"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	IsActive  *bool     `json:"is_active"`
}

func (h *ContentHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req bannerRequest
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
	if !req.EndDate.After(req.StartDate) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "La fecha de fin debe ser posterior a la de inicio"})
		return
	}

	banner := models.Banner{
		Title:     req.Title,
		Tagline:   req.Tagline,
		ImagePath: req.ImagePath,
		Link:      req.Link,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if err := h.banners.Create(r.Context(), &banner); err != nil {
		log.Printf("admin.ContentHandler.CreateBanner: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusCreated, banner)
}

func (h *ContentHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	var banner models.Banner
	err := h.db.WithContext(r.Context()).First(&banner, "id = ?", mux.Vars(r)["id"]).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Banner no encontrado"})
			return
		}
		log.Printf("admin.ContentHandler.UpdateBanner: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	var req bannerRequest
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
	if !req.EndDate.After(req.StartDate) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "La fecha de fin debe ser posterior a la de inicio"})
		return
	}

	banner.Title = req.Title
	banner.Tagline = req.Tagline
	banner.ImagePath = req.ImagePath
	banner.Link = req.Link
	banner.StartDate = req.StartDate
	banner.EndDate = req.EndDate
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if err := h.banners.Update(r.Context(), &banner); err != nil {
		log.Printf("admin.ContentHandler.UpdateBanner: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, banner)
}

func (h *ContentHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.banners.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		log.Printf("admin.ContentHandler.DeleteBanner: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Banner eliminado"})
}

type contentBlockRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content"`
}

// UpsertBlock creates or replaces the content block stored under the
// key in the URL.
func (h *ContentHandler) UpsertBlock(w http.ResponseWriter, r *http.Request) {
	var req contentBlockRequest
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

	block := models.ContentBlock{
		Key:     mux.Vars(r)["key"],
		Title:   req.Title,
		Content: req.Content,
	}
	if err := h.blocks.Upsert(r.Context(), &block); err != nil {
		log.Printf("admin.ContentHandler.UpsertBlock: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	saved, err := h.blocks.GetByKey(r.Context(), block.Key)
	if err != nil || saved == nil {
		h.render.JSON(w, http.StatusOK, block)
		return
	}
	h.render.JSON(w, http.StatusOK, saved)
}
