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

type VendorHandler struct {
	render   *render.Render
	validate *validator.Validate
	vendors  repositories.VendorRepositoryImpl
}

func NewVendorHandler(r *render.Render, vendors repositories.VendorRepositoryImpl) *VendorHandler {
	return &VendorHandler{render: r, validate: validator.New(), vendors: vendors}
}

func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.vendors.GetAll(r.Context())
	if err != nil {
		log.Printf("admin.VendorHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"vendors": vendors})
}

type vendorRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=50"`
	IsActive     *bool  `json:"is_active"`
}

func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
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

	existing, err := h.vendors.FindByName(r.Context(), req.Name)
	if err != nil {
		log.Printf("admin.VendorHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if existing != nil {
		h.render.JSON(w, http.StatusConflict, map[string]string{"error": "El proveedor ya existe"})
		return
	}

	vendor := models.Vendor{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		IsActive:     true,
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}
	if err := h.vendors.Create(r.Context(), &vendor); err != nil {
		log.Printf("admin.VendorHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusCreated, vendor)
}

func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.vendors.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.VendorHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if vendor == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Proveedor no encontrado"})
		return
	}

	var req vendorRequest
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

	vendor.Name = req.Name
	vendor.ContactEmail = req.ContactEmail
	vendor.Phone = req.Phone
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}
	if err := h.vendors.Update(r.Context(), vendor); err != nil {
		log.Printf("admin.VendorHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, vendor)
}

func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.vendors.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.VendorHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if vendor == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Proveedor no encontrado"})
		return
	}

	if err := h.vendors.Delete(r.Context(), vendor.ID); err != nil {
		log.Printf("admin.VendorHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Proveedor eliminado"})
}
