package handlers

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

type AddressHandler struct {
	render    *render.Render
	validate  *validator.Validate
	addresses repositories.AddressRepositoryImpl
}

func NewAddressHandler(r *render.Render, addresses repositories.AddressRepositoryImpl) *AddressHandler {
	return &AddressHandler{render: r, validate: validator.New(), addresses: addresses}
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}

	addresses, err := h.addresses.ListByUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("AddressHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"addresses": addresses})
}

type createAddressRequest struct {
	Address   string `json:"address" validate:"required,max=255"`
	City      string `json:"city" validate:"required,max=100"`
	Country   string `json:"country" validate:"max=50"`
	IsDefault bool   `json:"is_default"`
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}

	var req createAddressRequest
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

	address := models.Address{
		UserID:    user.ID,
		Address:   req.Address,
		City:      req.City,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}
	if err := h.addresses.Create(r.Context(), &address); err != nil {
		log.Printf("AddressHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusCreated, address)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}

	address, err := h.addresses.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("AddressHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if address == nil || address.UserID != user.ID {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Dirección no encontrada"})
		return
	}

	if err := h.addresses.Delete(r.Context(), address.ID); err != nil {
		log.Printf("AddressHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Dirección eliminada"})
}
