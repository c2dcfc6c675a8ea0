package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render   *render.Render
	validate *validator.Validate
	store    sessions.SessionStore
	users    repositories.UserRepositoryImpl
}

func NewAuthHandler(r *render.Render, store sessions.SessionStore, users repositories.UserRepositoryImpl) *AuthHandler {
	return &AuthHandler{
		render:   r,
		validate: validator.New(),
		store:    store,
		users:    users,
	}
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=20"`
	Password  string `json:"password" validate:"required,min=8"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
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

	existing, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("AuthHandler.Register: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if existing != nil {
		h.render.JSON(w, http.StatusConflict, map[string]string{"error": "El correo ya está registrado"})
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Role:      models.RoleClient,
	}
	if err := h.users.Create(r.Context(), &user); err != nil {
		log.Printf("AuthHandler.Register: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	if err := h.store.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.Register: session save failed: %v", err)
	}
	h.render.JSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
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

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("AuthHandler.Login: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if user == nil || !user.IsActive || !helpers.PasswordCompare(user.Password, []byte(req.Password)) {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Credenciales inválidas"})
		return
	}

	if err := h.store.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.Login: session save failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearSession(w, r); err != nil {
		log.Printf("AuthHandler.Logout: %v", err)
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Sesión cerrada"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}
	h.render.JSON(w, http.StatusOK, user)
}
