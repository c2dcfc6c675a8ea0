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
	"gorm.io/gorm"
)

type UserHandler struct {
	render   *render.Render
	validate *validator.Validate
	db       *gorm.DB
	users    repositories.UserRepositoryImpl
}

func NewUserHandler(r *render.Render, db *gorm.DB, users repositories.UserRepositoryImpl) *UserHandler {
	return &UserHandler{render: r, validate: validator.New(), db: db, users: users}
}

func (h *UserHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.users.ListStaff(r.Context())
	if err != nil {
		log.Printf("admin.UserHandler.ListStaff: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"staff": staff})
}

type createStaffRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"required,oneof=MARKETING LOGISTICS FINANCE IT"`
}

// CreateStaff registers a staff account with its department profile in
// one transaction.
func (h *UserHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req createStaffRequest
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
		log.Printf("admin.UserHandler.CreateStaff: %v", err)
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
		Password:  helpers.HashPassword(req.Password),
		Role:      models.RoleStaff,
	}
	err = h.db.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.StaffProfile{UserID: user.ID, Department: req.Department}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Printf("admin.UserHandler.CreateStaff: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	created, err := h.users.FindByID(r.Context(), user.ID)
	if err != nil || created == nil {
		log.Printf("admin.UserHandler.CreateStaff: reload failed: %v", err)
		h.render.JSON(w, http.StatusCreated, user)
		return
	}
	h.render.JSON(w, http.StatusCreated, created)
}

type updateStaffRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"max=100"`
	Department string `json:"department" validate:"omitempty,oneof=MARKETING LOGISTICS FINANCE IT"`
	IsActive   *bool  `json:"is_active"`
}

func (h *UserHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.UserHandler.UpdateStaff: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if user == nil || !user.IsStaff() {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Usuario no encontrado"})
		return
	}

	var req updateStaffRequest
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

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	err = h.db.WithContext(r.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if req.Department != "" && user.StaffProfile != nil {
			user.StaffProfile.Department = req.Department
			return tx.Save(user.StaffProfile).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("admin.UserHandler.UpdateStaff: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, user)
}
