package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type ProductHandler struct {
	render   *render.Render
	validate *validator.Validate
	db       *gorm.DB
	products repositories.ProductRepositoryImpl
}

func NewProductHandler(r *render.Render, db *gorm.DB, products repositories.ProductRepositoryImpl) *ProductHandler {
	return &ProductHandler{render: r, validate: validator.New(), db: db, products: products}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 20
	offset := (page - 1) * limit

	products, total, err := h.products.ListAllPaginated(r.Context(), limit, offset)
	if err != nil {
		log.Printf("admin.ProductHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    total,
		"page":     page,
		"per_page": limit,
	})
}

type productRequest struct {
	Name           string  `json:"name" validate:"required,max=255"`
	Description    string  `json:"description"`
	TechnicalSpecs string  `json:"technical_specs"`
	Price          string  `json:"price" validate:"required"`
	PromoPrice     *string `json:"promo_price"`
	CategoryID     *string `json:"category_id"`
	VendorID       *string `json:"vendor_id"`
	IsFeatured     *bool   `json:"is_featured"`
	IsActive       *bool   `json:"is_active"`
}

func (r *productRequest) prices() (decimal.Decimal, *decimal.Decimal, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return decimal.Zero, nil, err
	}
	var promo *decimal.Decimal
	if r.PromoPrice != nil && *r.PromoPrice != "" {
		parsed, err := decimal.NewFromString(*r.PromoPrice)
		if err != nil {
			return decimal.Zero, nil, err
		}
		promo = &parsed
	}
	return price, promo, nil
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
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

	price, promo, err := req.prices()
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Precio inválido"})
		return
	}

	product := models.Product{
		Name:           req.Name,
		Description:    req.Description,
		TechnicalSpecs: req.TechnicalSpecs,
		Price:          price,
		PromoPrice:     promo,
		CategoryID:     req.CategoryID,
		VendorID:       req.VendorID,
		IsActive:       true,
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User); ok {
		product.CreatedByID = &user.ID
	}

	if err := h.products.Create(r.Context(), &product); err != nil {
		log.Printf("admin.ProductHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.ProductHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Producto no encontrado"})
		return
	}

	var req productRequest
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

	price, promo, err := req.prices()
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Precio inválido"})
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.TechnicalSpecs = req.TechnicalSpecs
	product.Price = price
	product.PromoPrice = promo
	product.CategoryID = req.CategoryID
	product.VendorID = req.VendorID
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.products.Update(r.Context(), product); err != nil {
		log.Printf("admin.ProductHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.ProductHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Producto no encontrado"})
		return
	}

	if err := h.products.Delete(r.Context(), product.ID); err != nil {
		log.Printf("admin.ProductHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Producto eliminado"})
}

type productImageRequest struct {
	Path   string `json:"path" validate:"required,max=255"`
	IsMain bool   `json:"is_main"`
}

// AddImage attaches an image to a product. Marking it main demotes the
// previous main image (handled by the model's BeforeSave hook).
func (h *ProductHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.ProductHandler.AddImage: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Producto no encontrado"})
		return
	}

	var req productImageRequest
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

	image := models.ProductImage{
		ProductID: product.ID,
		Path:      req.Path,
		IsMain:    req.IsMain,
	}
	if err := h.db.WithContext(r.Context()).Create(&image).Error; err != nil {
		log.Printf("admin.ProductHandler.AddImage: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusCreated, image)
}
