package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/utils/calc"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

const productsPerPage = 12

type ProductHandler struct {
	render   *render.Render
	products repositories.ProductRepositoryImpl
}

func NewProductHandler(r *render.Render, products repositories.ProductRepositoryImpl) *ProductHandler {
	return &ProductHandler{render: r, products: products}
}

func pageParams(r *http.Request) (limit, offset, page int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit = productsPerPage
	offset = (page - 1) * limit
	return limit, offset, page
}

// List serves the catalog, optionally filtered by ?q= search or
// ?category= slug, newest first.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, page := pageParams(r)

	var (
		products interface{}
		total    int64
		err      error
	)
	if keyword := r.URL.Query().Get("q"); keyword != "" {
		products, total, err = h.products.SearchPaginated(r.Context(), keyword, limit, offset)
	} else if slug := r.URL.Query().Get("category"); slug != "" {
		products, total, err = h.products.GetByCategorySlugPaginated(r.Context(), slug, limit, offset)
	} else {
		products, total, err = h.products.GetPaginated(r.Context(), limit, offset)
	}
	if err != nil {
		log.Printf("ProductHandler.List: %v", err)
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

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetFeatured(r.Context(), 8)
	if err != nil {
		log.Printf("ProductHandler.Featured: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	product, err := h.products.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("ProductHandler.Detail: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if product == nil || !product.IsActive {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Producto no encontrado"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"product":          product,
		"discount_percent": calc.PromoDiscountPercent(product.Price, product.PromoPrice),
		"savings":          calc.PromoSavings(product.Price, product.PromoPrice),
	})
}
