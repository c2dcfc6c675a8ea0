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
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render    *render.Render
	validate  *validator.Validate
	store     sessions.SessionStore
	carts     repositories.CartRepositoryImpl
	cartItems repositories.CartItemRepositoryImpl
	products  repositories.ProductRepositoryImpl
}

func NewCartHandler(
	r *render.Render,
	store sessions.SessionStore,
	carts repositories.CartRepositoryImpl,
	cartItems repositories.CartItemRepositoryImpl,
	products repositories.ProductRepositoryImpl,
) *CartHandler {
	return &CartHandler{
		render:    r,
		validate:  validator.New(),
		store:     store,
		carts:     carts,
		cartItems: cartItems,
		products:  products,
	}
}

// currentCart loads the session cart, creating one on first use and
// persisting its ID back into the session cookie.
func (h *CartHandler) currentCart(w http.ResponseWriter, r *http.Request) (*models.Cart, error) {
	cartID, _ := r.Context().Value(helpers.ContextKeyCartID).(string)

	var userID *string
	if id, ok := r.Context().Value(helpers.ContextKeyUserID).(string); ok {
		userID = &id
	}

	cart, err := h.carts.GetOrCreate(r.Context(), cartID, userID)
	if err != nil {
		return nil, err
	}
	if cart.ID != cartID {
		if err := h.store.SetCartID(w, r, cart.ID); err != nil {
			log.Printf("CartHandler: session save failed: %v", err)
		}
	}
	return cart, nil
}

func cartTotal(cart *models.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.CartItems {
		total = total.Add(item.PriceSnapshot.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	return total
}

func (h *CartHandler) cartResponse(w http.ResponseWriter, r *http.Request, cart *models.Cart) {
	fresh, err := h.carts.GetWithItems(r.Context(), cart.ID)
	if err != nil || fresh == nil {
		log.Printf("CartHandler: reload of cart %s failed: %v", cart.ID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"cart":  fresh,
		"total": cartTotal(fresh),
	})
}

func (h *CartHandler) Show(w http.ResponseWriter, r *http.Request) {
	cart, err := h.currentCart(w, r)
	if err != nil {
		log.Printf("CartHandler.Show: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.cartResponse(w, r, cart)
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int    `json:"qty" validate:"required,min=1"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
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

	product, err := h.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		log.Printf("CartHandler.AddItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if product == nil || !product.IsActive {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Producto no encontrado"})
		return
	}

	cart, err := h.currentCart(w, r)
	if err != nil {
		log.Printf("CartHandler.AddItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	existing, err := h.cartItems.FindByCartAndProduct(r.Context(), cart.ID, product.ID)
	if err != nil {
		log.Printf("CartHandler.AddItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	if existing != nil {
		existing.Qty += req.Qty
		err = h.cartItems.Update(r.Context(), existing)
	} else {
		item := models.CartItem{
			CartID:        cart.ID,
			ProductID:     product.ID,
			Qty:           req.Qty,
			PriceSnapshot: product.EffectivePrice(),
		}
		err = h.cartItems.Create(r.Context(), &item)
	}
	if err != nil {
		log.Printf("CartHandler.AddItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	h.cartResponse(w, r, cart)
}

type updateItemRequest struct {
	Qty int `json:"qty" validate:"required,min=0"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Cuerpo de la petición inválido"})
		return
	}
	if req.Qty < 0 {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Cantidad inválida"})
		return
	}

	cart, err := h.currentCart(w, r)
	if err != nil {
		log.Printf("CartHandler.UpdateItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	item, err := h.cartItems.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("CartHandler.UpdateItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if item == nil || item.CartID != cart.ID {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Artículo no encontrado"})
		return
	}

	if req.Qty == 0 {
		err = h.cartItems.Delete(r.Context(), item.ID)
	} else {
		item.Qty = req.Qty
		err = h.cartItems.Update(r.Context(), item)
	}
	if err != nil {
		log.Printf("CartHandler.UpdateItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	h.cartResponse(w, r, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.currentCart(w, r)
	if err != nil {
		log.Printf("CartHandler.RemoveItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	item, err := h.cartItems.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("CartHandler.RemoveItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if item == nil || item.CartID != cart.ID {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Artículo no encontrado"})
		return
	}

	if err := h.cartItems.Delete(r.Context(), item.ID); err != nil {
		log.Printf("CartHandler.RemoveItem: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	h.cartResponse(w, r, cart)
}
