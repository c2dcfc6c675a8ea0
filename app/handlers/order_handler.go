package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/dquispe/electromarket/app/helpers"
	"github.com/dquispe/electromarket/app/models"
	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	render   *render.Render
	orders   repositories.OrderRepositoryImpl
	checkout *services.CheckoutService
	payments *services.PaymentService
}

func NewOrderHandler(
	r *render.Render,
	orders repositories.OrderRepositoryImpl,
	checkout *services.CheckoutService,
	payments *services.PaymentService,
) *OrderHandler {
	return &OrderHandler{
		render:   r,
		orders:   orders,
		checkout: checkout,
		payments: payments,
	}
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}
	cartID, ok := r.Context().Value(helpers.ContextKeyCartID).(string)
	if !ok || cartID == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "El carrito está vacío"})
		return
	}

	var req checkoutRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod != models.PaymentMethodMidtrans {
		paymentMethod = models.PaymentMethodManual
	}

	order, err := h.checkout.Checkout(r.Context(), cartID, user.ID, paymentMethod)
	if err != nil {
		if err == services.ErrEmptyCart {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "El carrito está vacío"})
			return
		}
		log.Printf("OrderHandler.Checkout: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	h.render.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), user.ID)
	if err != nil {
		log.Printf("OrderHandler.ListMine: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}

	order, err := h.orders.FindByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		log.Printf("OrderHandler.Detail: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if order == nil || order.UserID != user.ID {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Pedido no encontrado"})
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

// Pay requests a Midtrans payment page for the caller's own order.
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}

	orderID := mux.Vars(r)["id"]
	order, err := h.orders.FindByID(r.Context(), orderID)
	if err != nil {
		log.Printf("OrderHandler.Pay: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if order == nil || order.UserID != user.ID {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Pedido no encontrado"})
		return
	}

	paid, err := h.payments.CreateSnapTransaction(r.Context(), orderID)
	if err != nil {
		if err == services.ErrOrderNotPayable {
			h.render.JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("OrderHandler.Pay: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "No se pudo iniciar el pago"})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{
		"payment_url": paid.PaymentURL,
		"token":       paid.PaymentID,
	})
}

type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

// MidtransWebhook receives payment notifications. It always answers 200
// for orders it knows about so the gateway stops retrying.
func (h *OrderHandler) MidtransWebhook(w http.ResponseWriter, r *http.Request) {
	var payload midtransNotification
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Notificación inválida"})
		return
	}

	err := h.payments.HandleNotification(r.Context(), payload.OrderID, payload.TransactionStatus, payload.FraudStatus)
	if err != nil {
		if err == services.ErrUnknownReference {
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Pedido no encontrado"})
			return
		}
		log.Printf("OrderHandler.MidtransWebhook: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
