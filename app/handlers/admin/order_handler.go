package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

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
	events   repositories.EventLogRepositoryImpl
	payments *services.PaymentService
}

func NewOrderHandler(
	r *render.Render,
	orders repositories.OrderRepositoryImpl,
	events repositories.EventLogRepositoryImpl,
	payments *services.PaymentService,
) *OrderHandler {
	return &OrderHandler{render: r, orders: orders, events: events, payments: payments}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !models.ValidOrderStatus(status) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Estado inválido"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit := 20
	offset := (page - 1) * limit

	orders, total, err := h.orders.ListPaginated(r.Context(), status, limit, offset)
	if err != nil {
		log.Printf("admin.OrderHandler.List: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"orders":   orders,
		"total":    total,
		"page":     page,
		"per_page": limit,
	})
}

func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.OrderHandler.Detail: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if order == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Pedido no encontrado"})
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status        string `json:"status"`
	InternalNotes string `json:"internal_notes"`
}

// UpdateStatus moves an order through its lifecycle and records the
// transition in the audit trail.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.FindByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		log.Printf("admin.OrderHandler.UpdateStatus: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if order == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Pedido no encontrado"})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Cuerpo de la petición inválido"})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Estado inválido"})
		return
	}

	previous := order.Status
	order.Status = req.Status
	if req.InternalNotes != "" {
		order.InternalNotes = req.InternalNotes
	}
	if err := h.orders.Update(r.Context(), order); err != nil {
		log.Printf("admin.OrderHandler.UpdateStatus: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}

	var actor *string
	if user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User); ok {
		actor = &user.ID
	}
	h.events.Record(r.Context(), actor, models.EventOrderStatusChange, map[string]interface{}{
		"order_code": order.OrderCode,
		"from":       previous,
		"to":         order.Status,
		"via":        "admin",
	})

	h.render.JSON(w, http.StatusOK, order)
}

// MarkPaid confirms a manual payment (bank transfer, in-store).
func (h *OrderHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok {
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Debe iniciar sesión"})
		return
	}

	order, err := h.payments.MarkPaidManually(r.Context(), mux.Vars(r)["id"], user.ID)
	if err != nil {
		switch err {
		case services.ErrOrderNotFound:
			h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Pedido no encontrado"})
		case services.ErrOrderNotPayable:
			h.render.JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			log.Printf("admin.OrderHandler.MarkPaid: %v", err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		}
		return
	}
	h.render.JSON(w, http.StatusOK, order)
}
