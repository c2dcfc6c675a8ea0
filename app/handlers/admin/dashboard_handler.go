package admin

import (
	"log"
	"net/http"

	"github.com/dquispe/electromarket/app/repositories"
	"github.com/dquispe/electromarket/app/utils/format"
	"github.com/unrolled/render"
)

type DashboardHandler struct {
	render     *render.Render
	products   repositories.ProductRepositoryImpl
	categories repositories.CategoryRepositoryImpl
	vendors    repositories.VendorRepositoryImpl
	orders     repositories.OrderRepositoryImpl
	users      repositories.UserRepositoryImpl
	events     repositories.EventLogRepositoryImpl
}

func NewDashboardHandler(
	r *render.Render,
	products repositories.ProductRepositoryImpl,
	categories repositories.CategoryRepositoryImpl,
	vendors repositories.VendorRepositoryImpl,
	orders repositories.OrderRepositoryImpl,
	users repositories.UserRepositoryImpl,
	events repositories.EventLogRepositoryImpl,
) *DashboardHandler {
	return &DashboardHandler{
		render:     r,
		products:   products,
		categories: categories,
		vendors:    vendors,
		orders:     orders,
		users:      users,
		events:     events,
	}
}

// Show aggregates the back-office landing numbers: catalog sizes, order
// counts per status, client count, formatted sales total and the latest
// audit events.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productCount, err := h.products.CountActive(ctx)
	if err != nil {
		h.fail(w, "productos", err)
		return
	}
	categoryCount, err := h.categories.Count(ctx)
	if err != nil {
		h.fail(w, "categorías", err)
		return
	}
	vendorCount, err := h.vendors.Count(ctx)
	if err != nil {
		h.fail(w, "proveedores", err)
		return
	}
	clientCount, err := h.users.CountClients(ctx)
	if err != nil {
		h.fail(w, "clientes", err)
		return
	}
	ordersByStatus, err := h.orders.CountByStatus(ctx)
	if err != nil {
		h.fail(w, "pedidos", err)
		return
	}
	salesTotal, err := h.orders.SalesTotal(ctx)
	if err != nil {
		h.fail(w, "ventas", err)
		return
	}
	recentEvents, err := h.events.ListRecent(ctx, 10)
	if err != nil {
		h.fail(w, "eventos", err)
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products":         productCount,
		"categories":       categoryCount,
		"vendors":          vendorCount,
		"clients":          clientCount,
		"orders_by_status": ordersByStatus,
		"sales_total":      format.Soles(salesTotal),
		"recent_events":    recentEvents,
	})
}

func (h *DashboardHandler) fail(w http.ResponseWriter, what string, err error) {
	log.Printf("admin.DashboardHandler.Show: contando %s: %v", what, err)
	h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
}
