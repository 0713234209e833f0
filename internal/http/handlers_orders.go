package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/agroconecta/console/internal/core"
	"github.com/agroconecta/console/internal/domain/model"
)

// OrderHandlers provides the HTTP surface for orders. Status transitions are
// forwarded as-is; the marketplace enforces the legal transition graph and its
// rejections surface here as conflict errors.
type OrderHandlers struct {
	Svc core.OrderGateway
}

// Create handles POST /api/orders.
func (h *OrderHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	order, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, order)
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, order)
}

// GetByNumber handles GET /api/orders/number/{number}.
func (h *OrderHandlers) GetByNumber(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")
	if number == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_order_number", Err: errors.New("order number is required")})
		return
	}
	order, err := h.Svc.GetByNumber(r.Context(), number)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, order)
}

// Update handles PUT /api/orders/{id}.
func (h *OrderHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateOrderRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	order, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, order)
}

// Delete handles DELETE /api/orders/{id}.
func (h *OrderHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/orders. All filters are optional and combine.
func (h *OrderHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := model.OrderSearch{
		ClientID:     queryInt64Ptr(r, "clienteId"),
		Status:       model.OrderStatus(r.URL.Query().Get("estado")),
		DeliveryZone: r.URL.Query().Get("zonaEntrega"),
		From:         queryTimePtr(r, "fechaInicio"),
		To:           queryTimePtr(r, "fechaFin"),
	}
	orders, err := h.Svc.List(r.Context(), q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/orders/{id}/status.
func (h *OrderHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateOrderStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Status == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_status", Err: errors.New("estado is required")})
		return
	}
	if err := h.Svc.UpdateStatus(r.Context(), id, req); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Confirm handles PATCH /api/orders/{id}/confirm.
func (h *OrderHandlers) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Svc.Confirm)
}

// MarkInRoute handles PATCH /api/orders/{id}/in-route.
func (h *OrderHandlers) MarkInRoute(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Svc.MarkInRoute)
}

// MarkDelivered handles PATCH /api/orders/{id}/delivered.
func (h *OrderHandlers) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Svc.MarkDelivered)
}

// Summary handles GET /api/orders/summary.
func (h *OrderHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Summary(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}

// Statistics handles GET /api/orders/statistics.
func (h *OrderHandlers) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Statistics(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

func (h *OrderHandlers) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := op(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
