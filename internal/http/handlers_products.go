package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/agroconecta/console/internal/core"
	"github.com/agroconecta/console/internal/domain/model"
)

const defaultLowStockThreshold = 10

// ProductHandlers provides the HTTP surface for the product catalog.
type ProductHandlers struct {
	Svc core.ProductGateway
}

// Create handles POST /api/products.
func (h *ProductHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	product, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, product)
}

// Get handles GET /api/products/{id}.
func (h *ProductHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	product, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, product)
}

// Update handles PUT /api/products/{id}.
func (h *ProductHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateProductRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	product, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

// List handles GET /api/products. Search filters are optional query params.
func (h *ProductHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := model.ProductSearch{
		ProducerID:    queryInt64Ptr(r, "productorId"),
		Name:          r.URL.Query().Get("nombre"),
		MinPrice:      queryFloatPtr(r, "precioMinimo"),
		MaxPrice:      queryFloatPtr(r, "precioMaximo"),
		Unit:          r.URL.Query().Get("unidadMedida"),
		OnlyAvailable: queryBoolPtr(r, "soloDisponibles"),
	}

	var (
		products []model.Product
		err      error
	)
	if q == (model.ProductSearch{}) {
		products, err = h.Svc.List(r.Context())
	} else {
		products, err = h.Svc.Search(r.Context(), q)
	}
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, products)
}

// ListAvailable handles GET /api/products/available.
func (h *ProductHandlers) ListAvailable(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Svc.ListAvailable)
}

// ListByProducer handles GET /api/products/producer/{id}.
func (h *ProductHandlers) ListByProducer(w http.ResponseWriter, r *http.Request) {
	producerID, ok := pathID(w, r)
	if !ok {
		return
	}
	products, err := h.Svc.ListByProducer(r.Context(), producerID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, products)
}

// ListLowStock handles GET /api/products/low-stock.
func (h *ProductHandlers) ListLowStock(w http.ResponseWriter, r *http.Request) {
	threshold := queryInt(r, "threshold", defaultLowStockThreshold)
	if threshold < 0 {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_threshold", Err: errors.New("threshold must not be negative")})
		return
	}
	products, err := h.Svc.ListLowStock(r.Context(), threshold)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, products)
}

// ListOutOfStock handles GET /api/products/out-of-stock.
func (h *ProductHandlers) ListOutOfStock(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Svc.ListOutOfStock)
}

// UpdatePrice handles PUT /api/products/{id}/price.
func (h *ProductHandlers) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdatePriceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := h.Svc.UpdatePrice(r.Context(), id, req); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateStock handles PUT /api/products/{id}/stock.
func (h *ProductHandlers) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateStockRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := h.Svc.UpdateStock(r.Context(), id, req); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// IncreaseStock handles PUT /api/products/{id}/stock/increase.
func (h *ProductHandlers) IncreaseStock(w http.ResponseWriter, r *http.Request) {
	h.adjustStock(w, r, h.Svc.IncreaseStock)
}

// ReduceStock handles PUT /api/products/{id}/stock/reduce.
func (h *ProductHandlers) ReduceStock(w http.ResponseWriter, r *http.Request) {
	h.adjustStock(w, r, h.Svc.ReduceStock)
}

// CheckStock handles GET /api/products/{id}/stock/check. It reports whether
// the requested quantity can currently be fulfilled.
func (h *ProductHandlers) CheckStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	quantity := queryInt(r, "cantidad", 0)
	if quantity <= 0 {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_amount", Err: errors.New("cantidad must be a positive integer")})
		return
	}
	available, err := h.Svc.CheckStock(r.Context(), id, quantity)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"disponible": available})
}

// ApplyDiscount handles PUT /api/products/{id}/discount.
func (h *ProductHandlers) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	percent := queryFloatPtr(r, "descuento")
	if percent == nil || *percent <= 0 || *percent > 100 {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_discount", Err: errors.New("descuento must be between 0 and 100")})
		return
	}
	if err := h.Svc.ApplyDiscount(r.Context(), id, *percent); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activate handles PATCH /api/products/{id}/activate.
func (h *ProductHandlers) Activate(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.Activate)
}

// Deactivate handles PATCH /api/products/{id}/deactivate.
func (h *ProductHandlers) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.Deactivate)
}

// Units handles GET /api/products/units.
func (h *ProductHandlers) Units(w http.ResponseWriter, r *http.Request) {
	units, err := h.Svc.Units(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, units)
}

// Statistics handles GET /api/products/statistics.
func (h *ProductHandlers) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Statistics(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

func (h *ProductHandlers) list(w http.ResponseWriter, r *http.Request, op func(ctx context.Context) ([]model.Product, error)) {
	products, err := op(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, products)
}

func (h *ProductHandlers) adjustStock(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64, amount int) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	amount := queryInt(r, "cantidad", 0)
	if amount <= 0 {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_amount", Err: errors.New("cantidad must be a positive integer")})
		return
	}
	if err := op(r.Context(), id, amount); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandlers) toggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) error) {
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
