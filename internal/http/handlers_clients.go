package httpx

import (
	"context"
	"net/http"

	"github.com/agroconecta/console/internal/core"
	"github.com/agroconecta/console/internal/domain/model"
)

// ClientHandlers provides the HTTP surface for the client (buyer) resource.
type ClientHandlers struct {
	Svc core.ClientGateway
}

// Create handles POST /api/clients.
func (h *ClientHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateClientRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	client, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, client)
}

// Get handles GET /api/clients/{id}.
func (h *ClientHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	client, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, client)
}

// Update handles PUT /api/clients/{id}.
func (h *ClientHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateClientRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	client, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, client)
}

// Delete handles DELETE /api/clients/{id}.
func (h *ClientHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

// List handles GET /api/clients. Search filters are optional query params;
// with none present the full listing is returned.
func (h *ClientHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := model.ClientSearch{
		Name:       r.URL.Query().Get("nombre"),
		MarketZone: r.URL.Query().Get("mercadoZona"),
		ClientType: r.URL.Query().Get("tipoCliente"),
		OnlyActive: queryBoolPtr(r, "soloActivos"),
	}

	var (
		clients []model.Client
		err     error
	)
	if q.Name == "" && q.MarketZone == "" && q.ClientType == "" && q.OnlyActive == nil {
		clients, err = h.Svc.List(r.Context())
	} else {
		clients, err = h.Svc.Search(r.Context(), q)
	}
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, clients)
}

// Activate handles PATCH /api/clients/{id}/activate.
func (h *ClientHandlers) Activate(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.Activate)
}

// Deactivate handles PATCH /api/clients/{id}/deactivate.
func (h *ClientHandlers) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.Deactivate)
}

// RecordInteraction handles PATCH /api/clients/{id}/interaction.
func (h *ClientHandlers) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.RecordInteraction)
}

// MarketZones handles GET /api/clients/market-zones.
func (h *ClientHandlers) MarketZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Svc.MarketZones(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, zones)
}

// ClientTypes handles GET /api/clients/types.
func (h *ClientHandlers) ClientTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Svc.ClientTypes(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, types)
}

// Statistics handles GET /api/clients/statistics.
func (h *ClientHandlers) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Statistics(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

func (h *ClientHandlers) toggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) error) {
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
