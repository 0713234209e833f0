package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/agroconecta/console/internal/core"
	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/domain/model"
)

// UserHandlers provides the HTTP surface for platform accounts. Every route
// in this group is administrator-only; the guard enforces that before the
// handler runs.
type UserHandlers struct {
	Svc core.UserGateway
}

// Create handles POST /api/users.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	user, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

// Get handles GET /api/users/{id}.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Update handles PUT /api/users/{id}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.UpdateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	user, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

// List handles GET /api/users. Search filters are optional query params.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := model.UserSearch{
		Name:   r.URL.Query().Get("nombre"),
		Email:  r.URL.Query().Get("email"),
		Role:   domainauth.Role(r.URL.Query().Get("rol")),
		Active: queryBoolPtr(r, "activo"),
	}

	var (
		users []model.User
		err   error
	)
	if q.Name == "" && q.Email == "" && q.Role == "" && q.Active == nil {
		users, err = h.Svc.List(r.Context())
	} else {
		users, err = h.Svc.Search(r.Context(), q)
	}
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

// ChangePassword handles PUT /api/users/{id}/password.
func (h *UserHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req model.ChangePasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.NewPassword == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_password", Err: errors.New("newPassword is required")})
		return
	}
	if err := h.Svc.ChangePassword(r.Context(), id, req); err != nil {
		WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activate handles PATCH /api/users/{id}/activate.
func (h *UserHandlers) Activate(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.Activate)
}

// Deactivate handles PATCH /api/users/{id}/deactivate.
func (h *UserHandlers) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Svc.Deactivate)
}

// Statistics handles GET /api/users/statistics.
func (h *UserHandlers) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Statistics(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

func (h *UserHandlers) toggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) error) {
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
