package httpx

import (
	"context"
	"net/http"

	"github.com/agroconecta/console/internal/service"
)

// DashboardAPI is the slice of the dashboard service the handlers need.
type DashboardAPI interface {
	Summary(ctx context.Context) (*service.DashboardSummary, error)
}

// DashboardHandlers serves the aggregated console dashboard.
type DashboardHandlers struct {
	Svc DashboardAPI
}

// Summary handles GET /api/dashboard/summary.
func (h *DashboardHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Svc.Summary(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, summary)
}
