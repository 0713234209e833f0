package httpx

import (
	"log/slog"
	"net/http"

	"github.com/agroconecta/console/internal/core"
	domainauth "github.com/agroconecta/console/internal/domain/auth"
	"github.com/agroconecta/console/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Dashboard DashboardAPI
	Clients   core.ClientGateway
	Products  core.ProductGateway
	Orders    core.OrderGateway
	Users     core.UserGateway

	CookieDomain string
	Logger       *slog.Logger // Logger for request and HTTP errors (optional)
}

// NewRouter creates and configures the console HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain, Logger: services.Logger}

	registerAuthRoutes(mux, authHandlers)
	registerClientRoutes(mux, &ClientHandlers{Svc: services.Clients}, services.Auth)
	registerProductRoutes(mux, &ProductHandlers{Svc: services.Products}, services.Auth)
	registerOrderRoutes(mux, &OrderHandlers{Svc: services.Orders}, services.Auth)
	registerUserRoutes(mux, &UserHandlers{Svc: services.Users}, services.Auth)
	if services.Dashboard != nil {
		dashboardHandlers := &DashboardHandlers{Svc: services.Dashboard}
		mux.Handle("GET /api/dashboard/summary", adminOnly(services.Auth)(http.HandlerFunc(dashboardHandlers.Summary)))
	}
	mux.HandleFunc("GET /healthz", Health)
	mux.HandleFunc("HEAD /healthz", Health)

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Recover(logger)(Logging(logger)(mux))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/status", h.Status)
	mux.HandleFunc("GET /auth/sso/login", h.SSOLogin)
	mux.HandleFunc("GET /auth/sso/callback", h.SSOCallback)
}

func registerClientRoutes(mux *http.ServeMux, h *ClientHandlers, auth *service.AuthService) {
	authed := authenticated(auth)

	registerCRUD(mux, crudRoutes{
		Base:       "/api/clients",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.Get,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: authed,
	})

	mux.Handle("PATCH /api/clients/{id}/activate", authed(http.HandlerFunc(h.Activate)))
	mux.Handle("PATCH /api/clients/{id}/deactivate", authed(http.HandlerFunc(h.Deactivate)))
	mux.Handle("PATCH /api/clients/{id}/interaction", authed(http.HandlerFunc(h.RecordInteraction)))
	mux.Handle("GET /api/clients/market-zones", authed(http.HandlerFunc(h.MarketZones)))
	mux.Handle("GET /api/clients/types", authed(http.HandlerFunc(h.ClientTypes)))
	mux.Handle("GET /api/clients/statistics", authed(http.HandlerFunc(h.Statistics)))
}

func registerProductRoutes(mux *http.ServeMux, h *ProductHandlers, auth *service.AuthService) {
	authed := authenticated(auth)

	registerCRUD(mux, crudRoutes{
		Base:       "/api/products",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.Get,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: authed,
	})

	mux.Handle("GET /api/products/available", authed(http.HandlerFunc(h.ListAvailable)))
	mux.Handle("GET /api/products/producer/{id}", authed(http.HandlerFunc(h.ListByProducer)))
	mux.Handle("GET /api/products/low-stock", authed(http.HandlerFunc(h.ListLowStock)))
	mux.Handle("GET /api/products/out-of-stock", authed(http.HandlerFunc(h.ListOutOfStock)))
	mux.Handle("GET /api/products/units", authed(http.HandlerFunc(h.Units)))
	mux.Handle("GET /api/products/statistics", authed(http.HandlerFunc(h.Statistics)))
	mux.Handle("PUT /api/products/{id}/price", authed(http.HandlerFunc(h.UpdatePrice)))
	mux.Handle("PUT /api/products/{id}/stock", authed(http.HandlerFunc(h.UpdateStock)))
	mux.Handle("PUT /api/products/{id}/stock/increase", authed(http.HandlerFunc(h.IncreaseStock)))
	mux.Handle("PUT /api/products/{id}/stock/reduce", authed(http.HandlerFunc(h.ReduceStock)))
	mux.Handle("GET /api/products/{id}/stock/check", authed(http.HandlerFunc(h.CheckStock)))
	mux.Handle("PUT /api/products/{id}/discount", authed(http.HandlerFunc(h.ApplyDiscount)))
	mux.Handle("PATCH /api/products/{id}/activate", authed(http.HandlerFunc(h.Activate)))
	mux.Handle("PATCH /api/products/{id}/deactivate", authed(http.HandlerFunc(h.Deactivate)))
}

func registerOrderRoutes(mux *http.ServeMux, h *OrderHandlers, auth *service.AuthService) {
	authed := authenticated(auth)

	registerCRUD(mux, crudRoutes{
		Base:       "/api/orders",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.Get,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: authed,
	})

	mux.Handle("GET /api/orders/number/{number}", authed(http.HandlerFunc(h.GetByNumber)))
	mux.Handle("GET /api/orders/summary", authed(http.HandlerFunc(h.Summary)))
	mux.Handle("GET /api/orders/statistics", authed(http.HandlerFunc(h.Statistics)))
	mux.Handle("PATCH /api/orders/{id}/status", authed(http.HandlerFunc(h.UpdateStatus)))
	mux.Handle("PATCH /api/orders/{id}/confirm", authed(http.HandlerFunc(h.Confirm)))
	mux.Handle("PATCH /api/orders/{id}/in-route", authed(http.HandlerFunc(h.MarkInRoute)))
	mux.Handle("PATCH /api/orders/{id}/delivered", authed(http.HandlerFunc(h.MarkDelivered)))
}

func registerUserRoutes(mux *http.ServeMux, h *UserHandlers, auth *service.AuthService) {
	admin := adminOnly(auth)

	registerCRUD(mux, crudRoutes{
		Base:       "/api/users",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.Get,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: admin,
	})

	mux.Handle("PUT /api/users/{id}/password", admin(http.HandlerFunc(h.ChangePassword)))
	mux.Handle("PATCH /api/users/{id}/activate", admin(http.HandlerFunc(h.Activate)))
	mux.Handle("PATCH /api/users/{id}/deactivate", admin(http.HandlerFunc(h.Deactivate)))
	mux.Handle("GET /api/users/statistics", admin(http.HandlerFunc(h.Statistics)))
}

// authenticated admits any valid session. Nil-safe so partial wiring in tests
// does not panic.
func authenticated(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		if auth != nil {
			return RequireAuth(auth)(h)
		}
		return h
	}
}

// adminOnly admits only administrator sessions.
func adminOnly(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		if auth != nil {
			return RequireRole(auth, domainauth.RoleAdministrator)(h)
		}
		return h
	}
}

type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
