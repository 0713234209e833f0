package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/agroconecta/console/config"
	"github.com/agroconecta/console/internal/adapters/upstream"
	"github.com/agroconecta/console/internal/service"
)

// ServiceContainer holds the constructed services and gateways the HTTP
// layer consumes.
type ServiceContainer struct {
	Auth      *service.AuthService
	Dashboard *service.DashboardService

	Clients  *upstream.ClientGateway
	Products *upstream.ProductGateway
	Orders   *upstream.OrderGateway
	Users    *upstream.UserGateway
}

// BuildServicesDeps groups the external dependencies BuildServices needs.
type BuildServicesDeps struct {
	Config config.AppConfig
	Auth   AuthServiceDeps // Sessions must be set; Upstream is filled here
	Logger *slog.Logger
}

// BuildServices constructs the upstream client, the resource gateways and
// the services on top of them.
func BuildServices(deps BuildServicesDeps) (ServiceContainer, error) {
	client, err := upstream.NewClient(upstream.Config{
		BaseURL: deps.Config.Upstream.BaseURL,
		Timeout: deps.Config.Upstream.Timeout,
	}, deps.Logger)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create upstream client: %w", err)
	}

	deps.Auth.Upstream = client
	auth, err := BuildAuthService(deps.Auth, deps.Config.Upstream)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
	}

	clients := upstream.NewClientGateway(client)
	products := upstream.NewProductGateway(client)
	orders := upstream.NewOrderGateway(client)
	users := upstream.NewUserGateway(client)

	return ServiceContainer{
		Auth:      auth,
		Dashboard: service.NewDashboardService(clients, products, orders, users, deps.Logger),
		Clients:   clients,
		Products:  products,
		Orders:    orders,
		Users:     users,
	}, nil
}
