package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agroconecta/console/internal/core"
	"github.com/agroconecta/console/internal/domain/model"
)

// statisticsTimeout bounds the whole dashboard fan-out.
const statisticsTimeout = 10 * time.Second

// DashboardSummary aggregates the per-resource statistics the admin
// dashboard renders.
type DashboardSummary struct {
	Clients  *model.ClientStatistics  `json:"clientes"`
	Products *model.ProductStatistics `json:"productos"`
	Orders   *model.OrderStatistics   `json:"pedidos"`
	Users    *model.UserStatistics    `json:"usuarios"`
}

// DashboardService fans out to the four resource statistics endpoints and
// assembles the admin dashboard summary.
type DashboardService struct {
	clients  core.ClientGateway
	products core.ProductGateway
	orders   core.OrderGateway
	users    core.UserGateway
	logger   *slog.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(clients core.ClientGateway, products core.ProductGateway, orders core.OrderGateway, users core.UserGateway, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		clients:  clients,
		products: products,
		orders:   orders,
		users:    users,
		logger:   logger,
	}
}

// Summary fetches the four statistics concurrently. The first failure
// cancels the remaining fetches and is returned as is.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, statisticsTimeout)
	defer cancel()

	var summary DashboardSummary
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.clients.Statistics(ctx)
		summary.Clients = stats
		return err
	})
	g.Go(func() error {
		stats, err := s.products.Statistics(ctx)
		summary.Products = stats
		return err
	})
	g.Go(func() error {
		stats, err := s.orders.Statistics(ctx)
		summary.Orders = stats
		return err
	})
	g.Go(func() error {
		stats, err := s.users.Statistics(ctx)
		summary.Users = stats
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "dashboard summary", slog.String("error", err.Error()))
		return nil, err
	}
	return &summary, nil
}
