// Package core defines the gateway interfaces through which the console
// reaches the marketplace API. The HTTP adapter in internal/adapters/upstream
// provides the production implementations; tests substitute doubles.
package core

import (
	"context"

	"github.com/agroconecta/console/internal/domain/model"
)

// ClientGateway exposes the upstream client (buyer) resource.
type ClientGateway interface {
	Create(ctx context.Context, req model.CreateClientRequest) (*model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	Update(ctx context.Context, id int64, req model.UpdateClientRequest) (*model.Client, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Client, error)
	Search(ctx context.Context, q model.ClientSearch) ([]model.Client, error)
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	RecordInteraction(ctx context.Context, id int64) error
	MarketZones(ctx context.Context) ([]string, error)
	ClientTypes(ctx context.Context) ([]string, error)
	Statistics(ctx context.Context) (*model.ClientStatistics, error)
}

// ProductGateway exposes the upstream product resource.
type ProductGateway interface {
	Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Update(ctx context.Context, id int64, req model.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Product, error)
	ListAvailable(ctx context.Context) ([]model.Product, error)
	ListByProducer(ctx context.Context, producerID int64) ([]model.Product, error)
	ListLowStock(ctx context.Context, threshold int) ([]model.Product, error)
	ListOutOfStock(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, q model.ProductSearch) ([]model.Product, error)
	UpdatePrice(ctx context.Context, id int64, req model.UpdatePriceRequest) error
	UpdateStock(ctx context.Context, id int64, req model.UpdateStockRequest) error
	IncreaseStock(ctx context.Context, id int64, amount int) error
	ReduceStock(ctx context.Context, id int64, amount int) error
	CheckStock(ctx context.Context, id int64, quantity int) (bool, error)
	ApplyDiscount(ctx context.Context, id int64, percent float64) error
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	Units(ctx context.Context) ([]string, error)
	Statistics(ctx context.Context) (*model.ProductStatistics, error)
}

// OrderGateway exposes the upstream order resource. State transitions are
// validated server-side; the gateway only requests them.
type OrderGateway interface {
	Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	Update(ctx context.Context, id int64, req model.UpdateOrderRequest) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q model.OrderSearch) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, req model.UpdateOrderStatusRequest) error
	Confirm(ctx context.Context, id int64) error
	MarkInRoute(ctx context.Context, id int64) error
	MarkDelivered(ctx context.Context, id int64) error
	Summary(ctx context.Context) (*model.OrderSummary, error)
	Statistics(ctx context.Context) (*model.OrderStatistics, error)
}

// UserGateway exposes the upstream platform-account resource.
type UserGateway interface {
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.User, error)
	Search(ctx context.Context, q model.UserSearch) ([]model.User, error)
	ChangePassword(ctx context.Context, id int64, req model.ChangePasswordRequest) error
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (*model.UserStatistics, error)
}
