package upstream

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/agroconecta/console/internal/core"
	"github.com/agroconecta/console/internal/domain/model"
)

// OrderGateway adapts the upstream /api/orders resource.
type OrderGateway struct {
	client *Client
}

var _ core.OrderGateway = (*OrderGateway)(nil)

// NewOrderGateway creates the order resource gateway.
func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

const ordersPath = "/api/orders"

func (g *OrderGateway) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	var out model.Order
	if err := g.client.do(ctx, call{method: "POST", path: ordersPath, body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *OrderGateway) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var out model.Order
	if err := g.client.do(ctx, call{method: "GET", path: idPath(ordersPath, id), out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *OrderGateway) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	var out model.Order
	if err := g.client.do(ctx, call{method: "GET", path: ordersPath + "/number/" + url.PathEscape(number), out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *OrderGateway) Update(ctx context.Context, id int64, req model.UpdateOrderRequest) (*model.Order, error) {
	var out model.Order
	if err := g.client.do(ctx, call{method: "PUT", path: idPath(ordersPath, id), body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *OrderGateway) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "DELETE", path: idPath(ordersPath, id)})
}

func (g *OrderGateway) List(ctx context.Context, q model.OrderSearch) ([]model.Order, error) {
	query := url.Values{}
	if q.ClientID != nil {
		query.Set("clienteId", strconv.FormatInt(*q.ClientID, 10))
	}
	if q.Status != "" {
		query.Set("estado", string(q.Status))
	}
	if q.DeliveryZone != "" {
		query.Set("zonaEntrega", q.DeliveryZone)
	}
	if q.From != nil {
		query.Set("fechaInicio", q.From.Format(time.RFC3339))
	}
	if q.To != nil {
		query.Set("fechaFin", q.To.Format(time.RFC3339))
	}

	var out []model.Order
	if err := g.client.do(ctx, call{method: "GET", path: ordersPath, query: query, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *OrderGateway) UpdateStatus(ctx context.Context, id int64, req model.UpdateOrderStatusRequest) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(ordersPath, id) + "/status", body: req})
}

func (g *OrderGateway) Confirm(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(ordersPath, id) + "/confirm"})
}

func (g *OrderGateway) MarkInRoute(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(ordersPath, id) + "/mark-in-route"})
}

func (g *OrderGateway) MarkDelivered(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(ordersPath, id) + "/mark-delivered"})
}

func (g *OrderGateway) Summary(ctx context.Context) (*model.OrderSummary, error) {
	var out model.OrderSummary
	if err := g.client.do(ctx, call{method: "GET", path: ordersPath + "/stats/summary", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *OrderGateway) Statistics(ctx context.Context) (*model.OrderStatistics, error) {
	var out model.OrderStatistics
	if err := g.client.do(ctx, call{method: "GET", path: ordersPath + "/statistics", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
