package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/agroconecta/console/internal/core"
	"github.com/agroconecta/console/internal/domain/model"
)

// ClientGateway adapts the upstream /api/clients resource.
type ClientGateway struct {
	client *Client
}

var _ core.ClientGateway = (*ClientGateway)(nil)

// NewClientGateway creates the client resource gateway.
func NewClientGateway(client *Client) *ClientGateway {
	return &ClientGateway{client: client}
}

const clientsPath = "/api/clients"

func (g *ClientGateway) Create(ctx context.Context, req model.CreateClientRequest) (*model.Client, error) {
	var out model.Client
	if err := g.client.do(ctx, call{method: "POST", path: clientsPath, body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ClientGateway) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	var out model.Client
	if err := g.client.do(ctx, call{method: "GET", path: idPath(clientsPath, id), out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ClientGateway) Update(ctx context.Context, id int64, req model.UpdateClientRequest) (*model.Client, error) {
	var out model.Client
	if err := g.client.do(ctx, call{method: "PUT", path: idPath(clientsPath, id), body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ClientGateway) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "DELETE", path: idPath(clientsPath, id)})
}

func (g *ClientGateway) List(ctx context.Context) ([]model.Client, error) {
	var out []model.Client
	if err := g.client.do(ctx, call{method: "GET", path: clientsPath, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ClientGateway) Search(ctx context.Context, q model.ClientSearch) ([]model.Client, error) {
	query := url.Values{}
	if q.Name != "" {
		query.Set("nombre", q.Name)
	}
	if q.MarketZone != "" {
		query.Set("mercadoZona", q.MarketZone)
	}
	if q.ClientType != "" {
		query.Set("tipoCliente", q.ClientType)
	}
	if q.OnlyActive != nil {
		query.Set("soloActivos", strconv.FormatBool(*q.OnlyActive))
	}

	var out []model.Client
	if err := g.client.do(ctx, call{method: "GET", path: clientsPath + "/search", query: query, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ClientGateway) Activate(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(clientsPath, id) + "/activate"})
}

func (g *ClientGateway) Deactivate(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(clientsPath, id) + "/deactivate"})
}

func (g *ClientGateway) RecordInteraction(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "POST", path: idPath(clientsPath, id) + "/interaction"})
}

func (g *ClientGateway) MarketZones(ctx context.Context) ([]string, error) {
	var out []string
	if err := g.client.do(ctx, call{method: "GET", path: clientsPath + "/mercados", out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ClientGateway) ClientTypes(ctx context.Context) ([]string, error) {
	var out []string
	if err := g.client.do(ctx, call{method: "GET", path: clientsPath + "/tipos", out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ClientGateway) Statistics(ctx context.Context) (*model.ClientStatistics, error) {
	var out model.ClientStatistics
	if err := g.client.do(ctx, call{method: "GET", path: clientsPath + "/statistics", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
