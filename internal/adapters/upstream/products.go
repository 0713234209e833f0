package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/agroconecta/console/internal/core"
	"github.com/agroconecta/console/internal/domain/model"
)

// ProductGateway adapts the upstream /api/products resource.
type ProductGateway struct {
	client *Client
}

var _ core.ProductGateway = (*ProductGateway)(nil)

// NewProductGateway creates the product resource gateway.
func NewProductGateway(client *Client) *ProductGateway {
	return &ProductGateway{client: client}
}

const productsPath = "/api/products"

func (g *ProductGateway) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	var out model.Product
	if err := g.client.do(ctx, call{method: "POST", path: productsPath, body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ProductGateway) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var out model.Product
	if err := g.client.do(ctx, call{method: "GET", path: idPath(productsPath, id), out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ProductGateway) Update(ctx context.Context, id int64, req model.UpdateProductRequest) (*model.Product, error) {
	var out model.Product
	if err := g.client.do(ctx, call{method: "PUT", path: idPath(productsPath, id), body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ProductGateway) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "DELETE", path: idPath(productsPath, id)})
}

func (g *ProductGateway) List(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := g.client.do(ctx, call{method: "GET", path: productsPath, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ProductGateway) ListAvailable(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := g.client.do(ctx, call{method: "GET", path: productsPath + "/available", out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ProductGateway) ListByProducer(ctx context.Context, producerID int64) ([]model.Product, error) {
	var out []model.Product
	if err := g.client.do(ctx, call{method: "GET", path: idPath(productsPath+"/producer", producerID), out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ProductGateway) ListLowStock(ctx context.Context, threshold int) ([]model.Product, error) {
	query := url.Values{}
	if threshold > 0 {
		query.Set("threshold", strconv.Itoa(threshold))
	}
	var out []model.Product
	if err := g.client.do(ctx, call{method: "GET", path: productsPath + "/low-stock", query: query, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ProductGateway) ListOutOfStock(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := g.client.do(ctx, call{method: "GET", path: productsPath + "/out-of-stock", out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ProductGateway) Search(ctx context.Context, q model.ProductSearch) ([]model.Product, error) {
	query := url.Values{}
	if q.ProducerID != nil {
		query.Set("productorId", strconv.FormatInt(*q.ProducerID, 10))
	}
	if q.Name != "" {
		query.Set("nombre", q.Name)
	}
	if q.MinPrice != nil {
		query.Set("precioMinimo", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		query.Set("precioMaximo", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Unit != "" {
		query.Set("unidadMedida", q.Unit)
	}
	if q.OnlyAvailable != nil {
		query.Set("soloDisponibles", strconv.FormatBool(*q.OnlyAvailable))
	}

	var out []model.Product
	if err := g.client.do(ctx, call{method: "GET", path: productsPath + "/search", query: query, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ProductGateway) UpdatePrice(ctx context.Context, id int64, req model.UpdatePriceRequest) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(productsPath, id) + "/price", body: req})
}

func (g *ProductGateway) UpdateStock(ctx context.Context, id int64, req model.UpdateStockRequest) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(productsPath, id) + "/stock", body: req})
}

func (g *ProductGateway) IncreaseStock(ctx context.Context, id int64, amount int) error {
	query := url.Values{"cantidad": []string{strconv.Itoa(amount)}}
	return g.client.do(ctx, call{method: "PUT", path: idPath(productsPath, id) + "/stock/increase", query: query})
}

func (g *ProductGateway) ReduceStock(ctx context.Context, id int64, amount int) error {
	query := url.Values{"cantidad": []string{strconv.Itoa(amount)}}
	return g.client.do(ctx, call{method: "PUT", path: idPath(productsPath, id) + "/stock/reduce", query: query})
}

func (g *ProductGateway) CheckStock(ctx context.Context, id int64, quantity int) (bool, error) {
	query := url.Values{"cantidad": []string{strconv.Itoa(quantity)}}
	var out bool
	if err := g.client.do(ctx, call{method: "GET", path: idPath(productsPath, id) + "/stock/check", query: query, out: &out}); err != nil {
		return false, err
	}
	return out, nil
}

func (g *ProductGateway) ApplyDiscount(ctx context.Context, id int64, percent float64) error {
	query := url.Values{"descuento": []string{strconv.FormatFloat(percent, 'f', -1, 64)}}
	return g.client.do(ctx, call{method: "PUT", path: idPath(productsPath, id) + "/discount", query: query})
}

func (g *ProductGateway) Activate(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(productsPath, id) + "/activate"})
}

func (g *ProductGateway) Deactivate(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(productsPath, id) + "/deactivate"})
}

func (g *ProductGateway) Units(ctx context.Context) ([]string, error) {
	var out []string
	if err := g.client.do(ctx, call{method: "GET", path: productsPath + "/units", out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ProductGateway) Statistics(ctx context.Context) (*model.ProductStatistics, error) {
	var out model.ProductStatistics
	if err := g.client.do(ctx, call{method: "GET", path: productsPath + "/statistics", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
