package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/agroconecta/console/internal/core"
	"github.com/agroconecta/console/internal/domain/model"
)

// UserGateway adapts the upstream /api/users resource.
type UserGateway struct {
	client *Client
}

var _ core.UserGateway = (*UserGateway)(nil)

// NewUserGateway creates the user resource gateway.
func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

const usersPath = "/api/users"

func (g *UserGateway) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	var out model.User
	if err := g.client.do(ctx, call{method: "POST", path: usersPath, body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *UserGateway) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var out model.User
	if err := g.client.do(ctx, call{method: "GET", path: idPath(usersPath, id), out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *UserGateway) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	var out model.User
	if err := g.client.do(ctx, call{method: "PUT", path: idPath(usersPath, id), body: req, out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *UserGateway) Delete(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "DELETE", path: idPath(usersPath, id)})
}

func (g *UserGateway) List(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := g.client.do(ctx, call{method: "GET", path: usersPath, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *UserGateway) Search(ctx context.Context, q model.UserSearch) ([]model.User, error) {
	query := url.Values{}
	if q.Name != "" {
		query.Set("nombre", q.Name)
	}
	if q.Email != "" {
		query.Set("email", q.Email)
	}
	if q.Role != "" {
		query.Set("rol", string(q.Role))
	}
	if q.Active != nil {
		query.Set("activo", strconv.FormatBool(*q.Active))
	}

	var out []model.User
	if err := g.client.do(ctx, call{method: "GET", path: usersPath + "/search", query: query, out: &out}); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *UserGateway) ChangePassword(ctx context.Context, id int64, req model.ChangePasswordRequest) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(usersPath, id) + "/password", body: req})
}

func (g *UserGateway) Activate(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(usersPath, id) + "/activate"})
}

func (g *UserGateway) Deactivate(ctx context.Context, id int64) error {
	return g.client.do(ctx, call{method: "PUT", path: idPath(usersPath, id) + "/deactivate"})
}

func (g *UserGateway) Statistics(ctx context.Context) (*model.UserStatistics, error) {
	var out model.UserStatistics
	if err := g.client.do(ctx, call{method: "GET", path: usersPath + "/statistics", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
