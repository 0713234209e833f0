package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agroconecta/console/internal/adapters/memstore"
	"github.com/agroconecta/console/internal/adapters/mockauth"
	"github.com/agroconecta/console/internal/domain/model"
	"github.com/agroconecta/console/internal/mocks"
	"github.com/agroconecta/console/internal/service"
)

// newTestRouter wires the full router against the seeded in-process auth
// provider and gomock gateways, exercising the same stack as production
// minus the marketplace API.
func newTestRouter(t *testing.T) (http.Handler, *routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		clients:  mocks.NewMockClientGateway(ctrl),
		products: mocks.NewMockProductGateway(ctrl),
		orders:   mocks.NewMockOrderGateway(ctrl),
		users:    mocks.NewMockUserGateway(ctrl),
	}
	auth := service.NewAuthService(service.AuthServiceOptions{
		Provider: mockauth.NewProvider(),
		Sessions: memstore.NewSessionStore(),
	})
	router := NewRouter(RouterServices{
		Auth:      auth,
		Dashboard: service.NewDashboardService(m.clients, m.products, m.orders, m.users, nil),
		Clients:   m.clients,
		Products:  m.products,
		Orders:    m.orders,
		Users:     m.users,
	})
	return router, m
}

type routerMocks struct {
	clients  *mocks.MockClientGateway
	products *mocks.MockProductGateway
	orders   *mocks.MockOrderGateway
	users    *mocks.MockUserGateway
}

// login authenticates against the seeded provider and returns the bearer token.
func login(t *testing.T, router http.Handler, email, password string) string {
	t.Helper()
	body := `{"email":"` + email + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, LoginPath, decodeBody(t, w)["redirectTo"])
}

func TestRouter_ProducerCanReachClients(t *testing.T) {
	router, m := newTestRouter(t)
	m.clients.EXPECT().List(gomock.Any()).Return([]model.Client{}, nil)

	token := login(t, router, "productor@gmail.com", "123456")

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ProducerBlockedFromUsers(t *testing.T) {
	router, _ := newTestRouter(t)

	token := login(t, router, "productor@gmail.com", "123456")

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, UnauthorizedPath, decodeBody(t, w)["redirectTo"])
}

func TestRouter_AdminCanReachUsers(t *testing.T) {
	router, m := newTestRouter(t)
	m.users.EXPECT().List(gomock.Any()).Return([]model.User{}, nil)

	token := login(t, router, "admin@agroconecta.com", "123456")

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_DashboardIsAdminOnly(t *testing.T) {
	router, m := newTestRouter(t)
	m.clients.EXPECT().Statistics(gomock.Any()).Return(&model.ClientStatistics{Total: 4}, nil).AnyTimes()
	m.products.EXPECT().Statistics(gomock.Any()).Return(&model.ProductStatistics{}, nil).AnyTimes()
	m.orders.EXPECT().Statistics(gomock.Any()).Return(&model.OrderStatistics{}, nil).AnyTimes()
	m.users.EXPECT().Statistics(gomock.Any()).Return(&model.UserStatistics{}, nil).AnyTimes()

	producerToken := login(t, router, "productor@gmail.com", "123456")
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req.Header.Set("Authorization", "Bearer "+producerToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := login(t, router, "admin@agroconecta.com", "123456")
	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Clients *model.ClientStatistics `json:"clientes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.NotNil(t, summary.Clients)
	assert.Equal(t, 4, summary.Clients.Total)
}

func TestRouter_LogoutInvalidatesToken(t *testing.T) {
	router, _ := newTestRouter(t)

	token := login(t, router, "productor@gmail.com", "123456")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_SSODisabledWithoutProvider(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/sso/login", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "sso_disabled", decodeBody(t, w)["error"])
}
