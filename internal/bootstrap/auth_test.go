package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroconecta/console/config"
	"github.com/agroconecta/console/internal/adapters/memstore"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildSessionStore_Memory(t *testing.T) {
	store, err := BuildSessionStore(context.Background(), config.SessionStoreMemory, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestBuildSessionStore_RedisRequiresClient(t *testing.T) {
	_, err := BuildSessionStore(context.Background(), config.SessionStoreRedis, nil, nil)
	assert.Error(t, err)
}

func TestBuildSessionStore_PostgresRequiresPool(t *testing.T) {
	_, err := BuildSessionStore(context.Background(), config.SessionStorePostgres, nil, nil)
	assert.Error(t, err)
}

func TestBuildSessionStore_UnknownKind(t *testing.T) {
	_, err := BuildSessionStore(context.Background(), config.SessionStoreKind("etcd"), nil, nil)
	assert.Error(t, err)
}

func TestBuildAuthService_MockMode(t *testing.T) {
	svc, err := BuildAuthService(AuthServiceDeps{
		Config:   config.AuthConfig{Mode: config.AuthModeMock},
		Sessions: memstore.NewSessionStore(),
		Logger:   discardLogger(),
	}, config.UpstreamConfig{})

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.False(t, svc.SSOEnabled())
}

func TestBuildAuthService_UpstreamModeRequiresClient(t *testing.T) {
	_, err := BuildAuthService(AuthServiceDeps{
		Config:   config.AuthConfig{Mode: config.AuthModeUpstream},
		Sessions: memstore.NewSessionStore(),
		Logger:   discardLogger(),
	}, config.UpstreamConfig{})

	assert.Error(t, err)
}

func TestBuildAuthService_UnknownMode(t *testing.T) {
	_, err := BuildAuthService(AuthServiceDeps{
		Config:   config.AuthConfig{Mode: config.AuthMode("saml")},
		Sessions: memstore.NewSessionStore(),
		Logger:   discardLogger(),
	}, config.UpstreamConfig{})

	assert.Error(t, err)
}

func TestBuildServices_MockAuth(t *testing.T) {
	cfg := config.AppConfig{
		Upstream: config.UpstreamConfig{BaseURL: "http://localhost:8081"},
		Auth:     config.AuthConfig{Mode: config.AuthModeMock},
	}

	services, err := BuildServices(BuildServicesDeps{
		Config: cfg,
		Auth: AuthServiceDeps{
			Config:   cfg.Auth,
			Sessions: memstore.NewSessionStore(),
			Logger:   discardLogger(),
		},
		Logger: discardLogger(),
	})

	require.NoError(t, err)
	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Dashboard)
	assert.NotNil(t, services.Clients)
	assert.NotNil(t, services.Products)
	assert.NotNil(t, services.Orders)
	assert.NotNil(t, services.Users)
}

func TestBuildServices_InvalidUpstreamURL(t *testing.T) {
	cfg := config.AppConfig{
		Upstream: config.UpstreamConfig{BaseURL: "ftp://nope"},
		Auth:     config.AuthConfig{Mode: config.AuthModeMock},
	}

	_, err := BuildServices(BuildServicesDeps{
		Config: cfg,
		Auth: AuthServiceDeps{
			Config:   cfg.Auth,
			Sessions: memstore.NewSessionStore(),
			Logger:   discardLogger(),
		},
		Logger: discardLogger(),
	})

	assert.Error(t, err)
}
