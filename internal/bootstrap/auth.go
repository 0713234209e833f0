package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/agroconecta/console/config"
	"github.com/agroconecta/console/internal/adapters/authroles"
	"github.com/agroconecta/console/internal/adapters/memstore"
	"github.com/agroconecta/console/internal/adapters/mockauth"
	"github.com/agroconecta/console/internal/adapters/oidc"
	"github.com/agroconecta/console/internal/adapters/pgstore"
	"github.com/agroconecta/console/internal/adapters/redisstore"
	"github.com/agroconecta/console/internal/adapters/upstream"
	"github.com/agroconecta/console/internal/ports"
	"github.com/agroconecta/console/internal/service"
)

// sessionKeyPrefix namespaces console sessions in a shared Redis.
const sessionKeyPrefix = "session:"

// BuildSessionStore selects the session store backend. The Redis client or
// Postgres pool must already be connected for their respective kinds.
//
//nolint:ireturn // the store kind is a runtime decision.
func BuildSessionStore(
	ctx context.Context,
	kind config.SessionStoreKind,
	redisClient redis.UniversalClient,
	pool *pgxpool.Pool,
) (ports.SessionStore, error) {
	switch kind {
	case config.SessionStoreRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("session store %q requires a redis connection", kind)
		}
		return redisstore.NewSessionStoreWithPrefix(redisClient, sessionKeyPrefix), nil

	case config.SessionStorePostgres:
		if pool == nil {
			return nil, fmt.Errorf("session store %q requires a postgres connection", kind)
		}
		store := pgstore.NewSessionStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("ensure session schema: %w", err)
		}
		return store, nil

	case config.SessionStoreMemory:
		return memstore.NewSessionStore(), nil

	default:
		return nil, fmt.Errorf("unknown session store kind %q", kind)
	}
}

// AuthServiceDeps groups the dependencies for BuildAuthService.
type AuthServiceDeps struct {
	Config   config.AuthConfig
	Upstream *upstream.Client // required for AuthModeUpstream
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// BuildAuthService creates the auth service for the configured mode. The
// console cannot run without one; construction failures are returned, not
// downgraded.
func BuildAuthService(cfg AuthServiceDeps, upCfg config.UpstreamConfig) (*service.AuthService, error) {
	provider, err := buildAuthProvider(cfg, upCfg)
	if err != nil {
		return nil, err
	}

	opts := service.AuthServiceOptions{
		Provider: provider,
		Sessions: cfg.Sessions,
		Logger:   cfg.Logger,
	}

	if cfg.Config.SSO.Enabled() {
		sso, ssoErr := oidc.NewProvider(oidc.ProviderConfig{
			ClientID:     cfg.Config.SSO.ClientID,
			ClientSecret: cfg.Config.SSO.ClientSecret,
			RedirectURL:  cfg.Config.SSO.RedirectURL,
			Scope:        cfg.Config.SSO.Scope,
			DiscoveryURL: cfg.Config.SSO.DiscoveryURL,
		})
		if ssoErr != nil {
			return nil, fmt.Errorf("create OIDC provider: %w", ssoErr)
		}
		opts.SSO = sso
		opts.Roles = authroles.StaticRoleMapper{AdminGroup: cfg.Config.AdminGroup}
	}

	return service.NewAuthService(opts), nil
}

//nolint:ireturn // the provider is chosen at runtime by AUTH_MODE.
func buildAuthProvider(cfg AuthServiceDeps, upCfg config.UpstreamConfig) (ports.AuthProvider, error) {
	switch cfg.Config.Mode {
	case config.AuthModeMock:
		if cfg.Logger != nil {
			cfg.Logger.Warn("mock auth enabled; do not use in production")
		}
		return mockauth.NewProvider(), nil

	case config.AuthModeUpstream:
		if cfg.Upstream == nil {
			return nil, fmt.Errorf("auth mode %q requires the upstream client", cfg.Config.Mode)
		}
		return upstream.NewAuthProvider(cfg.Upstream, upstream.LoginMapping{
			TokenExpr:     upCfg.LoginTokenExpr,
			IdentityExpr:  upCfg.LoginIdentityExpr,
			ExpiresInExpr: upCfg.LoginExpiresInExpr,
			ExpiresAtExpr: upCfg.LoginExpiresAtExpr,
		})

	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Config.Mode)
	}
}
