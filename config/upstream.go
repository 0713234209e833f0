package config

import "time"

// UpstreamConfig contains the marketplace API client configuration.
type UpstreamConfig struct {
	// BaseURL is the marketplace API origin, e.g. "http://localhost:8081".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8081"`

	// Timeout bounds each upstream request end to end.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`

	// Login payload extraction expressions (JMESPath). The defaults
	// tolerate both response shapes the marketplace has shipped; override
	// only when the API changes contract again.
	LoginTokenExpr     string `env:"LOGIN_TOKEN_EXPR"`
	LoginIdentityExpr  string `env:"LOGIN_IDENTITY_EXPR"`
	LoginExpiresInExpr string `env:"LOGIN_EXPIRES_IN_EXPR"`
	LoginExpiresAtExpr string `env:"LOGIN_EXPIRES_AT_EXPR"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	if u.Timeout <= 0 {
		u.Timeout = 15 * time.Second
	}
}
