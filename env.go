package portkey

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

type envConfig struct {
	ApiKey     string `env:"PORTKEY_API_KEY,required,notEmpty"`
	VirtualKey string `env:"PORTKEY_VIRTUAL_KEY"`
	BaseUrl    string `env:"PORTKEY_BASE_URL"`
}

// FromEnv creates a client handle from PORTKEY_* environment variables.
//
// PORTKEY_API_KEY is required. PORTKEY_VIRTUAL_KEY can be left unset when
// routing with WithProvider or a gateway config instead, and
// PORTKEY_BASE_URL overrides the default gateway endpoint. Options are
// applied after the environment is read, so they take precedence.
func FromEnv(opts ...Opt) (*Client, error) {
	var cfg envConfig

	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not read Portkey environment")
	}

	opts = append([]Opt{WithBaseUrl(lo.CoalesceOrEmpty(cfg.BaseUrl, BaseUrl))}, opts...)

	return New(cfg.ApiKey, cfg.VirtualKey, opts...)
}
