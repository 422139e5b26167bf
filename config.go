package portkey

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/fatih/structs"
)

// Metadata is attached to requests for filtering and analytics on the
// gateway.
//
// The special key `_user` identifies the end user a request was made on
// behalf of.
type Metadata map[string]string

func (m Metadata) encode() (string, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return "", errors.Wrap(err, "could not encode request metadata")
	}

	return string(payload), nil
}

type (
	StrategyMode string
	CacheMode    string
)

const (
	StrategySingle      StrategyMode = "single"
	StrategyFallback    StrategyMode = "fallback"
	StrategyLoadbalance StrategyMode = "loadbalance"
)

const (
	CacheSimple   CacheMode = "simple"
	CacheSemantic CacheMode = "semantic"
)

// GatewayConfig is a declarative routing document interpreted by the
// gateway.
//
// It mirrors the JSON config Portkey accepts in its config header: a routing
// strategy over weighted targets, with optional retry and cache sections.
// Everything described here is executed by the gateway, never locally.
type GatewayConfig struct {
	Strategy   Strategy `structs:"strategy,omitempty"`
	Provider   string   `structs:"provider,omitempty"`
	VirtualKey string   `structs:"virtual_key,omitempty"`
	Targets    []Target `structs:"targets,omitempty"`
	Retry      Retry    `structs:"retry,omitempty"`
	Cache      Cache    `structs:"cache,omitempty"`
}

// Strategy selects how the gateway spreads requests over the configured
// targets.
type Strategy struct {
	Mode          StrategyMode `structs:"mode"`
	OnStatusCodes []int        `structs:"on_status_codes,omitempty"`
}

// Target is one provider destination in a routing strategy.
type Target struct {
	Provider       string         `structs:"provider,omitempty"`
	VirtualKey     string         `structs:"virtual_key,omitempty"`
	ApiKey         string         `structs:"api_key,omitempty"`
	Weight         float64        `structs:"weight,omitempty"`
	OverrideParams map[string]any `structs:"override_params,omitempty"`
}

// Retry makes the gateway retry upstream calls on the given status codes.
type Retry struct {
	Attempts      int   `structs:"attempts"`
	OnStatusCodes []int `structs:"on_status_codes,omitempty"`
}

// Cache enables the gateway response cache.
type Cache struct {
	Mode   CacheMode `structs:"mode"`
	MaxAge int       `structs:"max_age,omitempty"`
}

func (cfg GatewayConfig) encode() (string, error) {
	payload, err := json.Marshal(structs.Map(cfg))
	if err != nil {
		return "", errors.Wrap(err, "could not encode gateway config")
	}

	return string(payload), nil
}
