package portkey

import "net/http"

// Opt configures a Client before the delegated client is built.
type Opt func(*Client)

// WithBaseUrl points the handle at a different gateway deployment, such as a
// self-hosted one.
//
// If not specified, will use the hosted Portkey gateway.
func WithBaseUrl(url string) Opt {
	return func(c *Client) {
		c.baseUrl = url
	}
}

// WithHttpClient sets the *http.Client used by the delegated client.
func WithHttpClient(client *http.Client) Opt {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithProvider routes requests to a named provider directly, without a
// virtual key.
//
// The upstream provider credential is supplied with WithProviderKey.
func WithProvider(name string) Opt {
	return func(c *Client) {
		c.provider = name
	}
}

// WithProviderKey sets the upstream provider API key, forwarded by the
// gateway as a bearer token when routing with WithProvider.
func WithProviderKey(key string) Opt {
	return func(c *Client) {
		c.providerKey = key
	}
}

// WithConfig references a gateway config saved on Portkey by its ID.
func WithConfig(id string) Opt {
	return func(c *Client) {
		c.configId = id
	}
}

// WithGatewayConfig attaches an inline gateway config to every request.
//
// Takes precedence over WithConfig when both are set.
func WithGatewayConfig(cfg GatewayConfig) Opt {
	return func(c *Client) {
		c.gatewayConfig = &cfg
	}
}

// WithTraceId groups all requests made through the handle under a single
// trace on the gateway.
func WithTraceId(id string) Opt {
	return func(c *Client) {
		c.traceId = id
	}
}

// WithMetadata attaches searchable metadata to every request.
func WithMetadata(metadata Metadata) Opt {
	return func(c *Client) {
		c.metadata = metadata
	}
}

// WithCustomHost forwards requests to a custom provider endpoint, for
// providers exposing an OpenAI-compatible API at a non-standard location.
func WithCustomHost(url string) Opt {
	return func(c *Client) {
		c.customHost = url
	}
}

// WithCacheNamespace partitions the gateway cache for this handle.
func WithCacheNamespace(namespace string) Opt {
	return func(c *Client) {
		c.cacheNamespace = namespace
	}
}

// WithCacheForceRefresh makes the gateway bypass its cache and refresh the
// stored entries.
func WithCacheForceRefresh() Opt {
	return func(c *Client) {
		c.cacheForceRefresh = true
	}
}

// WithDebug enables request logging on the gateway side.
func WithDebug() Opt {
	return func(c *Client) {
		c.debug = true
	}
}
