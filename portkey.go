package portkey

import (
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client is a handle on the Portkey AI gateway.
//
// It wraps an openai-go client configured with the gateway base URL and the
// headers Portkey uses to authenticate and route requests. The handle is
// immutable once built and can be shared between goroutines without
// synchronization. All request and response handling is delegated to the
// wrapped client, unmodified.
type Client struct {
	openai openai.Client

	baseUrl    string
	apiKey     string
	virtualKey string

	provider      string
	providerKey   string
	configId      string
	gatewayConfig *GatewayConfig
	traceId       string
	metadata      Metadata
	customHost    string

	cacheNamespace    string
	cacheForceRefresh bool
	debug             bool

	httpClient *http.Client
}

// New creates a client handle for the Portkey gateway.
//
// Both credentials are opaque to this library: the API key authenticates
// against Portkey itself, while the virtual key selects a provider routing
// rule configured on the gateway. Neither is validated locally. Bad
// credentials are rejected by the gateway on the first delegated call.
//
// Example usage:
//
//	client, err := portkey.New("your-api-key", "your-virtual-key")
//	if err != nil {
//		return err
//	}
//
//	resp, err := client.OpenAI().Chat.Completions.New(ctx, params)
func New(apiKey, virtualKey string, opts ...Opt) (*Client, error) {
	c := Client{
		baseUrl:    BaseUrl,
		apiKey:     apiKey,
		virtualKey: virtualKey,
	}

	for _, opt := range opts {
		opt(&c)
	}

	headers, err := c.gatewayHeaders()
	if err != nil {
		return nil, err
	}

	c.openai = openai.NewClient(c.requestOptions(headers)...)

	return &c, nil
}

// gatewayHeaders builds the headers attached to every request issued through
// the handle.
func (c *Client) gatewayHeaders() (map[string]string, error) {
	headers := map[string]string{
		HeaderApiKey:     c.apiKey,
		HeaderVirtualKey: c.virtualKey,
	}

	if c.provider != "" {
		headers[HeaderProvider] = c.provider
	}
	if c.configId != "" {
		headers[HeaderConfig] = c.configId
	}
	if c.gatewayConfig != nil {
		encoded, err := c.gatewayConfig.encode()
		if err != nil {
			return nil, err
		}

		headers[HeaderConfig] = encoded
	}
	if c.traceId != "" {
		headers[HeaderTraceId] = c.traceId
	}
	if len(c.metadata) > 0 {
		encoded, err := c.metadata.encode()
		if err != nil {
			return nil, err
		}

		headers[HeaderMetadata] = encoded
	}
	if c.customHost != "" {
		headers[HeaderCustomHost] = c.customHost
	}
	if c.cacheNamespace != "" {
		headers[HeaderCacheNamespace] = c.cacheNamespace
	}
	if c.cacheForceRefresh {
		headers[HeaderCacheForceRefresh] = "true"
	}
	if c.debug {
		headers[HeaderDebug] = "true"
	}

	return headers, nil
}

// requestOptions assembles the openai-go options for the delegated client.
func (c *Client) requestOptions(headers map[string]string) []option.RequestOption {
	opts := []option.RequestOption{
		option.WithBaseURL(c.baseUrl),
	}

	if c.providerKey != "" {
		opts = append(opts, option.WithAPIKey(c.providerKey))
	}
	if c.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(c.httpClient))
	}

	for name, value := range headers {
		opts = append(opts, option.WithHeader(name, value))
	}

	return opts
}

// OpenAI returns the delegated openai-go client configured for the gateway.
//
// All of the wrapped library's features are available through it, this
// wrapper does not alter or validate the payloads going through.
func (c *Client) OpenAI() *openai.Client {
	return &c.openai
}

// ApiKey returns the Portkey API key the handle was built with.
func (c *Client) ApiKey() string {
	return c.apiKey
}

// VirtualKey returns the Portkey virtual key the handle was built with.
func (c *Client) VirtualKey() string {
	return c.virtualKey
}

// BaseUrl returns the gateway endpoint the handle targets.
func (c *Client) BaseUrl() string {
	return c.baseUrl
}
