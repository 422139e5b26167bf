package portkey

// BaseUrl is the default endpoint of the Portkey AI gateway.
const BaseUrl = "https://api.portkey.ai/v1"

// Header names understood by the Portkey gateway.
//
// Every request issued through a Client carries at least HeaderApiKey and
// HeaderVirtualKey, the others are attached when the matching option is used.
const (
	HeaderApiKey     = "x-portkey-api-key"
	HeaderVirtualKey = "x-portkey-virtual-key"

	HeaderProvider   = "x-portkey-provider"
	HeaderConfig     = "x-portkey-config"
	HeaderTraceId    = "x-portkey-trace-id"
	HeaderMetadata   = "x-portkey-metadata"
	HeaderCustomHost = "x-portkey-custom-host"

	HeaderCacheNamespace    = "x-portkey-cache-namespace"
	HeaderCacheForceRefresh = "x-portkey-cache-force-refresh"

	HeaderDebug = "x-portkey-debug"
)
