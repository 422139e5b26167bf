package portkey_test

import (
	"testing"

	portkey "github.com/NewtTheWolf/portkey-go"
	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("PORTKEY_API_KEY", "apikey")
	t.Setenv("PORTKEY_VIRTUAL_KEY", "virtualkey")

	client, err := portkey.FromEnv()

	assert.Nil(t, err)
	assert.Equal(t, "apikey", client.ApiKey())
	assert.Equal(t, "virtualkey", client.VirtualKey())
	assert.Equal(t, portkey.BaseUrl, client.BaseUrl())
}

func TestFromEnvBaseUrl(t *testing.T) {
	t.Setenv("PORTKEY_API_KEY", "apikey")
	t.Setenv("PORTKEY_VIRTUAL_KEY", "virtualkey")
	t.Setenv("PORTKEY_BASE_URL", "https://gateway.internal/v1")

	client, err := portkey.FromEnv()

	assert.Nil(t, err)
	assert.Equal(t, "https://gateway.internal/v1", client.BaseUrl())
}

func TestFromEnvOptionPrecedence(t *testing.T) {
	t.Setenv("PORTKEY_API_KEY", "apikey")
	t.Setenv("PORTKEY_BASE_URL", "https://gateway.internal/v1")

	client, err := portkey.FromEnv(portkey.WithBaseUrl("https://other.internal/v1"))

	assert.Nil(t, err)
	assert.Equal(t, "https://other.internal/v1", client.BaseUrl())
}

func TestFromEnvMissingApiKey(t *testing.T) {
	t.Setenv("PORTKEY_API_KEY", "")

	_, err := portkey.FromEnv()

	assert.Error(t, err)
}
