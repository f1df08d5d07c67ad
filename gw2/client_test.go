package gw2

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client := NewClient("en")
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, "en", client.lang)
		assert.False(t, client.HasToken())
		assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
	})

	t.Run("empty lang falls back to english", func(t *testing.T) {
		client := NewClient("")
		assert.Equal(t, "en", client.lang)
	})

	t.Run("base URL trailing slash is trimmed", func(t *testing.T) {
		client := NewClient("en", WithBaseURL("http://localhost:8080/"))
		assert.Equal(t, "http://localhost:8080", client.baseURL)
	})
}

func TestClientOptions(t *testing.T) {
	t.Run("with token", func(t *testing.T) {
		client := NewClient("en", WithToken("secret"))
		assert.True(t, client.HasToken())
	})

	t.Run("with timeout", func(t *testing.T) {
		client := NewClient("en", WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("timeout survives a later custom http client", func(t *testing.T) {
		client := NewClient("en", WithTimeout(5*time.Second), WithHTTPClient(&http.Client{}))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client := NewClient("en", WithHTTPClient(customClient))
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with logger", func(t *testing.T) {
		client := NewClient("en", WithLogger(zerolog.Nop()))
		assert.NotNil(t, client)
	})
}

func TestGetHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "de", r.Header.Get("Accept-Language"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("de", WithBaseURL(server.URL), WithToken("secret"))

	resp, err := client.get(context.Background(), "/v2/account", true)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.status)
}

func TestGetUnauthenticatedOmitsAuthorization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	// Token configured but the endpoint is public
	client := NewClient("en", WithBaseURL(server.URL), WithToken("secret"))

	_, err := client.get(context.Background(), "/v2/achievements", false)
	require.NoError(t, err)
}

func TestGetWithoutToken(t *testing.T) {
	client := NewClient("en")

	_, err := client.get(context.Background(), "/v2/account", true)
	require.ErrorIs(t, err, ErrNoToken)
}

func TestGetTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient("en", WithBaseURL(server.URL))

	_, err := client.get(context.Background(), "/v2/achievements", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestGetContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient("en", WithBaseURL(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.get(ctx, "/v2/achievements", false)
	require.Error(t, err)
}
