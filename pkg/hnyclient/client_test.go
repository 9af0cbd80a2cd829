package hnyclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	assert.ErrorIs(t, err, honeycomb.ErrConfigRequired)

	_, err = New(&honeycomb.Config{})
	assert.ErrorIs(t, err, honeycomb.ErrAPIKeyRequired)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := NewWithAPIKey("test-key")
	require.NoError(t, err)
	assert.NotNil(t, client.Datasets())
}

func TestNewWithManagementKey(t *testing.T) {
	t.Parallel()

	client, err := NewWithManagementKey("key-id", "key-secret")
	require.NoError(t, err)
	assert.NotNil(t, client.Environments())
	assert.NotNil(t, client.APIKeys())
}

func TestNormalizeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{name: "trailing slash trimmed", endpoint: "https://api.honeycomb.io/", want: "https://api.honeycomb.io"},
		{name: "scheme defaulted", endpoint: "api.eu1.honeycomb.io", want: "https://api.eu1.honeycomb.io"},
		{name: "http kept", endpoint: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "already normal", endpoint: "https://api.honeycomb.io", want: "https://api.honeycomb.io"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, normalizeEndpoint(tt.endpoint))
		})
	}
}

func TestClientRoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/datasets", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Honeycomb-Team"))

		_ = json.NewEncoder(w).Encode([]honeycomb.Dataset{{Name: "frontend", Slug: "frontend"}})
	}))
	t.Cleanup(server.Close)

	client, err := New(&honeycomb.Config{APIEndpoint: server.URL + "/", APIKey: "test-key"})
	require.NoError(t, err)

	datasets, err := client.Datasets().List(context.Background())
	require.NoError(t, err)
	require.Len(t, datasets, 1)
	assert.Equal(t, "frontend", datasets[0].Slug)
}
