package hnyclient

import (
	"fmt"
	"strings"

	"github.com/irvingpop/honeycomb-go/internal/client"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// New creates a new Honeycomb API client from a config.
func New(config *honeycomb.Config) (honeycomb.Client, error) {
	if config == nil {
		return nil, honeycomb.ErrConfigRequired
	}

	if config.APIEndpoint != "" {
		config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return cli, nil
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithAPIKey creates a new client with an environment API key against the
// default endpoint.
func NewWithAPIKey(apiKey string) (honeycomb.Client, error) {
	return New(&honeycomb.Config{
		APIKey: apiKey,
	})
}

// NewWithManagementKey creates a new client with a management key, for the
// v2 environment and API key endpoints.
func NewWithManagementKey(keyID, keySecret string) (honeycomb.Client, error) {
	return New(&honeycomb.Config{
		ManagementKey: keyID + ":" + keySecret,
	})
}
