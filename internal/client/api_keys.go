package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// APIKeysClient implements honeycomb.APIKeysClient. Key endpoints live on
// the v2 management API; the key secret is only present in create responses.
type APIKeysClient struct {
	httpClient *http.Client
}

// NewAPIKeysClient creates a new API keys client.
func NewAPIKeysClient(httpClient *http.Client) *APIKeysClient {
	return &APIKeysClient{httpClient: httpClient}
}

// Create implements honeycomb.APIKeysClient.Create.
func (c *APIKeysClient) Create(ctx context.Context, request *honeycomb.APIKeyCreateRequest) (*honeycomb.APIKey, error) {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/2/api-keys", request)
	if err != nil {
		return nil, fmt.Errorf("creating API key: %w", err)
	}

	var key envelope[honeycomb.APIKey]

	err = decode(resp.Body, &key, "API key")
	if err != nil {
		return nil, err
	}

	return &key.Data, nil
}

// Get implements honeycomb.APIKeysClient.Get.
func (c *APIKeysClient) Get(ctx context.Context, id string) (*honeycomb.APIKey, error) {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/2/api-keys/%s", url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting API key: %w", err)
	}

	var key envelope[honeycomb.APIKey]

	err = decode(resp.Body, &key, "API key")
	if err != nil {
		return nil, err
	}

	return &key.Data, nil
}

// List implements honeycomb.APIKeysClient.List, returning a single page.
func (c *APIKeysClient) List(ctx context.Context) (*honeycomb.ListResponse[honeycomb.APIKey], error) {
	return c.listPage(ctx, "")
}

// ListAll implements honeycomb.APIKeysClient.ListAll, draining every page.
func (c *APIKeysClient) ListAll(ctx context.Context) ([]honeycomb.APIKey, error) {
	pager := honeycomb.NewPager(ctx, c.listPage)

	return pager.All()
}

func (c *APIKeysClient) listPage(ctx context.Context, cursor string) (*honeycomb.ListResponse[honeycomb.APIKey], error) {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return nil, err
	}

	path, query, err := cursorPath("/2/api-keys", cursor)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing API keys: %w", err)
	}

	var page honeycomb.ListResponse[honeycomb.APIKey]

	err = decode(resp.Body, &page, "API keys page")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// Update implements honeycomb.APIKeysClient.Update.
func (c *APIKeysClient) Update(ctx context.Context, id string, request *honeycomb.APIKeyUpdateRequest) (*honeycomb.APIKey, error) {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/2/api-keys/%s", url.PathEscape(id))

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating API key: %w", err)
	}

	var key envelope[honeycomb.APIKey]

	err = decode(resp.Body, &key, "API key")
	if err != nil {
		return nil, err
	}

	return &key.Data, nil
}

// Delete implements honeycomb.APIKeysClient.Delete.
func (c *APIKeysClient) Delete(ctx context.Context, id string) error {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/2/api-keys/%s", url.PathEscape(id))

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting API key: %w", err)
	}

	return nil
}
