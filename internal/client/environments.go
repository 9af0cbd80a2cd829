package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// EnvironmentsClient implements honeycomb.EnvironmentsClient. Environment
// endpoints live on the v2 management API and authenticate with the
// management key.
type EnvironmentsClient struct {
	httpClient *http.Client
}

// NewEnvironmentsClient creates a new environments client.
func NewEnvironmentsClient(httpClient *http.Client) *EnvironmentsClient {
	return &EnvironmentsClient{httpClient: httpClient}
}

// requireManagementKey fails fast before a v2 request when no management
// key is configured; the environment API key cannot authenticate these
// endpoints.
func requireManagementKey(httpClient *http.Client) error {
	if !httpClient.HasManagementKey() {
		return honeycomb.ErrManagementKeyRequired
	}

	return nil
}

// Create implements honeycomb.EnvironmentsClient.Create.
func (c *EnvironmentsClient) Create(ctx context.Context, request *honeycomb.EnvironmentCreateRequest) (*honeycomb.Environment, error) {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/2/environments", request)
	if err != nil {
		return nil, fmt.Errorf("creating environment: %w", err)
	}

	var env envelope[honeycomb.Environment]

	err = decode(resp.Body, &env, "environment")
	if err != nil {
		return nil, err
	}

	return &env.Data, nil
}

// Get implements honeycomb.EnvironmentsClient.Get.
func (c *EnvironmentsClient) Get(ctx context.Context, id string) (*honeycomb.Environment, error) {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/2/environments/%s", url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting environment: %w", err)
	}

	var env envelope[honeycomb.Environment]

	err = decode(resp.Body, &env, "environment")
	if err != nil {
		return nil, err
	}

	return &env.Data, nil
}

// List implements honeycomb.EnvironmentsClient.List. It returns a single
// page; the links field carries the cursor for the next one.
func (c *EnvironmentsClient) List(ctx context.Context) (*honeycomb.ListResponse[honeycomb.Environment], error) {
	return c.listPage(ctx, "")
}

// ListAll implements honeycomb.EnvironmentsClient.ListAll, draining every
// page of the listing.
func (c *EnvironmentsClient) ListAll(ctx context.Context) ([]honeycomb.Environment, error) {
	pager := honeycomb.NewPager(ctx, c.listPage)

	return pager.All()
}

func (c *EnvironmentsClient) listPage(ctx context.Context, cursor string) (*honeycomb.ListResponse[honeycomb.Environment], error) {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return nil, err
	}

	path, query, err := cursorPath("/2/environments", cursor)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing environments: %w", err)
	}

	var page honeycomb.ListResponse[honeycomb.Environment]

	err = decode(resp.Body, &page, "environments page")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// Update implements honeycomb.EnvironmentsClient.Update.
func (c *EnvironmentsClient) Update(ctx context.Context, id string, request *honeycomb.EnvironmentUpdateRequest) (*honeycomb.Environment, error) {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/2/environments/%s", url.PathEscape(id))

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating environment: %w", err)
	}

	var env envelope[honeycomb.Environment]

	err = decode(resp.Body, &env, "environment")
	if err != nil {
		return nil, err
	}

	return &env.Data, nil
}

// Delete implements honeycomb.EnvironmentsClient.Delete. Deletion fails with
// a conflict while the environment's delete protection is on.
func (c *EnvironmentsClient) Delete(ctx context.Context, id string) error {
	err := requireManagementKey(c.httpClient)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/2/environments/%s", url.PathEscape(id))

	_, err = c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting environment: %w", err)
	}

	return nil
}

// envelope is the single-resource wrapper used by v2 endpoints.
type envelope[T any] struct {
	Data T `json:"data"`
}

// cursorPath resolves a pagination cursor against a default listing path.
// Cursors arrive as the next_url link of the previous page and may be
// absolute or path-relative.
func cursorPath(defaultPath, cursor string) (string, url.Values, error) {
	if cursor == "" {
		return defaultPath, nil, nil
	}

	parsed, err := url.Parse(cursor)
	if err != nil {
		return "", nil, fmt.Errorf("parsing pagination cursor: %w", err)
	}

	path := parsed.Path
	if path == "" {
		path = defaultPath
	}

	return path, parsed.Query(), nil
}
