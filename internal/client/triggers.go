package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// TriggersClient implements honeycomb.TriggersClient.
type TriggersClient struct {
	httpClient *http.Client
	facade     honeycomb.Client
}

// NewTriggersClient creates a new triggers client. The facade reference is
// used by bundle execution, which crosses resource families.
func NewTriggersClient(httpClient *http.Client, facade honeycomb.Client) *TriggersClient {
	return &TriggersClient{
		httpClient: httpClient,
		facade:     facade,
	}
}

// Create implements honeycomb.TriggersClient.Create.
func (c *TriggersClient) Create(ctx context.Context, dataset string, request *honeycomb.TriggerCreateRequest) (*honeycomb.Trigger, error) {
	if request.Query == nil && request.QueryID == "" {
		return nil, honeycomb.ErrMissingQuery
	}

	path := fmt.Sprintf("/1/triggers/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating trigger: %w", err)
	}

	var trigger honeycomb.Trigger

	err = decode(resp.Body, &trigger, "trigger")
	if err != nil {
		return nil, err
	}

	return &trigger, nil
}

// Get implements honeycomb.TriggersClient.Get.
func (c *TriggersClient) Get(ctx context.Context, dataset, id string) (*honeycomb.Trigger, error) {
	path := fmt.Sprintf("/1/triggers/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting trigger: %w", err)
	}

	var trigger honeycomb.Trigger

	err = decode(resp.Body, &trigger, "trigger")
	if err != nil {
		return nil, err
	}

	return &trigger, nil
}

// List implements honeycomb.TriggersClient.List.
func (c *TriggersClient) List(ctx context.Context, dataset string) ([]honeycomb.Trigger, error) {
	path := fmt.Sprintf("/1/triggers/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing triggers: %w", err)
	}

	var triggers []honeycomb.Trigger

	err = decode(resp.Body, &triggers, "triggers list")
	if err != nil {
		return nil, err
	}

	return triggers, nil
}

// Update implements honeycomb.TriggersClient.Update.
func (c *TriggersClient) Update(ctx context.Context, dataset, id string, request *honeycomb.TriggerCreateRequest) (*honeycomb.Trigger, error) {
	if request.Query == nil && request.QueryID == "" {
		return nil, honeycomb.ErrMissingQuery
	}

	path := fmt.Sprintf("/1/triggers/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating trigger: %w", err)
	}

	var trigger honeycomb.Trigger

	err = decode(resp.Body, &trigger, "trigger")
	if err != nil {
		return nil, err
	}

	return &trigger, nil
}

// Delete implements honeycomb.TriggersClient.Delete.
func (c *TriggersClient) Delete(ctx context.Context, dataset, id string) error {
	path := fmt.Sprintf("/1/triggers/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting trigger: %w", err)
	}

	return nil
}

// CreateFromBundle implements honeycomb.TriggersClient.CreateFromBundle.
func (c *TriggersClient) CreateFromBundle(ctx context.Context, bundle *honeycomb.Bundle) (*honeycomb.BundleResult, error) {
	executor := honeycomb.NewBundleExecutor(c.facade, facadeLogger(c.facade))

	result, err := executor.Execute(ctx, bundle)
	if err != nil {
		return nil, fmt.Errorf("executing trigger bundle: %w", err)
	}

	return result, nil
}

// facadeLogger extracts the configured logger when the facade is the
// internal client implementation.
func facadeLogger(facade honeycomb.Client) honeycomb.Logger {
	if c, ok := facade.(*Client); ok {
		return c.logger
	}

	return nil
}
