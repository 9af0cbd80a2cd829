package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// SLOsClient implements honeycomb.SLOsClient.
type SLOsClient struct {
	httpClient *http.Client
	facade     honeycomb.Client
}

// NewSLOsClient creates a new SLOs client. The facade reference is used by
// bundle execution, which crosses resource families.
func NewSLOsClient(httpClient *http.Client, facade honeycomb.Client) *SLOsClient {
	return &SLOsClient{
		httpClient: httpClient,
		facade:     facade,
	}
}

// Create implements honeycomb.SLOsClient.Create.
func (c *SLOsClient) Create(ctx context.Context, dataset string, request *honeycomb.SLOCreateRequest) (*honeycomb.SLO, error) {
	path := fmt.Sprintf("/1/slos/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating SLO: %w", err)
	}

	var slo honeycomb.SLO

	err = decode(resp.Body, &slo, "SLO")
	if err != nil {
		return nil, err
	}

	return &slo, nil
}

// Get implements honeycomb.SLOsClient.Get. When detailed is set the
// response includes compliance and budget reporting.
func (c *SLOsClient) Get(ctx context.Context, dataset, id string, detailed bool) (*honeycomb.SLO, error) {
	path := fmt.Sprintf("/1/slos/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	var query url.Values
	if detailed {
		query = url.Values{"detailed": []string{"true"}}
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting SLO: %w", err)
	}

	var slo honeycomb.SLO

	err = decode(resp.Body, &slo, "SLO")
	if err != nil {
		return nil, err
	}

	return &slo, nil
}

// List implements honeycomb.SLOsClient.List.
func (c *SLOsClient) List(ctx context.Context, dataset string) ([]honeycomb.SLO, error) {
	path := fmt.Sprintf("/1/slos/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing SLOs: %w", err)
	}

	var slos []honeycomb.SLO

	err = decode(resp.Body, &slos, "SLOs list")
	if err != nil {
		return nil, err
	}

	return slos, nil
}

// Update implements honeycomb.SLOsClient.Update.
func (c *SLOsClient) Update(ctx context.Context, dataset, id string, request *honeycomb.SLOCreateRequest) (*honeycomb.SLO, error) {
	path := fmt.Sprintf("/1/slos/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating SLO: %w", err)
	}

	var slo honeycomb.SLO

	err = decode(resp.Body, &slo, "SLO")
	if err != nil {
		return nil, err
	}

	return &slo, nil
}

// Delete implements honeycomb.SLOsClient.Delete.
func (c *SLOsClient) Delete(ctx context.Context, dataset, id string) error {
	path := fmt.Sprintf("/1/slos/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting SLO: %w", err)
	}

	return nil
}

// CreateFromBundle implements honeycomb.SLOsClient.CreateFromBundle.
func (c *SLOsClient) CreateFromBundle(ctx context.Context, bundle *honeycomb.Bundle) (*honeycomb.BundleResult, error) {
	executor := honeycomb.NewBundleExecutor(c.facade, facadeLogger(c.facade))

	result, err := executor.Execute(ctx, bundle)
	if err != nil {
		return nil, fmt.Errorf("executing SLO bundle: %w", err)
	}

	return result, nil
}
