package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// DatasetsClient implements honeycomb.DatasetsClient.
type DatasetsClient struct {
	httpClient *http.Client
}

// NewDatasetsClient creates a new datasets client.
func NewDatasetsClient(httpClient *http.Client) *DatasetsClient {
	return &DatasetsClient{httpClient: httpClient}
}

// Create implements honeycomb.DatasetsClient.Create.
func (c *DatasetsClient) Create(ctx context.Context, request *honeycomb.DatasetCreateRequest) (*honeycomb.Dataset, error) {
	if request.Name == "" {
		return nil, honeycomb.ErrDatasetNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/1/datasets", request)
	if err != nil {
		return nil, fmt.Errorf("creating dataset: %w", err)
	}

	var dataset honeycomb.Dataset

	err = decode(resp.Body, &dataset, "dataset")
	if err != nil {
		return nil, err
	}

	return &dataset, nil
}

// Get implements honeycomb.DatasetsClient.Get.
func (c *DatasetsClient) Get(ctx context.Context, slug string) (*honeycomb.Dataset, error) {
	path := fmt.Sprintf("/1/datasets/%s", url.PathEscape(slug))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting dataset: %w", err)
	}

	var dataset honeycomb.Dataset

	err = decode(resp.Body, &dataset, "dataset")
	if err != nil {
		return nil, err
	}

	return &dataset, nil
}

// List implements honeycomb.DatasetsClient.List.
func (c *DatasetsClient) List(ctx context.Context) ([]honeycomb.Dataset, error) {
	resp, err := c.httpClient.Get(ctx, "/1/datasets", nil)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}

	var datasets []honeycomb.Dataset

	err = decode(resp.Body, &datasets, "datasets list")
	if err != nil {
		return nil, err
	}

	return datasets, nil
}

// Update implements honeycomb.DatasetsClient.Update.
func (c *DatasetsClient) Update(ctx context.Context, slug string, request *honeycomb.DatasetUpdateRequest) (*honeycomb.Dataset, error) {
	path := fmt.Sprintf("/1/datasets/%s", url.PathEscape(slug))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating dataset: %w", err)
	}

	var dataset honeycomb.Dataset

	err = decode(resp.Body, &dataset, "dataset")
	if err != nil {
		return nil, err
	}

	return &dataset, nil
}

// Delete implements honeycomb.DatasetsClient.Delete. Deleting a
// delete-protected dataset fails with a conflict error.
func (c *DatasetsClient) Delete(ctx context.Context, slug string) error {
	path := fmt.Sprintf("/1/datasets/%s", url.PathEscape(slug))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting dataset: %w", err)
	}

	return nil
}
