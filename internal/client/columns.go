package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// ColumnsClient implements honeycomb.ColumnsClient.
type ColumnsClient struct {
	httpClient *http.Client
}

// NewColumnsClient creates a new columns client.
func NewColumnsClient(httpClient *http.Client) *ColumnsClient {
	return &ColumnsClient{httpClient: httpClient}
}

// Create implements honeycomb.ColumnsClient.Create.
func (c *ColumnsClient) Create(ctx context.Context, dataset string, request *honeycomb.ColumnCreateRequest) (*honeycomb.Column, error) {
	path := fmt.Sprintf("/1/columns/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating column: %w", err)
	}

	var column honeycomb.Column

	err = decode(resp.Body, &column, "column")
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// Get implements honeycomb.ColumnsClient.Get.
func (c *ColumnsClient) Get(ctx context.Context, dataset, id string) (*honeycomb.Column, error) {
	path := fmt.Sprintf("/1/columns/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting column: %w", err)
	}

	var column honeycomb.Column

	err = decode(resp.Body, &column, "column")
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// GetByKeyName implements honeycomb.ColumnsClient.GetByKeyName.
func (c *ColumnsClient) GetByKeyName(ctx context.Context, dataset, keyName string) (*honeycomb.Column, error) {
	path := fmt.Sprintf("/1/columns/%s", url.PathEscape(dataset))
	query := url.Values{"key_name": []string{keyName}}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting column by key name: %w", err)
	}

	var column honeycomb.Column

	err = decode(resp.Body, &column, "column")
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// List implements honeycomb.ColumnsClient.List.
func (c *ColumnsClient) List(ctx context.Context, dataset string) ([]honeycomb.Column, error) {
	path := fmt.Sprintf("/1/columns/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}

	var columns []honeycomb.Column

	err = decode(resp.Body, &columns, "columns list")
	if err != nil {
		return nil, err
	}

	return columns, nil
}

// Update implements honeycomb.ColumnsClient.Update.
func (c *ColumnsClient) Update(ctx context.Context, dataset, id string, request *honeycomb.ColumnCreateRequest) (*honeycomb.Column, error) {
	path := fmt.Sprintf("/1/columns/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating column: %w", err)
	}

	var column honeycomb.Column

	err = decode(resp.Body, &column, "column")
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// Delete implements honeycomb.ColumnsClient.Delete.
func (c *ColumnsClient) Delete(ctx context.Context, dataset, id string) error {
	path := fmt.Sprintf("/1/columns/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting column: %w", err)
	}

	return nil
}
