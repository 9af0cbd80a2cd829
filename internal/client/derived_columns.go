package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// DerivedColumnsClient implements honeycomb.DerivedColumnsClient. The
// dataset may be the environment-wide sentinel, in which case the column is
// available in every dataset.
type DerivedColumnsClient struct {
	httpClient *http.Client
}

// NewDerivedColumnsClient creates a new derived columns client.
func NewDerivedColumnsClient(httpClient *http.Client) *DerivedColumnsClient {
	return &DerivedColumnsClient{httpClient: httpClient}
}

// Create implements honeycomb.DerivedColumnsClient.Create.
func (c *DerivedColumnsClient) Create(ctx context.Context, dataset string, request *honeycomb.DerivedColumnCreateRequest) (*honeycomb.DerivedColumn, error) {
	path := fmt.Sprintf("/1/derived_columns/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating derived column: %w", err)
	}

	var column honeycomb.DerivedColumn

	err = decode(resp.Body, &column, "derived column")
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// Get implements honeycomb.DerivedColumnsClient.Get.
func (c *DerivedColumnsClient) Get(ctx context.Context, dataset, id string) (*honeycomb.DerivedColumn, error) {
	path := fmt.Sprintf("/1/derived_columns/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting derived column: %w", err)
	}

	var column honeycomb.DerivedColumn

	err = decode(resp.Body, &column, "derived column")
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// GetByAlias implements honeycomb.DerivedColumnsClient.GetByAlias.
func (c *DerivedColumnsClient) GetByAlias(ctx context.Context, dataset, alias string) (*honeycomb.DerivedColumn, error) {
	path := fmt.Sprintf("/1/derived_columns/%s", url.PathEscape(dataset))
	query := url.Values{"alias": []string{alias}}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting derived column by alias: %w", err)
	}

	var column honeycomb.DerivedColumn

	err = decode(resp.Body, &column, "derived column")
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// List implements honeycomb.DerivedColumnsClient.List.
func (c *DerivedColumnsClient) List(ctx context.Context, dataset string) ([]honeycomb.DerivedColumn, error) {
	path := fmt.Sprintf("/1/derived_columns/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing derived columns: %w", err)
	}

	var columns []honeycomb.DerivedColumn

	err = decode(resp.Body, &columns, "derived columns list")
	if err != nil {
		return nil, err
	}

	return columns, nil
}

// Update implements honeycomb.DerivedColumnsClient.Update.
func (c *DerivedColumnsClient) Update(ctx context.Context, dataset, id string, request *honeycomb.DerivedColumnCreateRequest) (*honeycomb.DerivedColumn, error) {
	path := fmt.Sprintf("/1/derived_columns/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating derived column: %w", err)
	}

	var column honeycomb.DerivedColumn

	err = decode(resp.Body, &column, "derived column")
	if err != nil {
		return nil, err
	}

	return &column, nil
}

// Delete implements honeycomb.DerivedColumnsClient.Delete.
func (c *DerivedColumnsClient) Delete(ctx context.Context, dataset, id string) error {
	path := fmt.Sprintf("/1/derived_columns/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting derived column: %w", err)
	}

	return nil
}
