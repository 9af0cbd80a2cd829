package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// QueriesClient implements honeycomb.QueriesClient. Saved queries are
// immutable server-side; there is no update or delete.
type QueriesClient struct {
	httpClient *http.Client
}

// NewQueriesClient creates a new queries client.
func NewQueriesClient(httpClient *http.Client) *QueriesClient {
	return &QueriesClient{httpClient: httpClient}
}

// Create implements honeycomb.QueriesClient.Create.
func (c *QueriesClient) Create(ctx context.Context, dataset string, spec *honeycomb.QuerySpec) (*honeycomb.Query, error) {
	path := fmt.Sprintf("/1/queries/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Post(ctx, path, spec)
	if err != nil {
		return nil, fmt.Errorf("creating query: %w", err)
	}

	var query honeycomb.Query

	err = decode(resp.Body, &query, "query")
	if err != nil {
		return nil, err
	}

	return &query, nil
}

// Get implements honeycomb.QueriesClient.Get.
func (c *QueriesClient) Get(ctx context.Context, dataset, id string) (*honeycomb.Query, error) {
	path := fmt.Sprintf("/1/queries/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting query: %w", err)
	}

	var query honeycomb.Query

	err = decode(resp.Body, &query, "query")
	if err != nil {
		return nil, err
	}

	return &query, nil
}
