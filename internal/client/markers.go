package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// MarkersClient implements honeycomb.MarkersClient.
type MarkersClient struct {
	httpClient *http.Client
}

// NewMarkersClient creates a new markers client.
func NewMarkersClient(httpClient *http.Client) *MarkersClient {
	return &MarkersClient{httpClient: httpClient}
}

// Create implements honeycomb.MarkersClient.Create.
func (c *MarkersClient) Create(ctx context.Context, dataset string, request *honeycomb.MarkerCreateRequest) (*honeycomb.Marker, error) {
	if request.Message == "" {
		return nil, honeycomb.ErrMarkerMessageRequired
	}

	path := fmt.Sprintf("/1/markers/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating marker: %w", err)
	}

	var marker honeycomb.Marker

	err = decode(resp.Body, &marker, "marker")
	if err != nil {
		return nil, err
	}

	return &marker, nil
}

// List implements honeycomb.MarkersClient.List.
func (c *MarkersClient) List(ctx context.Context, dataset string) ([]honeycomb.Marker, error) {
	path := fmt.Sprintf("/1/markers/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing markers: %w", err)
	}

	var markers []honeycomb.Marker

	err = decode(resp.Body, &markers, "markers list")
	if err != nil {
		return nil, err
	}

	return markers, nil
}

// Update implements honeycomb.MarkersClient.Update.
func (c *MarkersClient) Update(ctx context.Context, dataset, id string, request *honeycomb.MarkerCreateRequest) (*honeycomb.Marker, error) {
	path := fmt.Sprintf("/1/markers/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating marker: %w", err)
	}

	var marker honeycomb.Marker

	err = decode(resp.Body, &marker, "marker")
	if err != nil {
		return nil, err
	}

	return &marker, nil
}

// Delete implements honeycomb.MarkersClient.Delete.
func (c *MarkersClient) Delete(ctx context.Context, dataset, id string) error {
	path := fmt.Sprintf("/1/markers/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting marker: %w", err)
	}

	return nil
}

// ListSettings implements honeycomb.MarkersClient.ListSettings.
func (c *MarkersClient) ListSettings(ctx context.Context, dataset string) ([]honeycomb.MarkerSetting, error) {
	path := fmt.Sprintf("/1/marker_settings/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing marker settings: %w", err)
	}

	var settings []honeycomb.MarkerSetting

	err = decode(resp.Body, &settings, "marker settings list")
	if err != nil {
		return nil, err
	}

	return settings, nil
}
