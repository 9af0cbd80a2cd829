package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// BurnAlertsClient implements honeycomb.BurnAlertsClient.
type BurnAlertsClient struct {
	httpClient *http.Client
}

// NewBurnAlertsClient creates a new burn alerts client.
func NewBurnAlertsClient(httpClient *http.Client) *BurnAlertsClient {
	return &BurnAlertsClient{httpClient: httpClient}
}

// Create implements honeycomb.BurnAlertsClient.Create.
func (c *BurnAlertsClient) Create(ctx context.Context, dataset string, request *honeycomb.BurnAlertCreateRequest) (*honeycomb.BurnAlert, error) {
	path := fmt.Sprintf("/1/burn_alerts/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating burn alert: %w", err)
	}

	var alert honeycomb.BurnAlert

	err = decode(resp.Body, &alert, "burn alert")
	if err != nil {
		return nil, err
	}

	return &alert, nil
}

// Get implements honeycomb.BurnAlertsClient.Get.
func (c *BurnAlertsClient) Get(ctx context.Context, dataset, id string) (*honeycomb.BurnAlert, error) {
	path := fmt.Sprintf("/1/burn_alerts/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting burn alert: %w", err)
	}

	var alert honeycomb.BurnAlert

	err = decode(resp.Body, &alert, "burn alert")
	if err != nil {
		return nil, err
	}

	return &alert, nil
}

// ListForSLO implements honeycomb.BurnAlertsClient.ListForSLO.
func (c *BurnAlertsClient) ListForSLO(ctx context.Context, dataset, sloID string) ([]honeycomb.BurnAlert, error) {
	path := fmt.Sprintf("/1/burn_alerts/%s", url.PathEscape(dataset))
	query := url.Values{"slo_id": []string{sloID}}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing burn alerts: %w", err)
	}

	var alerts []honeycomb.BurnAlert

	err = decode(resp.Body, &alerts, "burn alerts list")
	if err != nil {
		return nil, err
	}

	return alerts, nil
}

// Update implements honeycomb.BurnAlertsClient.Update.
func (c *BurnAlertsClient) Update(ctx context.Context, dataset, id string, request *honeycomb.BurnAlertCreateRequest) (*honeycomb.BurnAlert, error) {
	path := fmt.Sprintf("/1/burn_alerts/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating burn alert: %w", err)
	}

	var alert honeycomb.BurnAlert

	err = decode(resp.Body, &alert, "burn alert")
	if err != nil {
		return nil, err
	}

	return &alert, nil
}

// Delete implements honeycomb.BurnAlertsClient.Delete.
func (c *BurnAlertsClient) Delete(ctx context.Context, dataset, id string) error {
	path := fmt.Sprintf("/1/burn_alerts/%s/%s", url.PathEscape(dataset), url.PathEscape(id))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting burn alert: %w", err)
	}

	return nil
}
