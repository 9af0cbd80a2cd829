package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// RecipientsClient implements honeycomb.RecipientsClient. Recipients are
// environment-scoped, so paths carry no dataset segment.
type RecipientsClient struct {
	httpClient *http.Client
}

// NewRecipientsClient creates a new recipients client.
func NewRecipientsClient(httpClient *http.Client) *RecipientsClient {
	return &RecipientsClient{httpClient: httpClient}
}

// Create implements honeycomb.RecipientsClient.Create.
func (c *RecipientsClient) Create(ctx context.Context, request *honeycomb.RecipientCreateRequest) (*honeycomb.Recipient, error) {
	if request == nil {
		return nil, honeycomb.ErrMissingRecipient
	}

	err := honeycomb.ValidateRecipient(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/1/recipients", request)
	if err != nil {
		return nil, fmt.Errorf("creating recipient: %w", err)
	}

	var recipient honeycomb.Recipient

	err = decode(resp.Body, &recipient, "recipient")
	if err != nil {
		return nil, err
	}

	return &recipient, nil
}

// Get implements honeycomb.RecipientsClient.Get.
func (c *RecipientsClient) Get(ctx context.Context, id string) (*honeycomb.Recipient, error) {
	path := fmt.Sprintf("/1/recipients/%s", url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting recipient: %w", err)
	}

	var recipient honeycomb.Recipient

	err = decode(resp.Body, &recipient, "recipient")
	if err != nil {
		return nil, err
	}

	return &recipient, nil
}

// List implements honeycomb.RecipientsClient.List.
func (c *RecipientsClient) List(ctx context.Context) ([]honeycomb.Recipient, error) {
	resp, err := c.httpClient.Get(ctx, "/1/recipients", nil)
	if err != nil {
		return nil, fmt.Errorf("listing recipients: %w", err)
	}

	var recipients []honeycomb.Recipient

	err = decode(resp.Body, &recipients, "recipients list")
	if err != nil {
		return nil, err
	}

	return recipients, nil
}

// Update implements honeycomb.RecipientsClient.Update.
func (c *RecipientsClient) Update(ctx context.Context, id string, request *honeycomb.RecipientCreateRequest) (*honeycomb.Recipient, error) {
	path := fmt.Sprintf("/1/recipients/%s", url.PathEscape(id))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating recipient: %w", err)
	}

	var recipient honeycomb.Recipient

	err = decode(resp.Body, &recipient, "recipient")
	if err != nil {
		return nil, err
	}

	return &recipient, nil
}

// Delete implements honeycomb.RecipientsClient.Delete.
func (c *RecipientsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/1/recipients/%s", url.PathEscape(id))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting recipient: %w", err)
	}

	return nil
}
