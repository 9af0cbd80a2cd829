package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

func TestRecipientsClient_Create(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/1/recipients", r.URL.Path)

		var req honeycomb.RecipientCreateRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, honeycomb.RecipientEmail, req.Type)
		assert.Equal(t, "oncall@example.com", req.Details.EmailAddress)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(honeycomb.Recipient{ID: "rcp-1", Type: req.Type, Details: req.Details})
	})

	recipient, err := client.Recipients().Create(context.Background(), &honeycomb.RecipientCreateRequest{
		Type:    honeycomb.RecipientEmail,
		Details: honeycomb.RecipientDetails{EmailAddress: "oncall@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "rcp-1", recipient.ID)
}

func TestRecipientsClient_CreateRejectsMalformedDetails(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	// Email recipient with webhook details.
	_, err := client.Recipients().Create(context.Background(), &honeycomb.RecipientCreateRequest{
		Type:    honeycomb.RecipientEmail,
		Details: honeycomb.RecipientDetails{WebhookURL: "https://hooks.example.com"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, honeycomb.ErrRecipientDetailsShape)

	_, err = client.Recipients().Create(context.Background(), nil)
	assert.ErrorIs(t, err, honeycomb.ErrMissingRecipient)
}

func TestRecipientsClient_List(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/recipients", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]honeycomb.Recipient{
			{ID: "rcp-1", Type: honeycomb.RecipientEmail},
			{ID: "rcp-2", Type: honeycomb.RecipientSlack},
		})
	})

	recipients, err := client.Recipients().List(context.Background())
	require.NoError(t, err)
	require.Len(t, recipients, 2)
	assert.Equal(t, honeycomb.RecipientSlack, recipients[1].Type)
}

func TestRecipientsClient_Delete(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/1/recipients/rcp-1", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Recipients().Delete(context.Background(), "rcp-1")
	require.NoError(t, err)
}
