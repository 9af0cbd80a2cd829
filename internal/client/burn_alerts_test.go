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

func TestBurnAlertsClient_Create(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/1/burn_alerts/frontend", r.URL.Path)

		var req honeycomb.BurnAlertCreateRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, honeycomb.BurnAlertExhaustionTime, req.AlertType)
		require.NotNil(t, req.ExhaustionMinutes)
		assert.Equal(t, 240, *req.ExhaustionMinutes)
		assert.Equal(t, "slo-1", req.SLO.ID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(honeycomb.BurnAlert{ID: "ba-1", AlertType: req.AlertType})
	})

	exhaustion := 240
	alert, err := client.BurnAlerts().Create(context.Background(), "frontend", &honeycomb.BurnAlertCreateRequest{
		AlertType:         honeycomb.BurnAlertExhaustionTime,
		ExhaustionMinutes: &exhaustion,
		SLO:               honeycomb.SLOIDRef{ID: "slo-1"},
		Recipients:        []honeycomb.RecipientRef{{ID: "rcp-1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ba-1", alert.ID)
}

func TestBurnAlertsClient_ListForSLO(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/1/burn_alerts/frontend", r.URL.Path)
		assert.Equal(t, "slo-1", r.URL.Query().Get("slo_id"))

		_ = json.NewEncoder(w).Encode([]honeycomb.BurnAlert{
			{ID: "ba-1", AlertType: honeycomb.BurnAlertExhaustionTime},
			{ID: "ba-2", AlertType: honeycomb.BurnAlertBudgetRate},
		})
	})

	alerts, err := client.BurnAlerts().ListForSLO(context.Background(), "frontend", "slo-1")
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, honeycomb.BurnAlertBudgetRate, alerts[1].AlertType)
}

func TestBurnAlertsClient_Update(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/1/burn_alerts/frontend/ba-1", r.URL.Path)

		var req honeycomb.BurnAlertCreateRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ExhaustionMinutes)
		assert.Equal(t, 120, *req.ExhaustionMinutes)

		_ = json.NewEncoder(w).Encode(honeycomb.BurnAlert{ID: "ba-1", ExhaustionMinutes: req.ExhaustionMinutes})
	})

	exhaustion := 120
	alert, err := client.BurnAlerts().Update(context.Background(), "frontend", "ba-1", &honeycomb.BurnAlertCreateRequest{
		AlertType:         honeycomb.BurnAlertExhaustionTime,
		ExhaustionMinutes: &exhaustion,
		SLO:               honeycomb.SLOIDRef{ID: "slo-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 120, *alert.ExhaustionMinutes)
}

func TestBurnAlertsClient_Delete(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/1/burn_alerts/frontend/ba-1", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.BurnAlerts().Delete(context.Background(), "frontend", "ba-1")
	require.NoError(t, err)
}
