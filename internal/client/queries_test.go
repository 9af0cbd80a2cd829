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

func TestQueriesClient_Create(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/1/queries/frontend", r.URL.Path)

		var spec honeycomb.QuerySpec

		require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
		assert.Equal(t, 7200, spec.TimeRange)
		require.Len(t, spec.Calculations, 1)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(honeycomb.Query{ID: "qry-1", QuerySpec: spec})
	})

	spec, err := honeycomb.NewQueryBuilder().
		Avg("duration_ms").
		LastHours(2).
		Build()
	require.NoError(t, err)

	query, err := client.Queries().Create(context.Background(), "frontend", spec)
	require.NoError(t, err)
	assert.Equal(t, "qry-1", query.ID)
	assert.Equal(t, 7200, query.TimeRange)
}

func TestQueriesClient_Get(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/1/queries/frontend/qry-1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(honeycomb.Query{
			ID: "qry-1",
			QuerySpec: honeycomb.QuerySpec{
				Calculations: []honeycomb.Calculation{{Op: honeycomb.CalcCount}},
			},
		})
	})

	query, err := client.Queries().Get(context.Background(), "frontend", "qry-1")
	require.NoError(t, err)
	require.Len(t, query.Calculations, 1)
	assert.Equal(t, honeycomb.CalcCount, query.Calculations[0].Op)
}
