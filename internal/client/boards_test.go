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

func TestBoardsClient_Create(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/1/boards", r.URL.Path)

		var req honeycomb.BoardCreateRequest

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Queries, 1)
		assert.Equal(t, "frontend", req.Queries[0].Dataset)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(honeycomb.Board{ID: "board-1", Name: req.Name})
	})

	board, err := client.Boards().Create(context.Background(), &honeycomb.BoardCreateRequest{
		Name:  "Checkout health",
		Style: "visual",
		Queries: []honeycomb.BoardQuery{{
			Caption: "p99 latency",
			Dataset: "frontend",
			Query: &honeycomb.QuerySpec{
				Calculations: []honeycomb.Calculation{{Op: honeycomb.CalcP99, Column: "duration_ms"}},
				TimeRange:    3600,
			},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "board-1", board.ID)
}

func TestBoardsClient_CreateRequiresName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Boards().Create(context.Background(), &honeycomb.BoardCreateRequest{
		Style: "visual",
	})
	require.ErrorIs(t, err, honeycomb.ErrBoardNameRequired)
}

func TestBoardsClient_Get(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/boards/board-1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(honeycomb.Board{ID: "board-1", Name: "Checkout health"})
	})

	board, err := client.Boards().Get(context.Background(), "board-1")
	require.NoError(t, err)
	assert.Equal(t, "Checkout health", board.Name)
}

func TestBoardsClient_List(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/boards", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]honeycomb.Board{{ID: "board-1"}})
	})

	boards, err := client.Boards().List(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 1)
}

func TestBoardsClient_Delete(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/1/boards/board-1", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Boards().Delete(context.Background(), "board-1")
	require.NoError(t, err)
}
