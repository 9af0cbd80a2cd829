package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// BoardsClient implements honeycomb.BoardsClient.
type BoardsClient struct {
	httpClient *http.Client
}

// NewBoardsClient creates a new boards client.
func NewBoardsClient(httpClient *http.Client) *BoardsClient {
	return &BoardsClient{httpClient: httpClient}
}

// Create implements honeycomb.BoardsClient.Create.
func (c *BoardsClient) Create(ctx context.Context, request *honeycomb.BoardCreateRequest) (*honeycomb.Board, error) {
	if request.Name == "" {
		return nil, honeycomb.ErrBoardNameRequired
	}

	resp, err := c.httpClient.Post(ctx, "/1/boards", request)
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}

	var board honeycomb.Board

	err = decode(resp.Body, &board, "board")
	if err != nil {
		return nil, err
	}

	return &board, nil
}

// Get implements honeycomb.BoardsClient.Get.
func (c *BoardsClient) Get(ctx context.Context, id string) (*honeycomb.Board, error) {
	path := fmt.Sprintf("/1/boards/%s", url.PathEscape(id))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting board: %w", err)
	}

	var board honeycomb.Board

	err = decode(resp.Body, &board, "board")
	if err != nil {
		return nil, err
	}

	return &board, nil
}

// List implements honeycomb.BoardsClient.List.
func (c *BoardsClient) List(ctx context.Context) ([]honeycomb.Board, error) {
	resp, err := c.httpClient.Get(ctx, "/1/boards", nil)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}

	var boards []honeycomb.Board

	err = decode(resp.Body, &boards, "boards list")
	if err != nil {
		return nil, err
	}

	return boards, nil
}

// Update implements honeycomb.BoardsClient.Update.
func (c *BoardsClient) Update(ctx context.Context, id string, request *honeycomb.BoardCreateRequest) (*honeycomb.Board, error) {
	path := fmt.Sprintf("/1/boards/%s", url.PathEscape(id))

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating board: %w", err)
	}

	var board honeycomb.Board

	err = decode(resp.Body, &board, "board")
	if err != nil {
		return nil, err
	}

	return &board, nil
}

// Delete implements honeycomb.BoardsClient.Delete.
func (c *BoardsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/1/boards/%s", url.PathEscape(id))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting board: %w", err)
	}

	return nil
}
