package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/irvingpop/honeycomb-go/internal/constants"
	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// Client implements the honeycomb.Client interface.
type Client struct {
	httpClient *http.Client
	logger     honeycomb.Logger

	// Resource clients
	datasets       honeycomb.DatasetsClient
	columns        honeycomb.ColumnsClient
	derivedColumns honeycomb.DerivedColumnsClient
	queries        honeycomb.QueriesClient
	triggers       honeycomb.TriggersClient
	slos           honeycomb.SLOsClient
	burnAlerts     honeycomb.BurnAlertsClient
	recipients     honeycomb.RecipientsClient
	boards         honeycomb.BoardsClient
	markers        honeycomb.MarkersClient
	events         honeycomb.EventsClient
	environments   honeycomb.EnvironmentsClient
	apiKeys        honeycomb.APIKeysClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *honeycomb.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.AllowUnexpectedStatus {
		httpOpts = append(httpOpts, http.WithAllowUnexpectedStatus(true))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client from a config.
func New(config *honeycomb.Config) (*Client, error) {
	if config == nil {
		return nil, honeycomb.ErrConfigRequired
	}

	if config.APIKey == "" && config.ManagementKey == "" {
		return nil, honeycomb.ErrAPIKeyRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	credentials := http.Credentials{
		APIKey:        config.APIKey,
		ManagementKey: config.ManagementKey,
	}

	httpClient := http.NewClient(endpoint, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.datasets = NewDatasetsClient(c.httpClient)
	c.columns = NewColumnsClient(c.httpClient)
	c.derivedColumns = NewDerivedColumnsClient(c.httpClient)
	c.queries = NewQueriesClient(c.httpClient)
	c.triggers = NewTriggersClient(c.httpClient, c)
	c.slos = NewSLOsClient(c.httpClient, c)
	c.burnAlerts = NewBurnAlertsClient(c.httpClient)
	c.recipients = NewRecipientsClient(c.httpClient)
	c.boards = NewBoardsClient(c.httpClient)
	c.markers = NewMarkersClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
	c.environments = NewEnvironmentsClient(c.httpClient)
	c.apiKeys = NewAPIKeysClient(c.httpClient)
}

// Datasets implements honeycomb.Client.Datasets.
func (c *Client) Datasets() honeycomb.DatasetsClient {
	return c.datasets
}

// Columns implements honeycomb.Client.Columns.
func (c *Client) Columns() honeycomb.ColumnsClient {
	return c.columns
}

// DerivedColumns implements honeycomb.Client.DerivedColumns.
func (c *Client) DerivedColumns() honeycomb.DerivedColumnsClient {
	return c.derivedColumns
}

// Queries implements honeycomb.Client.Queries.
func (c *Client) Queries() honeycomb.QueriesClient {
	return c.queries
}

// Triggers implements honeycomb.Client.Triggers.
func (c *Client) Triggers() honeycomb.TriggersClient {
	return c.triggers
}

// SLOs implements honeycomb.Client.SLOs.
func (c *Client) SLOs() honeycomb.SLOsClient {
	return c.slos
}

// BurnAlerts implements honeycomb.Client.BurnAlerts.
func (c *Client) BurnAlerts() honeycomb.BurnAlertsClient {
	return c.burnAlerts
}

// Recipients implements honeycomb.Client.Recipients.
func (c *Client) Recipients() honeycomb.RecipientsClient {
	return c.recipients
}

// Boards implements honeycomb.Client.Boards.
func (c *Client) Boards() honeycomb.BoardsClient {
	return c.boards
}

// Markers implements honeycomb.Client.Markers.
func (c *Client) Markers() honeycomb.MarkersClient {
	return c.markers
}

// Events implements honeycomb.Client.Events.
func (c *Client) Events() honeycomb.EventsClient {
	return c.events
}

// Environments implements honeycomb.Client.Environments.
func (c *Client) Environments() honeycomb.EnvironmentsClient {
	return c.environments
}

// APIKeys implements honeycomb.Client.APIKeys.
func (c *Client) APIKeys() honeycomb.APIKeysClient {
	return c.apiKeys
}

// GetAuthInfo implements honeycomb.Client.GetAuthInfo.
func (c *Client) GetAuthInfo(ctx context.Context) (*honeycomb.AuthInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/1/auth", nil)
	if err != nil {
		return nil, fmt.Errorf("getting auth info: %w", err)
	}

	var info honeycomb.AuthInfo

	err = decode(resp.Body, &info, "auth info")
	if err != nil {
		return nil, err
	}

	return &info, nil
}

// decode unmarshals a 2xx response body. A body that fails to parse is a
// malformed response, surfaced as a fatal typed error.
func decode(body []byte, out interface{}, what string) error {
	err := json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("parsing %s response: %w: %v", what, honeycomb.ErrMalformedResponse, err)
	}

	return nil
}

// loggerAdapter adapts honeycomb.Logger to http.Logger.
type loggerAdapter struct {
	logger honeycomb.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
