package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/irvingpop/honeycomb-go/internal/constants"
	"github.com/irvingpop/honeycomb-go/internal/http"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// EventsClient implements honeycomb.EventsClient.
type EventsClient struct {
	httpClient *http.Client
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient *http.Client) *EventsClient {
	return &EventsClient{httpClient: httpClient}
}

// Send implements honeycomb.EventsClient.Send. A single event is posted with
// its fields as the body; timestamp and sample rate travel in headers.
func (c *EventsClient) Send(ctx context.Context, dataset string, event *honeycomb.Event) error {
	if event == nil || len(event.Data) == 0 {
		return honeycomb.ErrEventPayloadRequired
	}

	path := fmt.Sprintf("/1/events/%s", url.PathEscape(dataset))

	headers := map[string]string{}
	if event.Timestamp != nil {
		headers[constants.EventTimeHeader] = event.Timestamp.Format(time.RFC3339Nano)
	}

	if event.SampleRate > 0 {
		headers[constants.SampleRateHeader] = strconv.Itoa(event.SampleRate)
	}

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    path,
		Headers: headers,
		Body:    event.Data,
	})
	if err != nil {
		return fmt.Errorf("sending event: %w", err)
	}

	return nil
}

// SendBatch implements honeycomb.EventsClient.SendBatch. The batch endpoint
// accepts partial failures: the call succeeds whenever the envelope does, and
// per-event outcomes are reported in the returned statuses.
func (c *EventsClient) SendBatch(ctx context.Context, dataset string, events []honeycomb.Event) ([]honeycomb.BatchEventStatus, error) {
	if len(events) == 0 {
		return nil, honeycomb.ErrEventPayloadRequired
	}

	path := fmt.Sprintf("/1/batch/%s", url.PathEscape(dataset))

	resp, err := c.httpClient.Post(ctx, path, events)
	if err != nil {
		return nil, fmt.Errorf("sending event batch: %w", err)
	}

	var statuses []honeycomb.BatchEventStatus

	err = decode(resp.Body, &statuses, "batch event statuses")
	if err != nil {
		return nil, err
	}

	return statuses, nil
}
