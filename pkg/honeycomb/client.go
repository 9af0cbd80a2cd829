package honeycomb

import (
	"context"
	"time"
)

// DatasetsClient manages datasets.
type DatasetsClient interface {
	Create(ctx context.Context, request *DatasetCreateRequest) (*Dataset, error)
	Get(ctx context.Context, slug string) (*Dataset, error)
	List(ctx context.Context) ([]Dataset, error)
	Update(ctx context.Context, slug string, request *DatasetUpdateRequest) (*Dataset, error)
	Delete(ctx context.Context, slug string) error
}

// ColumnsClient manages columns within a dataset.
type ColumnsClient interface {
	Create(ctx context.Context, dataset string, request *ColumnCreateRequest) (*Column, error)
	Get(ctx context.Context, dataset, id string) (*Column, error)
	GetByKeyName(ctx context.Context, dataset, keyName string) (*Column, error)
	List(ctx context.Context, dataset string) ([]Column, error)
	Update(ctx context.Context, dataset, id string, request *ColumnCreateRequest) (*Column, error)
	Delete(ctx context.Context, dataset, id string) error
}

// DerivedColumnsClient manages derived columns within a dataset, or
// environment-wide via the __all__ sentinel.
type DerivedColumnsClient interface {
	Create(ctx context.Context, dataset string, request *DerivedColumnCreateRequest) (*DerivedColumn, error)
	Get(ctx context.Context, dataset, id string) (*DerivedColumn, error)
	GetByAlias(ctx context.Context, dataset, alias string) (*DerivedColumn, error)
	List(ctx context.Context, dataset string) ([]DerivedColumn, error)
	Update(ctx context.Context, dataset, id string, request *DerivedColumnCreateRequest) (*DerivedColumn, error)
	Delete(ctx context.Context, dataset, id string) error
}

// QueriesClient manages saved queries. Queries are immutable server-side,
// so there is no update or delete.
type QueriesClient interface {
	Create(ctx context.Context, dataset string, spec *QuerySpec) (*Query, error)
	Get(ctx context.Context, dataset, id string) (*Query, error)
}

// TriggersClient manages triggers.
type TriggersClient interface {
	Create(ctx context.Context, dataset string, request *TriggerCreateRequest) (*Trigger, error)
	Get(ctx context.Context, dataset, id string) (*Trigger, error)
	List(ctx context.Context, dataset string) ([]Trigger, error)
	Update(ctx context.Context, dataset, id string, request *TriggerCreateRequest) (*Trigger, error)
	Delete(ctx context.Context, dataset, id string) error
	CreateFromBundle(ctx context.Context, bundle *Bundle) (*BundleResult, error)
}

// SLOsClient manages service level objectives.
type SLOsClient interface {
	Create(ctx context.Context, dataset string, request *SLOCreateRequest) (*SLO, error)
	Get(ctx context.Context, dataset, id string, detailed bool) (*SLO, error)
	List(ctx context.Context, dataset string) ([]SLO, error)
	Update(ctx context.Context, dataset, id string, request *SLOCreateRequest) (*SLO, error)
	Delete(ctx context.Context, dataset, id string) error
	CreateFromBundle(ctx context.Context, bundle *Bundle) (*BundleResult, error)
}

// BurnAlertsClient manages burn alerts attached to SLOs.
type BurnAlertsClient interface {
	Create(ctx context.Context, dataset string, request *BurnAlertCreateRequest) (*BurnAlert, error)
	Get(ctx context.Context, dataset, id string) (*BurnAlert, error)
	ListForSLO(ctx context.Context, dataset, sloID string) ([]BurnAlert, error)
	Update(ctx context.Context, dataset, id string, request *BurnAlertCreateRequest) (*BurnAlert, error)
	Delete(ctx context.Context, dataset, id string) error
}

// RecipientsClient manages environment-scoped notification recipients.
type RecipientsClient interface {
	Create(ctx context.Context, request *RecipientCreateRequest) (*Recipient, error)
	Get(ctx context.Context, id string) (*Recipient, error)
	List(ctx context.Context) ([]Recipient, error)
	Update(ctx context.Context, id string, request *RecipientCreateRequest) (*Recipient, error)
	Delete(ctx context.Context, id string) error
}

// BoardsClient manages boards.
type BoardsClient interface {
	Create(ctx context.Context, request *BoardCreateRequest) (*Board, error)
	Get(ctx context.Context, id string) (*Board, error)
	List(ctx context.Context) ([]Board, error)
	Update(ctx context.Context, id string, request *BoardCreateRequest) (*Board, error)
	Delete(ctx context.Context, id string) error
}

// MarkersClient manages dataset markers.
type MarkersClient interface {
	Create(ctx context.Context, dataset string, request *MarkerCreateRequest) (*Marker, error)
	List(ctx context.Context, dataset string) ([]Marker, error)
	Update(ctx context.Context, dataset, id string, request *MarkerCreateRequest) (*Marker, error)
	Delete(ctx context.Context, dataset, id string) error
	ListSettings(ctx context.Context, dataset string) ([]MarkerSetting, error)
}

// EventsClient sends telemetry events.
type EventsClient interface {
	Send(ctx context.Context, dataset string, event *Event) error
	SendBatch(ctx context.Context, dataset string, events []Event) ([]BatchEventStatus, error)
}

// EnvironmentsClient manages environments via the v2 API.
type EnvironmentsClient interface {
	Create(ctx context.Context, request *EnvironmentCreateRequest) (*Environment, error)
	Get(ctx context.Context, id string) (*Environment, error)
	List(ctx context.Context) (*ListResponse[Environment], error)
	ListAll(ctx context.Context) ([]Environment, error)
	Update(ctx context.Context, id string, request *EnvironmentUpdateRequest) (*Environment, error)
	Delete(ctx context.Context, id string) error
}

// APIKeysClient manages ingest API keys via the v2 API.
type APIKeysClient interface {
	Create(ctx context.Context, request *APIKeyCreateRequest) (*APIKey, error)
	Get(ctx context.Context, id string) (*APIKey, error)
	List(ctx context.Context) (*ListResponse[APIKey], error)
	ListAll(ctx context.Context) ([]APIKey, error)
	Update(ctx context.Context, id string, request *APIKeyUpdateRequest) (*APIKey, error)
	Delete(ctx context.Context, id string) error
}

// Client is the facade over all resource family clients.
type Client interface {
	Datasets() DatasetsClient
	Columns() ColumnsClient
	DerivedColumns() DerivedColumnsClient
	Queries() QueriesClient
	Triggers() TriggersClient
	SLOs() SLOsClient
	BurnAlerts() BurnAlertsClient
	Recipients() RecipientsClient
	Boards() BoardsClient
	Markers() MarkersClient
	Events() EventsClient
	Environments() EnvironmentsClient
	APIKeys() APIKeysClient

	// GetAuthInfo introspects the configured API key.
	GetAuthInfo(ctx context.Context) (*AuthInfo, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a honeycomb.Client.
//
// # Authentication
//
// APIKey is sent as the X-Honeycomb-Team header on v1 endpoints. The
// management API (v2 endpoints: environments, API keys) instead requires
// ManagementKey, sent as a Bearer token. Header names and value formats are
// fixed by the remote service; the client only selects which to attach.
//
// # Retries
//
// No request is retried unless RetryMax is set above zero. Bundle
// orchestration never retries; a mid-bundle failure triggers best-effort
// rollback of the steps already applied.
type Config struct {
	// APIEndpoint: base URL for the API (default "https://api.honeycomb.io").
	APIEndpoint string

	// APIKey: environment API key, sent as X-Honeycomb-Team on v1 paths.
	APIKey string

	// ManagementKey: management key ("id:secret"), sent as a Bearer token on
	// v2 paths. Only needed for Environments and APIKeys clients.
	ManagementKey string

	// RetryMax: maximum number of retries for transient failures (5xx, 429,
	// connection errors). Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and the
	// bundle executor.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// AllowUnexpectedStatus: when true, a response with a status code that
	// has no registered decoder is returned as-is instead of producing an
	// UnexpectedStatusError.
	AllowUnexpectedStatus bool
}
