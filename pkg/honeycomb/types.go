package honeycomb

import (
	"time"
)

// EnvironmentWideDataset is the sentinel dataset slug for resources that
// apply to every dataset in an environment.
const EnvironmentWideDataset = "__all__"

// Dataset represents a Honeycomb dataset.
type Dataset struct {
	Name            string           `json:"name"                        yaml:"name"`
	Slug            string           `json:"slug"                        yaml:"slug"`
	Description     string           `json:"description,omitempty"       yaml:"description,omitempty"`
	ExpandJSONDepth int              `json:"expand_json_depth,omitempty" yaml:"expand_json_depth,omitempty"`
	Settings        *DatasetSettings `json:"settings,omitempty"          yaml:"settings,omitempty"`
	CreatedAt       *time.Time       `json:"created_at,omitempty"        yaml:"created_at,omitempty"`
	LastWrittenAt   *time.Time       `json:"last_written_at,omitempty"   yaml:"last_written_at,omitempty"`
}

// DatasetSettings holds mutable dataset settings.
type DatasetSettings struct {
	DeleteProtected *bool `json:"delete_protected,omitempty" yaml:"delete_protected,omitempty"`
}

// DatasetCreateRequest is the body for dataset creation.
type DatasetCreateRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	ExpandJSONDepth int    `json:"expand_json_depth,omitempty"`
}

// DatasetUpdateRequest is the body for dataset updates.
type DatasetUpdateRequest struct {
	Description     string           `json:"description,omitempty"`
	ExpandJSONDepth int              `json:"expand_json_depth,omitempty"`
	Settings        *DatasetSettings `json:"settings,omitempty"`
}

// Column represents a dataset column.
type Column struct {
	ID          string     `json:"id,omitempty"          yaml:"id,omitempty"`
	KeyName     string     `json:"key_name"              yaml:"key_name"`
	Type        string     `json:"type,omitempty"        yaml:"type,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Hidden      bool       `json:"hidden,omitempty"      yaml:"hidden,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
	LastWritten *time.Time `json:"last_written,omitempty" yaml:"last_written,omitempty"`
}

// ColumnCreateRequest is the body for column creation.
type ColumnCreateRequest struct {
	KeyName     string `json:"key_name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// DerivedColumn represents a derived (calculated) column.
type DerivedColumn struct {
	ID          string `json:"id,omitempty"          yaml:"id,omitempty"`
	Alias       string `json:"alias"                 yaml:"alias"`
	Expression  string `json:"expression"            yaml:"expression"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DerivedColumnCreateRequest is the body for derived column creation.
type DerivedColumnCreateRequest struct {
	Alias       string `json:"alias"`
	Expression  string `json:"expression"`
	Description string `json:"description,omitempty"`
}

// Query represents a saved query specification.
type Query struct {
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	QuerySpec
}

// Trigger represents an alerting trigger.
type Trigger struct {
	ID          string         `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string         `json:"name"                  yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Threshold   *Threshold     `json:"threshold,omitempty"   yaml:"threshold,omitempty"`
	Frequency   int            `json:"frequency,omitempty"   yaml:"frequency,omitempty"`
	AlertType   string         `json:"alert_type,omitempty"  yaml:"alert_type,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"    yaml:"disabled,omitempty"`
	Triggered   bool           `json:"triggered,omitempty"   yaml:"triggered,omitempty"`
	Query       *QuerySpec     `json:"query,omitempty"       yaml:"query,omitempty"`
	QueryID     string         `json:"query_id,omitempty"    yaml:"query_id,omitempty"`
	Recipients  []RecipientRef `json:"recipients,omitempty"  yaml:"recipients,omitempty"`
}

// Threshold is a trigger firing condition.
type Threshold struct {
	Op    ThresholdOp `json:"op"`
	Value float64     `json:"value"`
}

// ThresholdOp is a threshold comparison operator.
type ThresholdOp string

// Threshold comparison operators.
const (
	ThresholdOpGT  ThresholdOp = ">"
	ThresholdOpGTE ThresholdOp = ">="
	ThresholdOpLT  ThresholdOp = "<"
	ThresholdOpLTE ThresholdOp = "<="
)

// TriggerCreateRequest is the body for trigger creation.
type TriggerCreateRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Threshold   *Threshold     `json:"threshold"`
	Frequency   int            `json:"frequency,omitempty"`
	AlertType   string         `json:"alert_type,omitempty"`
	Disabled    bool           `json:"disabled,omitempty"`
	Query       *QuerySpec     `json:"query,omitempty"`
	QueryID     string         `json:"query_id,omitempty"`
	Recipients  []RecipientRef `json:"recipients,omitempty"`
}

// SLO represents a service level objective.
type SLO struct {
	ID               string        `json:"id,omitempty"                yaml:"id,omitempty"`
	Name             string        `json:"name"                        yaml:"name"`
	Description      string        `json:"description,omitempty"       yaml:"description,omitempty"`
	TimePeriodDays   int           `json:"time_period_days"            yaml:"time_period_days"`
	TargetPerMillion int           `json:"target_per_million"          yaml:"target_per_million"`
	SLI              SLIRef        `json:"sli"                         yaml:"sli"`
	DatasetSlugs     []string      `json:"dataset_slugs,omitempty"     yaml:"dataset_slugs,omitempty"`
	Report           *SLOReport    `json:"report,omitempty"            yaml:"report,omitempty"`
	CreatedAt        *time.Time    `json:"created_at,omitempty"        yaml:"created_at,omitempty"`
	UpdatedAt        *time.Time    `json:"updated_at,omitempty"        yaml:"updated_at,omitempty"`
}

// SLIRef references the derived column evaluated by an SLO.
type SLIRef struct {
	Alias string `json:"alias"`
}

// SLOReport carries detailed compliance data when the detailed flag is set
// on a get.
type SLOReport struct {
	Compliance      float64 `json:"compliance"`
	BudgetRemaining float64 `json:"budget_remaining"`
}

// SLOCreateRequest is the body for SLO creation.
type SLOCreateRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	TimePeriodDays   int    `json:"time_period_days"`
	TargetPerMillion int    `json:"target_per_million"`
	SLI              SLIRef `json:"sli"`
}

// BurnAlertKind selects the burn alert evaluation mode.
type BurnAlertKind string

// Burn alert kinds.
const (
	BurnAlertExhaustionTime BurnAlertKind = "exhaustion_time"
	BurnAlertBudgetRate     BurnAlertKind = "budget_rate"
)

// BurnAlert represents a burn alert attached to an SLO.
type BurnAlert struct {
	ID                                    string         `json:"id,omitempty"                                        yaml:"id,omitempty"`
	AlertType                             BurnAlertKind  `json:"alert_type"                                          yaml:"alert_type"`
	ExhaustionMinutes                     *int           `json:"exhaustion_minutes,omitempty"                        yaml:"exhaustion_minutes,omitempty"`
	BudgetRateWindowMinutes               *int           `json:"budget_rate_window_minutes,omitempty"                yaml:"budget_rate_window_minutes,omitempty"`
	BudgetRateDecreaseThresholdPerMillion *int           `json:"budget_rate_decrease_threshold_per_million,omitempty" yaml:"budget_rate_decrease_threshold_per_million,omitempty"`
	SLO                                   SLOIDRef       `json:"slo"                                                 yaml:"slo"`
	Recipients                            []RecipientRef `json:"recipients,omitempty"                                yaml:"recipients,omitempty"`
}

// SLOIDRef references an SLO by ID.
type SLOIDRef struct {
	ID string `json:"id"`
}

// BurnAlertCreateRequest is the body for burn alert creation. The SLO ID is
// filled in by the bundle executor once the SLO exists.
type BurnAlertCreateRequest struct {
	AlertType                             BurnAlertKind  `json:"alert_type"`
	ExhaustionMinutes                     *int           `json:"exhaustion_minutes,omitempty"`
	BudgetRateWindowMinutes               *int           `json:"budget_rate_window_minutes,omitempty"`
	BudgetRateDecreaseThresholdPerMillion *int           `json:"budget_rate_decrease_threshold_per_million,omitempty"`
	SLO                                   SLOIDRef       `json:"slo"`
	Recipients                            []RecipientRef `json:"recipients,omitempty"`
}

// RecipientType identifies the notification channel of a recipient.
type RecipientType string

// Recipient types.
const (
	RecipientEmail     RecipientType = "email"
	RecipientWebhook   RecipientType = "webhook"
	RecipientSlack     RecipientType = "slack"
	RecipientPagerDuty RecipientType = "pagerduty"
	RecipientMSTeams   RecipientType = "msteams"
	RecipientZenoss    RecipientType = "zenoss"
)

// Recipient represents a notification recipient.
type Recipient struct {
	ID        string           `json:"id,omitempty"         yaml:"id,omitempty"`
	Type      RecipientType    `json:"type"                 yaml:"type"`
	Details   RecipientDetails `json:"details"              yaml:"details"`
	CreatedAt *time.Time       `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// RecipientDetails carries the type-specific recipient fields. The shape is
// implied by the recipient type; decoding tries the richer webhook fields
// first since shapes overlap.
type RecipientDetails struct {
	EmailAddress      string            `json:"email_address,omitempty"      yaml:"email_address,omitempty"`
	WebhookURL        string            `json:"webhook_url,omitempty"        yaml:"webhook_url,omitempty"`
	WebhookName       string            `json:"webhook_name,omitempty"       yaml:"webhook_name,omitempty"`
	WebhookSecret     string            `json:"webhook_secret,omitempty"     yaml:"webhook_secret,omitempty"`
	WebhookHeaders    []WebhookHeader   `json:"webhook_headers,omitempty"    yaml:"webhook_headers,omitempty"`
	WebhookPayloads   *WebhookPayloads  `json:"webhook_payloads,omitempty"   yaml:"webhook_payloads,omitempty"`
	SlackChannel      string            `json:"slack_channel,omitempty"      yaml:"slack_channel,omitempty"`
	PagerDutyKey      string            `json:"pagerduty_integration_key,omitempty" yaml:"pagerduty_integration_key,omitempty"`
	PagerDutyName     string            `json:"pagerduty_integration_name,omitempty" yaml:"pagerduty_integration_name,omitempty"`
}

// WebhookHeader is a custom header sent with webhook notifications.
type WebhookHeader struct {
	Key   string `json:"header"`
	Value string `json:"value"`
}

// WebhookPayloads customizes webhook notification bodies.
type WebhookPayloads struct {
	PayloadTemplates  map[string]string `json:"payload_templates,omitempty"`
	TemplateVariables []WebhookVariable `json:"template_variables,omitempty"`
}

// WebhookVariable is a user-defined template variable with a default.
type WebhookVariable struct {
	Name    string `json:"name"`
	Default string `json:"default_value,omitempty"`
}

// RecipientCreateRequest is the body for recipient creation.
type RecipientCreateRequest struct {
	Type    RecipientType    `json:"type"`
	Details RecipientDetails `json:"details"`
}

// RecipientRef names a recipient inside a trigger or burn alert: either an
// existing recipient by ID, or an inline spec the bundle executor realizes
// into an ID before use.
type RecipientRef struct {
	ID     string                  `json:"id,omitempty"     yaml:"id,omitempty"`
	Type   RecipientType           `json:"type,omitempty"   yaml:"type,omitempty"`
	Target string                  `json:"target,omitempty" yaml:"target,omitempty"`
	Create *RecipientCreateRequest `json:"-"                yaml:"-"`
}

// Board represents a saved board of queries.
type Board struct {
	ID          string       `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string       `json:"name"                  yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Style       string       `json:"style,omitempty"       yaml:"style,omitempty"`
	Queries     []BoardQuery `json:"queries,omitempty"     yaml:"queries,omitempty"`
}

// BoardQuery is a single panel on a board.
type BoardQuery struct {
	Caption    string     `json:"caption,omitempty"`
	Dataset    string     `json:"dataset,omitempty"`
	QueryID    string     `json:"query_id,omitempty"`
	Query      *QuerySpec `json:"query,omitempty"`
	QueryStyle string     `json:"query_style,omitempty"`
}

// BoardCreateRequest is the body for board creation.
type BoardCreateRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Style       string       `json:"style,omitempty"`
	Queries     []BoardQuery `json:"queries,omitempty"`
}

// Marker represents a point-in-time annotation on a dataset.
type Marker struct {
	ID        string `json:"id,omitempty"         yaml:"id,omitempty"`
	Message   string `json:"message"              yaml:"message"`
	Type      string `json:"type,omitempty"       yaml:"type,omitempty"`
	StartTime int64  `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   int64  `json:"end_time,omitempty"   yaml:"end_time,omitempty"`
	URL       string `json:"url,omitempty"        yaml:"url,omitempty"`
}

// MarkerCreateRequest is the body for marker creation.
type MarkerCreateRequest struct {
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	StartTime int64  `json:"start_time,omitempty"`
	EndTime   int64  `json:"end_time,omitempty"`
	URL       string `json:"url,omitempty"`
}

// MarkerSetting describes the display of a marker type.
type MarkerSetting struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Type  string `json:"type"         yaml:"type"`
	Color string `json:"color"        yaml:"color"`
}

// Event is a single telemetry event to send to a dataset.
type Event struct {
	Data       map[string]interface{} `json:"data"`
	Timestamp  *time.Time             `json:"time,omitempty"`
	SampleRate int                    `json:"samplerate,omitempty"`
}

// BatchEventStatus is the per-event result of a batch send.
type BatchEventStatus struct {
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Environment represents a Honeycomb environment (v2 API).
type Environment struct {
	ID          string             `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string             `json:"name"                  yaml:"name"`
	Slug        string             `json:"slug,omitempty"        yaml:"slug,omitempty"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Color       string             `json:"color,omitempty"       yaml:"color,omitempty"`
	Settings    *EnvironmentSettings `json:"settings,omitempty"  yaml:"settings,omitempty"`
}

// EnvironmentSettings holds mutable environment settings.
type EnvironmentSettings struct {
	DeleteProtected *bool `json:"delete_protected,omitempty" yaml:"delete_protected,omitempty"`
}

// EnvironmentCreateRequest is the body for environment creation.
type EnvironmentCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// EnvironmentUpdateRequest is the body for environment updates.
type EnvironmentUpdateRequest struct {
	Description string               `json:"description,omitempty"`
	Color       string               `json:"color,omitempty"`
	Settings    *EnvironmentSettings `json:"settings,omitempty"`
}

// APIKey represents an ingest API key (v2 API).
type APIKey struct {
	ID          string     `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string     `json:"name"                  yaml:"name"`
	KeyType     string     `json:"key_type,omitempty"    yaml:"key_type,omitempty"`
	Disabled    bool       `json:"disabled,omitempty"    yaml:"disabled,omitempty"`
	Environment *IDRef     `json:"environment,omitempty" yaml:"environment,omitempty"`
	Secret      string     `json:"secret,omitempty"      yaml:"secret,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
}

// IDRef references another resource by ID.
type IDRef struct {
	ID string `json:"id"`
}

// APIKeyCreateRequest is the body for API key creation.
type APIKeyCreateRequest struct {
	Name        string `json:"name"`
	KeyType     string `json:"key_type"`
	Environment IDRef  `json:"environment"`
}

// APIKeyUpdateRequest is the body for API key updates.
type APIKeyUpdateRequest struct {
	Name     string `json:"name,omitempty"`
	Disabled *bool  `json:"disabled,omitempty"`
}

// AuthInfo is the response of the /1/auth introspection endpoint.
type AuthInfo struct {
	APIKeyAccess map[string]bool `json:"api_key_access" yaml:"api_key_access"`
	Environment  AuthScope       `json:"environment"    yaml:"environment"`
	Team         AuthScope       `json:"team"           yaml:"team"`
}

// AuthScope names a team or environment the key is scoped to.
type AuthScope struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// ListResponse is the envelope of paginated v2 list endpoints.
type ListResponse[T any] struct {
	Data  []T       `json:"data"`
	Links PageLinks `json:"links"`
}

// PageLinks carries cursor pagination links.
type PageLinks struct {
	NextURL string `json:"next_url,omitempty"`
}
