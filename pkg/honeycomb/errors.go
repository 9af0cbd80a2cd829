package honeycomb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DetailedError represents an error body returned by the Honeycomb API.
// Newer endpoints return RFC 7807 style bodies with per-field details;
// older endpoints return a bare {"error": "..."} message. Both decode
// into this type.
type DetailedError struct {
	StatusCode int           `json:"status,omitempty"`
	Type       string        `json:"type,omitempty"`
	Title      string        `json:"title,omitempty"`
	Message    string        `json:"error,omitempty"`
	Details    []ErrorDetail `json:"type_detail,omitempty"`
}

// ErrorDetail is a single field-level validation failure inside a 422
// response.
type ErrorDetail struct {
	Code        string `json:"code"`
	Field       string `json:"field"`
	Description string `json:"description"`
}

// Error implements the error interface.
func (e *DetailedError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Title
	}

	if len(e.Details) > 0 {
		return fmt.Sprintf("%s (status: %d, %d validation errors)", msg, e.StatusCode, len(e.Details))
	}

	return fmt.Sprintf("%s (status: %d)", msg, e.StatusCode)
}

// UnexpectedStatusError is returned when the server responds with a status
// code that has no registered decoder for the endpoint.
type UnexpectedStatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, string(e.Body))
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrMalformedResponse   = errors.New("malformed response body")

	// Query builder validation.
	ErrIncompatibleQuery = errors.New("query is not usable for a trigger")

	// Resource builder validation.
	ErrMissingAlias           = errors.New("derived column alias is required")
	ErrMissingExpression      = errors.New("derived column expression is required")
	ErrMissingDataset         = errors.New("target dataset is required")
	ErrMissingThreshold       = errors.New("trigger threshold is required")
	ErrMissingQuery           = errors.New("trigger query is required")
	ErrMissingSLI             = errors.New("SLO requires an SLI reference")
	ErrMissingTimePeriod      = errors.New("SLO time period is required")
	ErrMissingTarget          = errors.New("SLO target is required")
	ErrMissingRecipient       = errors.New("burn alert requires a recipient")
	ErrAmbiguousRecipient     = errors.New("burn alert accepts either a recipient ID or an inline recipient, not both")
	ErrMissingExhaustionTime  = errors.New("exhaustion_time burn alert requires exhaustion minutes")
	ErrMissingBudgetRate      = errors.New("budget_rate burn alert requires a window and threshold")
	ErrInvalidNines           = errors.New("target nines must be between 1 and 5")
	ErrUnsupportedStepKind    = errors.New("unsupported bundle step kind")
	ErrStepOutOfOrder         = errors.New("bundle step references an unresolved earlier step")
	ErrEmptyBundle            = errors.New("bundle has no steps")
	ErrRecipientDetailsShape  = errors.New("recipient details do not match recipient type")
	ErrWebhookURLRequired     = errors.New("webhook recipient requires a URL")
	ErrEmailAddressRequired   = errors.New("email recipient requires an address")
	ErrNoMoreItems            = errors.New("no more items")
	ErrManagementKeyRequired  = errors.New("management key is required for v2 endpoints")
	ErrEventPayloadRequired   = errors.New("event payload is required")
	ErrDatasetNameRequired    = errors.New("dataset name is required")
	ErrMarkerMessageRequired  = errors.New("marker message is required")
	ErrBoardNameRequired      = errors.New("board name is required")
	ErrTriggerFrequencyRange  = errors.New("trigger frequency must be between 60 and 86400 seconds")
	ErrThresholdPercentRange  = errors.New("budget rate threshold percent must be between 0 and 100")
	ErrTimePeriodPositive     = errors.New("SLO time period must be positive")
	ErrExhaustionNonNegative  = errors.New("exhaustion minutes must not be negative")
	ErrQueryCalculationColumn = errors.New("calculation requires a column")
)

// decoders maps documented error statuses to the typed decode path. An
// undocumented status falls through to UnexpectedStatusError handling.
var registeredErrorStatuses = map[int]struct{}{
	http.StatusBadRequest:            {},
	http.StatusUnauthorized:          {},
	http.StatusForbidden:             {},
	http.StatusNotFound:              {},
	http.StatusConflict:              {},
	http.StatusRequestEntityTooLarge: {},
	http.StatusUnprocessableEntity:   {},
	http.StatusTooManyRequests:       {},
	http.StatusInternalServerError:   {},
	http.StatusBadGateway:            {},
	http.StatusServiceUnavailable:    {},
	http.StatusGatewayTimeout:        {},
}

// IsRegisteredErrorStatus reports whether the status code has a registered
// error decoder.
func IsRegisteredErrorStatus(code int) bool {
	_, ok := registeredErrorStatuses[code]

	return ok
}

// DecodeErrorResponse decodes an error body for a registered status into a
// DetailedError. A body that does not parse still yields a DetailedError
// carrying the raw text, so the status code is never lost.
func DecodeErrorResponse(statusCode int, body []byte) *DetailedError {
	var detailed DetailedError

	err := json.Unmarshal(body, &detailed)
	if err != nil || (detailed.Message == "" && detailed.Title == "") {
		detailed.Message = string(body)
	}

	detailed.StatusCode = statusCode

	return &detailed
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsConflict checks if the error is a conflict, e.g. deleting a
// delete-protected dataset.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, statusCode int) bool {
	detailed := &DetailedError{}
	if errors.As(err, &detailed) {
		return detailed.StatusCode == statusCode
	}

	return false
}
