package constants

import "time"

// Default API endpoint.
const (
	// DefaultAPIEndpoint is the public Honeycomb API host.
	DefaultAPIEndpoint = "https://api.honeycomb.io"
)

// Authentication header names, fixed by the remote service's contract.
const (
	// TeamKeyHeader carries the environment API key on v1 endpoints.
	TeamKeyHeader = "X-Honeycomb-Team"

	// EventTimeHeader carries an explicit timestamp on single-event sends.
	EventTimeHeader = "X-Honeycomb-Event-Time"

	// SampleRateHeader carries the sample rate on single-event sends.
	SampleRateHeader = "X-Honeycomb-Samplerate"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are off unless configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Trigger evaluation frequency bounds, in seconds.
const (
	// MinTriggerFrequency is the shortest allowed evaluation interval.
	MinTriggerFrequency = 60

	// MaxTriggerFrequency is the longest allowed evaluation interval.
	MaxTriggerFrequency = 86400
)
