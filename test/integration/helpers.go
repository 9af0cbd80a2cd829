//go:build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-go/pkg/hnyclient"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// TestConfig holds configuration for integration tests, loaded from the
// environment. Tests skip themselves when required values are missing so
// the suite is safe to run everywhere.
type TestConfig struct {
	APIKey        string
	ManagementKey string
	APIEndpoint   string
	Dataset       string
	Verbose       bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:        os.Getenv("HONEYCOMB_API_KEY"),
		ManagementKey: os.Getenv("HONEYCOMB_MANAGEMENT_KEY"),
		APIEndpoint:   os.Getenv("HONEYCOMB_API_ENDPOINT"),
		Dataset:       os.Getenv("HONEYCOMB_TEST_DATASET"),
		Verbose:       os.Getenv("HONEYCOMB_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when the environment is not set up for
// live API access.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("HONEYCOMB_API_KEY not set, skipping integration test")
	}

	if config.Dataset == "" {
		t.Skip("HONEYCOMB_TEST_DATASET not set, skipping integration test")
	}
}

// SkipIfMissingManagementKey skips tests that need the v2 management API.
func (config *TestConfig) SkipIfMissingManagementKey(t *testing.T) {
	t.Helper()

	if config.ManagementKey == "" {
		t.Skip("HONEYCOMB_MANAGEMENT_KEY not set, skipping integration test")
	}
}

// NewClient builds a client against the configured endpoint.
func (config *TestConfig) NewClient(t *testing.T) honeycomb.Client {
	t.Helper()

	cfg := &honeycomb.Config{
		APIKey:        config.APIKey,
		ManagementKey: config.ManagementKey,
		RetryMax:      2,
	}
	if config.APIEndpoint != "" {
		cfg.APIEndpoint = config.APIEndpoint
	}

	client, err := hnyclient.New(cfg)
	require.NoError(t, err)

	return client
}

// GenerateTestName returns a name unique enough to avoid collisions between
// concurrent suite runs.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
