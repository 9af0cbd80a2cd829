package commands

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/irvingpop/honeycomb-go/pkg/hnyclient"
	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Static errors used throughout the commands package.
var (
	ErrNoAPIKey = errors.New("no API key configured (set --api-key, HONEYCOMB_API_KEY, or run 'hny auth')")
)

// createClient builds a honeycomb client from viper configuration.
func createClient() (honeycomb.Client, error) {
	apiKey := viper.GetString("api_key")
	managementKey := viper.GetString("management_key")

	if apiKey == "" && managementKey == "" {
		return nil, ErrNoAPIKey
	}

	config := &honeycomb.Config{
		APIEndpoint:   viper.GetString("api"),
		APIKey:        apiKey,
		ManagementKey: managementKey,
	}

	return hnyclient.New(config)
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(v)
}

// yesNo formats a bool for table cells.
func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
