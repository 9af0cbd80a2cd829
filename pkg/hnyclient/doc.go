// Package hnyclient provides the primary entry point for constructing a
// Honeycomb API client that implements the honeycomb.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the honeycomb package. Most applications
// should import hnyclient to build a client, then use the returned
// honeycomb.Client to access resource-specific clients, for example
// Datasets(), Triggers(), SLOs(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/irvingpop/honeycomb-go/pkg/hnyclient"
//	  "github.com/irvingpop/honeycomb-go/pkg/honeycomb"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an environment API key.
//	  cli, err := hnyclient.NewWithAPIKey("hcaik_...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full config:
//	  cli, err = hnyclient.New(&honeycomb.Config{
//	    APIKey:   "hcaik_...",
//	    RetryMax: 3,
//	    // ManagementKey: "id:secret", // only for Environments()/APIKeys()
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  datasets, err := cli.Datasets().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = datasets
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey and
// NewWithManagementKey that wrap New with the appropriate configuration.
package hnyclient
