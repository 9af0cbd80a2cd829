// Package honeycomb provides types, interfaces, and helpers for working
// with the Honeycomb API.
//
// # Overview
//
// The honeycomb package defines the domain types (e.g., Dataset, Trigger,
// SLO, BurnAlert, Recipient) and the interfaces for resource-oriented
// clients (e.g., DatasetsClient, TriggersClient). A concrete implementation
// of these clients is provided by the hnyclient package, which wires
// configuration, transport, and authentication. Most consumers should
// import hnyclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/irvingpop/honeycomb-go/pkg/honeycomb"
//	  "github.com/irvingpop/honeycomb-go/pkg/hnyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := hnyclient.New(ctx, &honeycomb.Config{APIKey: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  datasets, err := cli.Datasets().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = datasets
//	}
//
// # Queries
//
// QueryBuilder assembles query specifications fluently:
//
//	spec, err := honeycomb.NewQueryBuilder().
//	  LastMinutes(30).
//	  Count().
//	  Eq("status_code", 500).
//	  GroupBy("service.name").
//	  Build()
//
// # Bundles
//
// The trigger and SLO builders produce multi-resource creation plans
// ("bundles") that the client applies in dependency order, reusing existing
// resources where referenced and rolling back already-created steps on a
// mid-plan failure:
//
//	bundle, err := honeycomb.NewSLOBuilder("checkout availability").
//	  Datasets([]string{"frontend", "backend"}).
//	  NewSLI("sli.checkout", "LTE($duration_ms, 300)", "").
//	  TimePeriodDays(30).
//	  TargetNines(3).
//	  ExhaustionAlert(honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertExhaustionTime).
//	    ExhaustionMinutes(120).Email("oncall@example.com")).
//	  Build()
//	if err != nil { /* handle error */ }
//
//	result, err := cli.SLOs().CreateFromBundle(ctx, bundle)
//
// # Errors
//
// Remote errors are represented by DetailedError, carrying the HTTP status
// and any field-level validation details. Helpers such as IsNotFound,
// IsUnauthorized, IsConflict, and IsRateLimited make it easy to branch on
// common cases. A response status with no registered decoder produces an
// UnexpectedStatusError unless the client is configured to allow it.
package honeycomb
