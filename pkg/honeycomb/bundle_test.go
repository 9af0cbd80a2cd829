package honeycomb_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

var errRemote = errors.New("remote failure")

// fakeClient implements honeycomb.Client over in-memory recorders. Every
// create and delete is appended to ops so tests can assert ordering.
type fakeClient struct {
	ops []string

	// failCreate makes the named create call fail, e.g. "slo:checkout".
	failCreate map[string]bool
	// failDelete makes the named delete call fail, e.g. "delete slo:slo-1".
	failDelete map[string]bool

	nextID int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		failCreate: make(map[string]bool),
		failDelete: make(map[string]bool),
	}
}

func (c *fakeClient) record(op string) {
	c.ops = append(c.ops, op)
}

func (c *fakeClient) id(prefix string) string {
	c.nextID++

	return fmt.Sprintf("%s-%d", prefix, c.nextID)
}

func (c *fakeClient) Datasets() honeycomb.DatasetsClient             { return nil }
func (c *fakeClient) Columns() honeycomb.ColumnsClient               { return nil }
func (c *fakeClient) Queries() honeycomb.QueriesClient               { return nil }
func (c *fakeClient) Boards() honeycomb.BoardsClient                 { return nil }
func (c *fakeClient) Markers() honeycomb.MarkersClient               { return nil }
func (c *fakeClient) Events() honeycomb.EventsClient                 { return nil }
func (c *fakeClient) Environments() honeycomb.EnvironmentsClient     { return nil }
func (c *fakeClient) APIKeys() honeycomb.APIKeysClient               { return nil }
func (c *fakeClient) DerivedColumns() honeycomb.DerivedColumnsClient { return &fakeDerivedColumns{c} }
func (c *fakeClient) SLOs() honeycomb.SLOsClient                     { return &fakeSLOs{c} }
func (c *fakeClient) BurnAlerts() honeycomb.BurnAlertsClient         { return &fakeBurnAlerts{c} }
func (c *fakeClient) Triggers() honeycomb.TriggersClient             { return &fakeTriggers{c} }
func (c *fakeClient) Recipients() honeycomb.RecipientsClient         { return &fakeRecipients{c} }

func (c *fakeClient) GetAuthInfo(_ context.Context) (*honeycomb.AuthInfo, error) {
	return nil, nil
}

type fakeDerivedColumns struct{ c *fakeClient }

func (f *fakeDerivedColumns) Create(_ context.Context, dataset string, request *honeycomb.DerivedColumnCreateRequest) (*honeycomb.DerivedColumn, error) {
	key := "derived_column:" + dataset
	if f.c.failCreate[key] {
		return nil, errRemote
	}

	f.c.record("create " + key)

	return &honeycomb.DerivedColumn{ID: f.c.id("dc"), Alias: request.Alias}, nil
}

func (f *fakeDerivedColumns) Get(_ context.Context, _, _ string) (*honeycomb.DerivedColumn, error) {
	return nil, nil
}

func (f *fakeDerivedColumns) GetByAlias(_ context.Context, _, _ string) (*honeycomb.DerivedColumn, error) {
	return nil, nil
}

func (f *fakeDerivedColumns) List(_ context.Context, _ string) ([]honeycomb.DerivedColumn, error) {
	return nil, nil
}

func (f *fakeDerivedColumns) Update(_ context.Context, _, _ string, _ *honeycomb.DerivedColumnCreateRequest) (*honeycomb.DerivedColumn, error) {
	return nil, nil
}

func (f *fakeDerivedColumns) Delete(_ context.Context, dataset, id string) error {
	key := fmt.Sprintf("delete derived_column:%s/%s", dataset, id)
	if f.c.failDelete[key] {
		return errRemote
	}

	f.c.record(key)

	return nil
}

type fakeSLOs struct{ c *fakeClient }

func (f *fakeSLOs) Create(_ context.Context, dataset string, request *honeycomb.SLOCreateRequest) (*honeycomb.SLO, error) {
	key := "slo:" + dataset
	if f.c.failCreate[key] {
		return nil, errRemote
	}

	f.c.record("create " + key)

	return &honeycomb.SLO{ID: f.c.id("slo"), Name: request.Name, SLI: request.SLI}, nil
}

func (f *fakeSLOs) Get(_ context.Context, _, _ string, _ bool) (*honeycomb.SLO, error) {
	return nil, nil
}

func (f *fakeSLOs) List(_ context.Context, _ string) ([]honeycomb.SLO, error) { return nil, nil }

func (f *fakeSLOs) Update(_ context.Context, _, _ string, _ *honeycomb.SLOCreateRequest) (*honeycomb.SLO, error) {
	return nil, nil
}

func (f *fakeSLOs) Delete(_ context.Context, dataset, id string) error {
	key := fmt.Sprintf("delete slo:%s/%s", dataset, id)
	if f.c.failDelete[key] {
		return errRemote
	}

	f.c.record(key)

	return nil
}

func (f *fakeSLOs) CreateFromBundle(_ context.Context, _ *honeycomb.Bundle) (*honeycomb.BundleResult, error) {
	return nil, nil
}

type fakeBurnAlerts struct{ c *fakeClient }

func (f *fakeBurnAlerts) Create(_ context.Context, dataset string, request *honeycomb.BurnAlertCreateRequest) (*honeycomb.BurnAlert, error) {
	key := "burn_alert:" + dataset
	if f.c.failCreate[key] {
		return nil, errRemote
	}

	f.c.record("create " + key)

	return &honeycomb.BurnAlert{ID: f.c.id("ba"), AlertType: request.AlertType, SLO: request.SLO}, nil
}

func (f *fakeBurnAlerts) Get(_ context.Context, _, _ string) (*honeycomb.BurnAlert, error) {
	return nil, nil
}

func (f *fakeBurnAlerts) ListForSLO(_ context.Context, _, _ string) ([]honeycomb.BurnAlert, error) {
	return nil, nil
}

func (f *fakeBurnAlerts) Update(_ context.Context, _, _ string, _ *honeycomb.BurnAlertCreateRequest) (*honeycomb.BurnAlert, error) {
	return nil, nil
}

func (f *fakeBurnAlerts) Delete(_ context.Context, dataset, id string) error {
	f.c.record(fmt.Sprintf("delete burn_alert:%s/%s", dataset, id))

	return nil
}

type fakeTriggers struct{ c *fakeClient }

func (f *fakeTriggers) Create(_ context.Context, dataset string, request *honeycomb.TriggerCreateRequest) (*honeycomb.Trigger, error) {
	key := "trigger:" + dataset
	if f.c.failCreate[key] {
		return nil, errRemote
	}

	f.c.record("create " + key)

	return &honeycomb.Trigger{ID: f.c.id("trg"), Name: request.Name, Recipients: request.Recipients}, nil
}

func (f *fakeTriggers) Get(_ context.Context, _, _ string) (*honeycomb.Trigger, error) {
	return nil, nil
}

func (f *fakeTriggers) List(_ context.Context, _ string) ([]honeycomb.Trigger, error) {
	return nil, nil
}

func (f *fakeTriggers) Update(_ context.Context, _, _ string, _ *honeycomb.TriggerCreateRequest) (*honeycomb.Trigger, error) {
	return nil, nil
}

func (f *fakeTriggers) Delete(_ context.Context, dataset, id string) error {
	f.c.record(fmt.Sprintf("delete trigger:%s/%s", dataset, id))

	return nil
}

func (f *fakeTriggers) CreateFromBundle(_ context.Context, _ *honeycomb.Bundle) (*honeycomb.BundleResult, error) {
	return nil, nil
}

type fakeRecipients struct{ c *fakeClient }

func (f *fakeRecipients) Create(_ context.Context, request *honeycomb.RecipientCreateRequest) (*honeycomb.Recipient, error) {
	if f.c.failCreate["recipient"] {
		return nil, errRemote
	}

	f.c.record("create recipient")

	return &honeycomb.Recipient{ID: f.c.id("rcp"), Type: request.Type, Details: request.Details}, nil
}

func (f *fakeRecipients) Get(_ context.Context, _ string) (*honeycomb.Recipient, error) {
	return nil, nil
}

func (f *fakeRecipients) List(_ context.Context) ([]honeycomb.Recipient, error) { return nil, nil }

func (f *fakeRecipients) Update(_ context.Context, _ string, _ *honeycomb.RecipientCreateRequest) (*honeycomb.Recipient, error) {
	return nil, nil
}

func (f *fakeRecipients) Delete(_ context.Context, id string) error {
	f.c.record("delete recipient:" + id)

	return nil
}

// capturingLogger records Warn calls for rollback assertions.
type capturingLogger struct {
	warnings []string
}

func (l *capturingLogger) Debug(_ string, _ map[string]interface{}) {}
func (l *capturingLogger) Info(_ string, _ map[string]interface{})  {}
func (l *capturingLogger) Error(_ string, _ map[string]interface{}) {}

func (l *capturingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf("%s: %v", msg, fields["action"]))
}

func sloBundle(t *testing.T, datasets ...string) *honeycomb.Bundle {
	t.Helper()

	bundle, err := honeycomb.NewSLOBuilder("Availability").
		Datasets(datasets).
		TimePeriodDays(30).
		TargetNines(3).
		NewSLI("sli_ok", `LT($duration_ms, 1000)`, "").
		ExhaustionAlert(
			honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertExhaustionTime).
				ExhaustionMinutes(240).
				RecipientID("rcp-existing"),
		).
		Build()
	require.NoError(t, err)

	return bundle
}

func TestBundleExecutor_Execute(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	executor := honeycomb.NewBundleExecutor(client, nil)

	result, err := executor.Execute(context.Background(), sloBundle(t, "frontend", "checkout"))
	require.NoError(t, err)

	// One shared environment-wide column, one SLO and one alert per dataset.
	assert.Equal(t, []string{
		"create derived_column:__all__",
		"create slo:frontend",
		"create slo:checkout",
		"create burn_alert:frontend",
		"create burn_alert:checkout",
	}, client.ops)

	assert.Equal(t, "sli_ok", result.SLIAlias)
	require.Len(t, result.SLOs, 2)
	assert.Equal(t, "sli_ok", result.SLOs["frontend"].SLI.Alias)
	assert.Len(t, result.BurnAlerts, 2)
	require.Contains(t, result.DerivedColumns, honeycomb.EnvironmentWideDataset)
}

func TestBundleExecutor_SingleDatasetColumnScope(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	executor := honeycomb.NewBundleExecutor(client, nil)

	_, err := executor.Execute(context.Background(), sloBundle(t, "frontend"))
	require.NoError(t, err)

	assert.Equal(t, "create derived_column:frontend", client.ops[0])
}

func TestBundleExecutor_RollbackOnFailure(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	// Third top-level create fails: the second dataset's SLO.
	client.failCreate["slo:checkout"] = true

	executor := honeycomb.NewBundleExecutor(client, nil)

	result, err := executor.Execute(context.Background(), sloBundle(t, "frontend", "checkout"))
	require.ErrorIs(t, err, errRemote)
	assert.Nil(t, result)

	// Both successful creates undone, in reverse order of creation.
	assert.Equal(t, []string{
		"create derived_column:__all__",
		"create slo:frontend",
		"delete slo:frontend/slo-2",
		"delete derived_column:__all__/dc-1",
	}, client.ops)
}

func TestBundleExecutor_UndoFailureLoggedNotRaised(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.failCreate["slo:checkout"] = true
	client.failDelete["delete slo:frontend/slo-2"] = true

	logger := &capturingLogger{}
	executor := honeycomb.NewBundleExecutor(client, logger)

	_, err := executor.Execute(context.Background(), sloBundle(t, "frontend", "checkout"))
	require.ErrorIs(t, err, errRemote)

	// The failed undo is logged; the remaining undos still run.
	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "bundle cleanup failed")
	assert.Contains(t, logger.warnings[0], "delete SLO slo-2 in frontend")
	assert.Equal(t, "delete derived_column:__all__/dc-1", client.ops[len(client.ops)-1])
}

func TestBundleExecutor_EmptyBundle(t *testing.T) {
	t.Parallel()

	executor := honeycomb.NewBundleExecutor(newFakeClient(), nil)

	_, err := executor.Execute(context.Background(), nil)
	require.ErrorIs(t, err, honeycomb.ErrEmptyBundle)

	_, err = executor.Execute(context.Background(), &honeycomb.Bundle{})
	require.ErrorIs(t, err, honeycomb.ErrEmptyBundle)
}

func TestBundleExecutor_StepOutOfOrder(t *testing.T) {
	t.Parallel()

	executor := honeycomb.NewBundleExecutor(newFakeClient(), nil)

	// An SLO step with no SLI alias and no prior SLI step cannot resolve.
	bundle := &honeycomb.Bundle{
		Steps: []honeycomb.Step{{
			Kind:     honeycomb.StepCreateSLO,
			SLO:      &honeycomb.SLOCreateRequest{Name: "orphan"},
			Datasets: []string{"frontend"},
		}},
	}

	_, err := executor.Execute(context.Background(), bundle)
	require.ErrorIs(t, err, honeycomb.ErrStepOutOfOrder)
}

func TestBundleExecutor_InlineRecipients(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	executor := honeycomb.NewBundleExecutor(client, nil)

	bundle, err := honeycomb.NewTriggerBuilder("High error rate").
		Dataset("frontend").
		LastMinutes(10).
		Count().
		Gte("status_code", 500).
		ThresholdGT(100).
		Recipient(honeycomb.RecipientRef{
			Create: &honeycomb.RecipientCreateRequest{
				Type:    honeycomb.RecipientEmail,
				Details: honeycomb.RecipientDetails{EmailAddress: "oncall@example.com"},
			},
		}).
		Build()
	require.NoError(t, err)

	result, err := executor.Execute(context.Background(), bundle)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"create recipient",
		"create trigger:frontend",
	}, client.ops)

	trigger := result.Triggers["frontend"]
	require.NotNil(t, trigger)
	require.Len(t, trigger.Recipients, 1)
	assert.Equal(t, "rcp-1", trigger.Recipients[0].ID)
	assert.Nil(t, trigger.Recipients[0].Create)
}

func TestBundleExecutor_InlineRecipientRolledBack(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.failCreate["trigger:frontend"] = true

	executor := honeycomb.NewBundleExecutor(client, nil)

	bundle, err := honeycomb.NewTriggerBuilder("High error rate").
		Dataset("frontend").
		LastMinutes(10).
		Count().
		ThresholdGT(100).
		Recipient(honeycomb.RecipientRef{
			Create: &honeycomb.RecipientCreateRequest{
				Type:    honeycomb.RecipientEmail,
				Details: honeycomb.RecipientDetails{EmailAddress: "oncall@example.com"},
			},
		}).
		Build()
	require.NoError(t, err)

	_, err = executor.Execute(context.Background(), bundle)
	require.ErrorIs(t, err, errRemote)

	assert.Equal(t, []string{
		"create recipient",
		"delete recipient:rcp-1",
	}, client.ops)
}
