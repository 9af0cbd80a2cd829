package honeycomb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-go/pkg/honeycomb"
)

func validSLOBuilder() *honeycomb.SLOBuilder {
	return honeycomb.NewSLOBuilder("Checkout availability").
		Dataset("frontend").
		TimePeriodDays(30).
		TargetNines(3).
		SLI("sli_checkout_ok")
}

func TestSLOBuilder_Build(t *testing.T) {
	t.Parallel()

	bundle, err := validSLOBuilder().
		Description("Successful checkouts").
		Build()
	require.NoError(t, err)

	require.Len(t, bundle.Steps, 2)

	assert.Equal(t, honeycomb.StepReferenceSLI, bundle.Steps[0].Kind)
	assert.Equal(t, "sli_checkout_ok", bundle.Steps[0].SLIAlias)

	sloStep := bundle.Steps[1]
	assert.Equal(t, honeycomb.StepCreateSLO, sloStep.Kind)
	assert.Equal(t, []string{"frontend"}, sloStep.Datasets)
	assert.Equal(t, "Checkout availability", sloStep.SLO.Name)
	assert.Equal(t, "Successful checkouts", sloStep.SLO.Description)
	assert.Equal(t, 30, sloStep.SLO.TimePeriodDays)
	assert.Equal(t, "sli_checkout_ok", sloStep.SLO.SLI.Alias)
}

func TestSLOBuilder_NewSLIStep(t *testing.T) {
	t.Parallel()

	t.Run("single dataset stays dataset-scoped", func(t *testing.T) {
		t.Parallel()

		bundle, err := honeycomb.NewSLOBuilder("Latency").
			Dataset("frontend").
			TimePeriodDays(30).
			TargetNines(2).
			NewSLI("sli_fast", `LT($duration_ms, 500)`, "fast requests").
			Build()
		require.NoError(t, err)

		step := bundle.Steps[0]
		assert.Equal(t, honeycomb.StepCreateDerivedColumn, step.Kind)
		assert.False(t, step.EnvironmentWide)
		assert.Equal(t, []string{"frontend"}, step.Datasets)
		assert.Equal(t, "sli_fast", step.DerivedColumn.Alias)
		assert.Equal(t, `LT($duration_ms, 500)`, step.DerivedColumn.Expression)
	})

	t.Run("multiple datasets share an environment-wide column", func(t *testing.T) {
		t.Parallel()

		bundle, err := honeycomb.NewSLOBuilder("Latency").
			Datasets([]string{"frontend", "checkout"}).
			TimePeriodDays(30).
			TargetNines(2).
			NewSLI("sli_fast", `LT($duration_ms, 500)`, "").
			Build()
		require.NoError(t, err)

		assert.True(t, bundle.Steps[0].EnvironmentWide)
		assert.Equal(t, []string{"frontend", "checkout"}, bundle.Steps[1].Datasets)
	})
}

func TestSLOBuilder_Targets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		builder    *honeycomb.SLOBuilder
		perMillion int
		wantErr    error
	}{
		{
			name:       "three nines",
			builder:    validSLOBuilder().TargetNines(3),
			perMillion: 999_000,
		},
		{
			name:       "four nines",
			builder:    validSLOBuilder().TargetNines(4),
			perMillion: 999_900,
		},
		{
			name:       "one nine",
			builder:    validSLOBuilder().TargetNines(1),
			perMillion: 900_000,
		},
		{
			name:       "percentage",
			builder:    validSLOBuilder().TargetPercentage(99.5),
			perMillion: 995_000,
		},
		{
			name:    "zero nines",
			builder: validSLOBuilder().TargetNines(0),
			wantErr: honeycomb.ErrInvalidNines,
		},
		{
			name:    "six nines",
			builder: validSLOBuilder().TargetNines(6),
			wantErr: honeycomb.ErrInvalidNines,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			bundle, err := testCase.builder.Build()
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.perMillion, bundle.Steps[1].SLO.TargetPerMillion)
		})
	}
}

func TestSLOBuilder_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *honeycomb.SLOBuilder
		wantErr error
	}{
		{
			name: "no dataset",
			builder: honeycomb.NewSLOBuilder("x").
				TimePeriodDays(30).
				TargetNines(3).
				SLI("sli"),
			wantErr: honeycomb.ErrMissingDataset,
		},
		{
			name: "no SLI",
			builder: honeycomb.NewSLOBuilder("x").
				Dataset("frontend").
				TimePeriodDays(30).
				TargetNines(3),
			wantErr: honeycomb.ErrMissingSLI,
		},
		{
			name: "no time period",
			builder: honeycomb.NewSLOBuilder("x").
				Dataset("frontend").
				TargetNines(3).
				SLI("sli"),
			wantErr: honeycomb.ErrMissingTimePeriod,
		},
		{
			name: "negative time period",
			builder: honeycomb.NewSLOBuilder("x").
				Dataset("frontend").
				TimePeriodDays(-7).
				TargetNines(3).
				SLI("sli"),
			wantErr: honeycomb.ErrTimePeriodPositive,
		},
		{
			name: "no target",
			builder: honeycomb.NewSLOBuilder("x").
				Dataset("frontend").
				TimePeriodDays(30).
				SLI("sli"),
			wantErr: honeycomb.ErrMissingTarget,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := testCase.builder.Build()
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestSLOBuilder_TimePeriodWeeks(t *testing.T) {
	t.Parallel()

	bundle, err := validSLOBuilder().TimePeriodWeeks(4).Build()
	require.NoError(t, err)

	assert.Equal(t, 28, bundle.Steps[1].SLO.TimePeriodDays)
}

func TestSLOBuilder_BurnAlertSteps(t *testing.T) {
	t.Parallel()

	bundle, err := validSLOBuilder().
		ExhaustionAlert(
			honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertExhaustionTime).
				ExhaustionMinutes(240).
				RecipientID("rcp-1"),
		).
		BudgetRateAlert(
			honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertBudgetRate).
				WindowMinutes(60).
				ThresholdPercent(2).
				Email("oncall@example.com"),
		).
		Build()
	require.NoError(t, err)

	require.Len(t, bundle.Steps, 4)

	exhaustion := bundle.Steps[2]
	assert.Equal(t, honeycomb.StepCreateBurnAlert, exhaustion.Kind)
	assert.Equal(t, honeycomb.BurnAlertExhaustionTime, exhaustion.BurnAlert.AlertType)
	require.NotNil(t, exhaustion.BurnAlert.ExhaustionMinutes)
	assert.Equal(t, 240, *exhaustion.BurnAlert.ExhaustionMinutes)
	assert.Equal(t, []honeycomb.RecipientRef{{ID: "rcp-1"}}, exhaustion.BurnAlert.Recipients)

	budgetRate := bundle.Steps[3]
	assert.Equal(t, honeycomb.BurnAlertBudgetRate, budgetRate.BurnAlert.AlertType)
	require.NotNil(t, budgetRate.BurnAlert.BudgetRateWindowMinutes)
	assert.Equal(t, 60, *budgetRate.BurnAlert.BudgetRateWindowMinutes)
	// 2% of budget per million
	require.NotNil(t, budgetRate.BurnAlert.BudgetRateDecreaseThresholdPerMillion)
	assert.Equal(t, 20_000, *budgetRate.BurnAlert.BudgetRateDecreaseThresholdPerMillion)
	require.Len(t, budgetRate.BurnAlert.Recipients, 1)
	require.NotNil(t, budgetRate.BurnAlert.Recipients[0].Create)
	assert.Equal(t, "oncall@example.com", budgetRate.BurnAlert.Recipients[0].Create.Details.EmailAddress)
}

func TestBurnAlertBuilder_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		alert   *honeycomb.BurnAlertBuilder
		wantErr error
	}{
		{
			name:    "no recipient",
			alert:   honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertExhaustionTime).ExhaustionMinutes(60),
			wantErr: honeycomb.ErrMissingRecipient,
		},
		{
			name: "both recipient forms",
			alert: honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertExhaustionTime).
				ExhaustionMinutes(60).
				RecipientID("rcp-1").
				Email("oncall@example.com"),
			wantErr: honeycomb.ErrAmbiguousRecipient,
		},
		{
			name:    "exhaustion without minutes",
			alert:   honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertExhaustionTime).RecipientID("rcp-1"),
			wantErr: honeycomb.ErrMissingExhaustionTime,
		},
		{
			name: "negative exhaustion minutes",
			alert: honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertExhaustionTime).
				ExhaustionMinutes(-1).
				RecipientID("rcp-1"),
			wantErr: honeycomb.ErrExhaustionNonNegative,
		},
		{
			name: "budget rate without window",
			alert: honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertBudgetRate).
				ThresholdPercent(2).
				RecipientID("rcp-1"),
			wantErr: honeycomb.ErrMissingBudgetRate,
		},
		{
			name: "budget rate threshold over 100",
			alert: honeycomb.NewBurnAlertBuilder(honeycomb.BurnAlertBudgetRate).
				WindowMinutes(60).
				ThresholdPercent(150).
				RecipientID("rcp-1"),
			wantErr: honeycomb.ErrThresholdPercentRange,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := validSLOBuilder().ExhaustionAlert(testCase.alert).Build()
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestSLOBuilder_BuildIsRepeatable(t *testing.T) {
	t.Parallel()

	builder := validSLOBuilder()

	first, err := builder.Build()
	require.NoError(t, err)

	second, err := builder.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
