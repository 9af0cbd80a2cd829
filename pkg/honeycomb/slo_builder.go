package honeycomb

import (
	"math"
)

// SLOBuilder accumulates an SLO creation plan: the objective itself, its
// SLI (an existing derived column alias, or a new one to create), the
// target datasets, and any attached burn alerts. Build renders the ordered
// bundle the executor applies.
type SLOBuilder struct {
	name             string
	description      string
	datasets         []string
	timePeriodDays   int
	targetPerMillion int
	targetSet        bool
	targetErr        error
	sliAlias         string
	sliExpression    string
	sliDescription   string
	burnAlerts       []*BurnAlertBuilder
}

// NewSLOBuilder creates a builder for an SLO with the given name.
func NewSLOBuilder(name string) *SLOBuilder {
	return &SLOBuilder{name: name}
}

// Description sets an optional description.
func (b *SLOBuilder) Description(desc string) *SLOBuilder {
	b.description = desc

	return b
}

// Dataset targets a single dataset.
func (b *SLOBuilder) Dataset(slug string) *SLOBuilder {
	b.datasets = []string{slug}

	return b
}

// Datasets targets multiple datasets. One SLO is created per dataset; with
// a new SLI the backing derived column is created once, environment-wide.
func (b *SLOBuilder) Datasets(slugs []string) *SLOBuilder {
	b.datasets = append([]string(nil), slugs...)

	return b
}

// TimePeriodDays sets the rolling evaluation window in days.
func (b *SLOBuilder) TimePeriodDays(days int) *SLOBuilder {
	b.timePeriodDays = days

	return b
}

// TimePeriodWeeks sets the rolling evaluation window in weeks.
func (b *SLOBuilder) TimePeriodWeeks(weeks int) *SLOBuilder {
	b.timePeriodDays = weeks * 7

	return b
}

// TargetNines sets the success target as a count of nines: 3 nines is
// 99.9%, or 999000 per million.
func (b *SLOBuilder) TargetNines(nines int) *SLOBuilder {
	if nines < 1 || nines > 5 {
		b.targetErr = ErrInvalidNines

		return b
	}

	b.targetPerMillion = 1_000_000 - intPow10(6-nines)
	b.targetSet = true
	b.targetErr = nil

	return b
}

// TargetPercentage sets the success target as a raw percentage.
func (b *SLOBuilder) TargetPercentage(pct float64) *SLOBuilder {
	b.targetPerMillion = int(math.Round(pct / 100 * 1_000_000))
	b.targetSet = true
	b.targetErr = nil

	return b
}

// SLI references an existing derived column by alias; no column is created.
func (b *SLOBuilder) SLI(alias string) *SLOBuilder {
	b.sliAlias = alias
	b.sliExpression = ""

	return b
}

// NewSLI creates a new derived column as the SLI. With multiple target
// datasets the column is created once, environment-wide, and shared.
func (b *SLOBuilder) NewSLI(alias, expression, description string) *SLOBuilder {
	b.sliAlias = alias
	b.sliExpression = expression
	b.sliDescription = description

	return b
}

// ExhaustionAlert attaches an exhaustion_time burn alert.
func (b *SLOBuilder) ExhaustionAlert(alert *BurnAlertBuilder) *SLOBuilder {
	b.burnAlerts = append(b.burnAlerts, alert)

	return b
}

// BudgetRateAlert attaches a budget_rate burn alert.
func (b *SLOBuilder) BudgetRateAlert(alert *BurnAlertBuilder) *SLOBuilder {
	b.burnAlerts = append(b.burnAlerts, alert)

	return b
}

// Build validates required fields and renders the ordered bundle:
// the SLI step first, one CreateSLO step covering every target dataset,
// then one step per attached burn alert. Build may be called repeatedly;
// each call renders from the current state.
func (b *SLOBuilder) Build() (*Bundle, error) {
	if len(b.datasets) == 0 {
		return nil, ErrMissingDataset
	}

	if b.sliAlias == "" {
		return nil, ErrMissingSLI
	}

	if b.timePeriodDays <= 0 {
		if b.timePeriodDays == 0 {
			return nil, ErrMissingTimePeriod
		}

		return nil, ErrTimePeriodPositive
	}

	if b.targetErr != nil {
		return nil, b.targetErr
	}

	if !b.targetSet {
		return nil, ErrMissingTarget
	}

	bundle := &Bundle{}

	if b.sliExpression != "" {
		bundle.Steps = append(bundle.Steps, Step{
			Kind: StepCreateDerivedColumn,
			DerivedColumn: &DerivedColumnCreateRequest{
				Alias:       b.sliAlias,
				Expression:  b.sliExpression,
				Description: b.sliDescription,
			},
			// Shared across all target SLOs when more than one dataset is
			// involved; dataset-scoped otherwise.
			EnvironmentWide: len(b.datasets) > 1,
			Datasets:        append([]string(nil), b.datasets...),
		})
	} else {
		bundle.Steps = append(bundle.Steps, Step{
			Kind:     StepReferenceSLI,
			SLIAlias: b.sliAlias,
		})
	}

	bundle.Steps = append(bundle.Steps, Step{
		Kind: StepCreateSLO,
		SLO: &SLOCreateRequest{
			Name:             b.name,
			Description:      b.description,
			TimePeriodDays:   b.timePeriodDays,
			TargetPerMillion: b.targetPerMillion,
			SLI:              SLIRef{Alias: b.sliAlias},
		},
		Datasets: append([]string(nil), b.datasets...),
	})

	for _, alert := range b.burnAlerts {
		request, err := alert.build()
		if err != nil {
			return nil, err
		}

		bundle.Steps = append(bundle.Steps, Step{
			Kind:      StepCreateBurnAlert,
			BurnAlert: request,
			Datasets:  append([]string(nil), b.datasets...),
		})
	}

	return bundle, nil
}

func intPow10(n int) int {
	result := 1
	for i := 0; i < n; i++ {
		result *= 10
	}

	return result
}
