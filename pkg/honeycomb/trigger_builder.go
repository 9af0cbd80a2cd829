package honeycomb

import "github.com/irvingpop/honeycomb-go/internal/constants"

// TriggerBuilder accumulates a trigger creation plan. Query calls are
// proxied to an embedded QueryBuilder so a trigger can be described in one
// chain. Build produces a Bundle because trigger creation always requires a
// fully-formed query.
type TriggerBuilder struct {
	name        string
	dataset     string
	description string
	query       *QueryBuilder
	threshold   *Threshold
	frequency   int
	disabled    bool
	recipients  []RecipientRef
}

// NewTriggerBuilder creates a builder for a trigger with the given name.
func NewTriggerBuilder(name string) *TriggerBuilder {
	return &TriggerBuilder{
		name:  name,
		query: NewQueryBuilder(),
	}
}

// Dataset sets the dataset the trigger evaluates against.
func (b *TriggerBuilder) Dataset(slug string) *TriggerBuilder {
	b.dataset = slug

	return b
}

// Description sets an optional description.
func (b *TriggerBuilder) Description(desc string) *TriggerBuilder {
	b.description = desc

	return b
}

// LastMinutes sets the trigger query's relative time window.
func (b *TriggerBuilder) LastMinutes(n int) *TriggerBuilder {
	b.query.LastMinutes(n)

	return b
}

// Count adds a COUNT calculation to the trigger query.
func (b *TriggerBuilder) Count() *TriggerBuilder {
	b.query.Count()

	return b
}

// Avg adds an AVG calculation to the trigger query.
func (b *TriggerBuilder) Avg(column string) *TriggerBuilder {
	b.query.Avg(column)

	return b
}

// P99 adds a P99 calculation to the trigger query.
func (b *TriggerBuilder) P99(column string) *TriggerBuilder {
	b.query.P99(column)

	return b
}

// Eq adds an equality filter to the trigger query.
func (b *TriggerBuilder) Eq(column string, value interface{}) *TriggerBuilder {
	b.query.Eq(column, value)

	return b
}

// Gte adds a greater-or-equal filter to the trigger query.
func (b *TriggerBuilder) Gte(column string, value interface{}) *TriggerBuilder {
	b.query.Gte(column, value)

	return b
}

// Lte adds a less-or-equal filter to the trigger query.
func (b *TriggerBuilder) Lte(column string, value interface{}) *TriggerBuilder {
	b.query.Lte(column, value)

	return b
}

// Exists adds an existence filter to the trigger query.
func (b *TriggerBuilder) Exists(column string) *TriggerBuilder {
	b.query.Exists(column)

	return b
}

// FilterCombination sets how the trigger query's filters combine.
func (b *TriggerBuilder) FilterCombination(mode string) *TriggerBuilder {
	b.query.FilterCombination(mode)

	return b
}

// Query exposes the embedded query builder for calls without a proxy.
func (b *TriggerBuilder) Query() *QueryBuilder {
	return b.query
}

// ThresholdGT fires when the calculation exceeds value.
func (b *TriggerBuilder) ThresholdGT(value float64) *TriggerBuilder {
	b.threshold = &Threshold{Op: ThresholdOpGT, Value: value}

	return b
}

// ThresholdGTE fires when the calculation reaches value.
func (b *TriggerBuilder) ThresholdGTE(value float64) *TriggerBuilder {
	b.threshold = &Threshold{Op: ThresholdOpGTE, Value: value}

	return b
}

// ThresholdLT fires when the calculation drops below value.
func (b *TriggerBuilder) ThresholdLT(value float64) *TriggerBuilder {
	b.threshold = &Threshold{Op: ThresholdOpLT, Value: value}

	return b
}

// ThresholdLTE fires when the calculation drops to value.
func (b *TriggerBuilder) ThresholdLTE(value float64) *TriggerBuilder {
	b.threshold = &Threshold{Op: ThresholdOpLTE, Value: value}

	return b
}

// EveryMinutes sets the evaluation frequency.
func (b *TriggerBuilder) EveryMinutes(n int) *TriggerBuilder {
	b.frequency = n * 60

	return b
}

// Recipient attaches a recipient reference.
func (b *TriggerBuilder) Recipient(ref RecipientRef) *TriggerBuilder {
	b.recipients = append(b.recipients, ref)

	return b
}

// Disabled creates the trigger in a disabled state.
func (b *TriggerBuilder) Disabled() *TriggerBuilder {
	b.disabled = true

	return b
}

// Build validates required fields and renders a single-step bundle. Build
// may be called repeatedly; each call renders from the current state.
func (b *TriggerBuilder) Build() (*Bundle, error) {
	if b.dataset == "" {
		return nil, ErrMissingDataset
	}

	if b.threshold == nil {
		return nil, ErrMissingThreshold
	}

	spec, err := b.query.BuildForTrigger()
	if err != nil {
		return nil, err
	}

	if b.frequency != 0 && (b.frequency < constants.MinTriggerFrequency || b.frequency > constants.MaxTriggerFrequency) {
		return nil, ErrTriggerFrequencyRange
	}

	request := &TriggerCreateRequest{
		Name:        b.name,
		Description: b.description,
		Threshold:   b.threshold,
		Frequency:   b.frequency,
		Disabled:    b.disabled,
		Query:       spec,
		Recipients:  append([]RecipientRef(nil), b.recipients...),
	}

	return &Bundle{
		Steps: []Step{{
			Kind:     StepCreateTrigger,
			Trigger:  request,
			Datasets: []string{b.dataset},
		}},
	}, nil
}
