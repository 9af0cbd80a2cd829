package honeycomb

import (
	"fmt"
	"time"
)

// CalculationOp is a query calculation operation.
type CalculationOp string

// Calculation operations.
const (
	CalcCount         CalculationOp = "COUNT"
	CalcCountDistinct CalculationOp = "COUNT_DISTINCT"
	CalcSum           CalculationOp = "SUM"
	CalcAvg           CalculationOp = "AVG"
	CalcMax           CalculationOp = "MAX"
	CalcMin           CalculationOp = "MIN"
	CalcP50           CalculationOp = "P50"
	CalcP95           CalculationOp = "P95"
	CalcP99           CalculationOp = "P99"
	CalcHeatmap       CalculationOp = "HEATMAP"
)

// FilterOp is a query filter operation.
type FilterOp string

// Filter operations.
const (
	FilterEq           FilterOp = "="
	FilterNe           FilterOp = "!="
	FilterGt           FilterOp = ">"
	FilterGte          FilterOp = ">="
	FilterLt           FilterOp = "<"
	FilterLte          FilterOp = "<="
	FilterStartsWith   FilterOp = "starts-with"
	FilterContains     FilterOp = "contains"
	FilterExists       FilterOp = "exists"
	FilterDoesNotExist FilterOp = "does-not-exist"
	FilterIn           FilterOp = "in"
)

// SortOrder is an ordering direction.
type SortOrder string

// Sort orders.
const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// Calculation is one aggregation in a query.
type Calculation struct {
	Op     CalculationOp `json:"op"`
	Column string        `json:"column,omitempty"`
}

// Filter is one predicate in a query.
type Filter struct {
	Column string      `json:"column"`
	Op     FilterOp    `json:"op"`
	Value  interface{} `json:"value,omitempty"`
}

// Order is one result ordering in a query.
type Order struct {
	Op     CalculationOp `json:"op,omitempty"`
	Column string        `json:"column,omitempty"`
	Order  SortOrder     `json:"order,omitempty"`
}

// QuerySpec is the finalized query specification sent to the API. The time
// window is either relative (TimeRange seconds before now) or absolute
// (StartTime/EndTime epoch seconds), never both.
type QuerySpec struct {
	TimeRange         int           `json:"time_range,omitempty"         yaml:"time_range,omitempty"`
	StartTime         int64         `json:"start_time,omitempty"         yaml:"start_time,omitempty"`
	EndTime           int64         `json:"end_time,omitempty"           yaml:"end_time,omitempty"`
	Granularity       int           `json:"granularity,omitempty"        yaml:"granularity,omitempty"`
	Calculations      []Calculation `json:"calculations,omitempty"       yaml:"calculations,omitempty"`
	Filters           []Filter      `json:"filters,omitempty"            yaml:"filters,omitempty"`
	FilterCombination string        `json:"filter_combination,omitempty" yaml:"filter_combination,omitempty"`
	Breakdowns        []string      `json:"breakdowns,omitempty"         yaml:"breakdowns,omitempty"`
	Orders            []Order       `json:"orders,omitempty"             yaml:"orders,omitempty"`
	Limit             int           `json:"limit,omitempty"              yaml:"limit,omitempty"`
}

// QueryBuilder accumulates calculations, filters, breakdowns, orderings and
// a time window, then renders an immutable QuerySpec. Builders are not safe
// for concurrent use.
type QueryBuilder struct {
	timeRange         int
	startTime         int64
	endTime           int64
	granularity       int
	calculations      []Calculation
	filters           []Filter
	filterCombination string
	breakdowns        []string
	orders            []Order
	limit             int
}

// NewQueryBuilder creates an empty query builder.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

// LastMinutes sets a relative time window of n minutes before now. It
// clears any absolute window previously set; the last window call wins.
func (b *QueryBuilder) LastMinutes(n int) *QueryBuilder {
	b.timeRange = n * 60
	b.startTime = 0
	b.endTime = 0

	return b
}

// LastHours sets a relative time window of n hours before now.
func (b *QueryBuilder) LastHours(n int) *QueryBuilder {
	return b.LastMinutes(n * 60)
}

// Between sets an absolute time window. It clears any relative window
// previously set; the last window call wins.
func (b *QueryBuilder) Between(start, end time.Time) *QueryBuilder {
	b.startTime = start.Unix()
	b.endTime = end.Unix()
	b.timeRange = 0

	return b
}

// Granularity sets the time resolution of results in seconds.
func (b *QueryBuilder) Granularity(seconds int) *QueryBuilder {
	b.granularity = seconds

	return b
}

// Calculate appends an arbitrary calculation.
func (b *QueryBuilder) Calculate(op CalculationOp, column string) *QueryBuilder {
	b.calculations = append(b.calculations, Calculation{Op: op, Column: column})

	return b
}

// Count appends a COUNT calculation.
func (b *QueryBuilder) Count() *QueryBuilder {
	return b.Calculate(CalcCount, "")
}

// CountDistinct appends a COUNT_DISTINCT calculation over a column.
func (b *QueryBuilder) CountDistinct(column string) *QueryBuilder {
	return b.Calculate(CalcCountDistinct, column)
}

// Sum appends a SUM calculation over a column.
func (b *QueryBuilder) Sum(column string) *QueryBuilder {
	return b.Calculate(CalcSum, column)
}

// Avg appends an AVG calculation over a column.
func (b *QueryBuilder) Avg(column string) *QueryBuilder {
	return b.Calculate(CalcAvg, column)
}

// Max appends a MAX calculation over a column.
func (b *QueryBuilder) Max(column string) *QueryBuilder {
	return b.Calculate(CalcMax, column)
}

// Min appends a MIN calculation over a column.
func (b *QueryBuilder) Min(column string) *QueryBuilder {
	return b.Calculate(CalcMin, column)
}

// P50 appends a P50 calculation over a column.
func (b *QueryBuilder) P50(column string) *QueryBuilder {
	return b.Calculate(CalcP50, column)
}

// P95 appends a P95 calculation over a column.
func (b *QueryBuilder) P95(column string) *QueryBuilder {
	return b.Calculate(CalcP95, column)
}

// P99 appends a P99 calculation over a column.
func (b *QueryBuilder) P99(column string) *QueryBuilder {
	return b.Calculate(CalcP99, column)
}

// Heatmap appends a HEATMAP calculation over a column.
func (b *QueryBuilder) Heatmap(column string) *QueryBuilder {
	return b.Calculate(CalcHeatmap, column)
}

// Filter appends an arbitrary filter. Filters accumulate in call order.
func (b *QueryBuilder) Filter(column string, op FilterOp, value interface{}) *QueryBuilder {
	b.filters = append(b.filters, Filter{Column: column, Op: op, Value: value})

	return b
}

// Eq appends an equality filter.
func (b *QueryBuilder) Eq(column string, value interface{}) *QueryBuilder {
	return b.Filter(column, FilterEq, value)
}

// Ne appends an inequality filter.
func (b *QueryBuilder) Ne(column string, value interface{}) *QueryBuilder {
	return b.Filter(column, FilterNe, value)
}

// Gt appends a greater-than filter.
func (b *QueryBuilder) Gt(column string, value interface{}) *QueryBuilder {
	return b.Filter(column, FilterGt, value)
}

// Gte appends a greater-or-equal filter.
func (b *QueryBuilder) Gte(column string, value interface{}) *QueryBuilder {
	return b.Filter(column, FilterGte, value)
}

// Lt appends a less-than filter.
func (b *QueryBuilder) Lt(column string, value interface{}) *QueryBuilder {
	return b.Filter(column, FilterLt, value)
}

// Lte appends a less-or-equal filter.
func (b *QueryBuilder) Lte(column string, value interface{}) *QueryBuilder {
	return b.Filter(column, FilterLte, value)
}

// Exists appends an existence filter.
func (b *QueryBuilder) Exists(column string) *QueryBuilder {
	return b.Filter(column, FilterExists, nil)
}

// DoesNotExist appends a non-existence filter.
func (b *QueryBuilder) DoesNotExist(column string) *QueryBuilder {
	return b.Filter(column, FilterDoesNotExist, nil)
}

// Contains appends a substring filter.
func (b *QueryBuilder) Contains(column, substring string) *QueryBuilder {
	return b.Filter(column, FilterContains, substring)
}

// StartsWith appends a prefix filter.
func (b *QueryBuilder) StartsWith(column, prefix string) *QueryBuilder {
	return b.Filter(column, FilterStartsWith, prefix)
}

// In appends a set membership filter.
func (b *QueryBuilder) In(column string, values []interface{}) *QueryBuilder {
	return b.Filter(column, FilterIn, values)
}

// FilterCombination sets the mode combining the whole filter set: "AND" or
// "OR". AND is the default.
func (b *QueryBuilder) FilterCombination(mode string) *QueryBuilder {
	b.filterCombination = mode

	return b
}

// GroupBy appends a breakdown column.
func (b *QueryBuilder) GroupBy(column string) *QueryBuilder {
	b.breakdowns = append(b.breakdowns, column)

	return b
}

// OrderByCount appends an ordering on the COUNT calculation.
func (b *QueryBuilder) OrderByCount(direction SortOrder) *QueryBuilder {
	b.orders = append(b.orders, Order{Op: CalcCount, Order: direction})

	return b
}

// OrderBy appends an ordering on a column.
func (b *QueryBuilder) OrderBy(column string, direction SortOrder) *QueryBuilder {
	b.orders = append(b.orders, Order{Column: column, Order: direction})

	return b
}

// OrderByCalculation appends an ordering on a calculation over a column.
func (b *QueryBuilder) OrderByCalculation(op CalculationOp, column string, direction SortOrder) *QueryBuilder {
	b.orders = append(b.orders, Order{Op: op, Column: column, Order: direction})

	return b
}

// Limit caps the number of results.
func (b *QueryBuilder) Limit(n int) *QueryBuilder {
	b.limit = n

	return b
}

// validateCalculations rejects calculations missing their column. COUNT is
// the only column-less operation.
func (b *QueryBuilder) validateCalculations() error {
	for _, calc := range b.calculations {
		if calc.Op != CalcCount && calc.Column == "" {
			return fmt.Errorf("%w: %s", ErrQueryCalculationColumn, calc.Op)
		}
	}

	return nil
}

// Build renders the accumulated state into a QuerySpec. Build may be called
// repeatedly; each call renders from the current state.
func (b *QueryBuilder) Build() (*QuerySpec, error) {
	err := b.validateCalculations()
	if err != nil {
		return nil, err
	}

	spec := &QuerySpec{
		TimeRange:         b.timeRange,
		StartTime:         b.startTime,
		EndTime:           b.endTime,
		Granularity:       b.granularity,
		Calculations:      append([]Calculation(nil), b.calculations...),
		Filters:           append([]Filter(nil), b.filters...),
		FilterCombination: b.filterCombination,
		Breakdowns:        append([]string(nil), b.breakdowns...),
		Orders:            append([]Order(nil), b.orders...),
		Limit:             b.limit,
	}

	return spec, nil
}

// BuildForTrigger renders the restricted QuerySpec accepted by trigger
// creation: exactly one calculation, no breakdowns, and only a relative
// time window. A builder holding only an absolute window is rejected:
// triggers re-evaluate on a schedule, so a fixed start/end pair cannot be
// honored and silently dropping it would create a trigger over a window
// the caller never asked for.
func (b *QueryBuilder) BuildForTrigger() (*QuerySpec, error) {
	if len(b.calculations) != 1 {
		return nil, ErrIncompatibleQuery
	}

	if len(b.breakdowns) > 0 {
		return nil, ErrIncompatibleQuery
	}

	if b.timeRange == 0 && (b.startTime != 0 || b.endTime != 0) {
		return nil, fmt.Errorf("%w: absolute time window", ErrIncompatibleQuery)
	}

	err := b.validateCalculations()
	if err != nil {
		return nil, err
	}

	spec := &QuerySpec{
		TimeRange:         b.timeRange,
		Calculations:      append([]Calculation(nil), b.calculations...),
		Filters:           append([]Filter(nil), b.filters...),
		FilterCombination: b.filterCombination,
	}

	return spec, nil
}
