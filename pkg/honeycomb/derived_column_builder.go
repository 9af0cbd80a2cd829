package honeycomb

// DerivedColumnBuilder accumulates a derived column creation payload.
type DerivedColumnBuilder struct {
	alias       string
	expression  string
	description string
}

// NewDerivedColumnBuilder creates a builder for the given alias.
func NewDerivedColumnBuilder(alias string) *DerivedColumnBuilder {
	return &DerivedColumnBuilder{alias: alias}
}

// Expression sets the column expression.
func (b *DerivedColumnBuilder) Expression(expr string) *DerivedColumnBuilder {
	b.expression = expr

	return b
}

// Description sets an optional description.
func (b *DerivedColumnBuilder) Description(desc string) *DerivedColumnBuilder {
	b.description = desc

	return b
}

// Build validates required fields and renders the creation payload. Build
// may be called repeatedly; each call renders from the current state.
func (b *DerivedColumnBuilder) Build() (*DerivedColumnCreateRequest, error) {
	if b.alias == "" {
		return nil, ErrMissingAlias
	}

	if b.expression == "" {
		return nil, ErrMissingExpression
	}

	return &DerivedColumnCreateRequest{
		Alias:       b.alias,
		Expression:  b.expression,
		Description: b.description,
	}, nil
}
