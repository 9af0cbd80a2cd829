package honeycomb

import (
	"math"
)

// BurnAlertBuilder accumulates a burn alert creation payload. The kind is
// fixed at construction and selects which setters apply. The builder is
// consumed by SLOBuilder; its step carries an unresolved recipient
// reference that the bundle executor realizes into an ID.
type BurnAlertBuilder struct {
	kind              BurnAlertKind
	exhaustionMinutes *int
	windowMinutes     *int
	thresholdPercent  *float64
	recipientID       string
	emailAddress      string
}

// NewBurnAlertBuilder creates a builder for the given alert kind.
func NewBurnAlertBuilder(kind BurnAlertKind) *BurnAlertBuilder {
	return &BurnAlertBuilder{kind: kind}
}

// ExhaustionMinutes sets how many minutes of remaining budget trigger an
// exhaustion_time alert.
func (b *BurnAlertBuilder) ExhaustionMinutes(n int) *BurnAlertBuilder {
	b.exhaustionMinutes = &n

	return b
}

// WindowMinutes sets the evaluation window of a budget_rate alert.
func (b *BurnAlertBuilder) WindowMinutes(n int) *BurnAlertBuilder {
	b.windowMinutes = &n

	return b
}

// ThresholdPercent sets the budget decrease threshold of a budget_rate
// alert as a percentage. The wire unit is parts per million.
func (b *BurnAlertBuilder) ThresholdPercent(pct float64) *BurnAlertBuilder {
	b.thresholdPercent = &pct

	return b
}

// RecipientID references an existing recipient. Exactly one of RecipientID
// and Email must be set.
func (b *BurnAlertBuilder) RecipientID(id string) *BurnAlertBuilder {
	b.recipientID = id

	return b
}

// Email attaches an inline email recipient to be created at bundle
// execution time. Exactly one of RecipientID and Email must be set.
func (b *BurnAlertBuilder) Email(address string) *BurnAlertBuilder {
	b.emailAddress = address

	return b
}

// build validates the kind-specific fields and renders the creation
// payload with its SLO reference left unresolved.
func (b *BurnAlertBuilder) build() (*BurnAlertCreateRequest, error) {
	if b.recipientID == "" && b.emailAddress == "" {
		return nil, ErrMissingRecipient
	}

	if b.recipientID != "" && b.emailAddress != "" {
		return nil, ErrAmbiguousRecipient
	}

	request := &BurnAlertCreateRequest{AlertType: b.kind}

	switch b.kind {
	case BurnAlertExhaustionTime:
		if b.exhaustionMinutes == nil {
			return nil, ErrMissingExhaustionTime
		}

		if *b.exhaustionMinutes < 0 {
			return nil, ErrExhaustionNonNegative
		}

		request.ExhaustionMinutes = b.exhaustionMinutes
	case BurnAlertBudgetRate:
		if b.windowMinutes == nil || b.thresholdPercent == nil {
			return nil, ErrMissingBudgetRate
		}

		if *b.thresholdPercent <= 0 || *b.thresholdPercent > 100 {
			return nil, ErrThresholdPercentRange
		}

		perMillion := int(math.Round(*b.thresholdPercent / 100 * 1_000_000))
		request.BudgetRateWindowMinutes = b.windowMinutes
		request.BudgetRateDecreaseThresholdPerMillion = &perMillion
	default:
		return nil, ErrMissingBudgetRate
	}

	if b.recipientID != "" {
		request.Recipients = []RecipientRef{{ID: b.recipientID}}
	} else {
		inline, err := EmailRecipient(b.emailAddress)
		if err != nil {
			return nil, err
		}

		request.Recipients = []RecipientRef{{Create: inline}}
	}

	return request, nil
}
