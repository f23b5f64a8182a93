package bol

import (
	"time"

	"freightflow/internal/pkg/errs"
)

// Charge is a signed line item applied on top of the base rate.
type Charge struct {
	Description string
	Amount      float64
}

// Adjustments captures the broker's rate corrections made during review.
// Rate, when set, replaces the base rate entirely; charges and deductions
// are applied on top of whichever rate wins.
type Adjustments struct {
	Rate              *float64
	AdditionalCharges []Charge
	Deductions        []Charge
}

// Invoice is the billing document derived from an approved submission.
// Amounts are fixed at generation time; a submission carries at most one
// invoice for its lifetime.
type Invoice struct {
	id          string
	baseRate    float64
	adjustments Adjustments
	total       float64
	dueDate     time.Time
	generatedAt time.Time
}

// NewInvoice builds an invoice with a precomputed total. The total is
// supplied by the invoice calculator so the arithmetic lives in one place.
func NewInvoice(id string, baseRate float64, adjustments Adjustments, total float64, dueDate, generatedAt time.Time) (Invoice, error) {
	if id == "" {
		return Invoice{}, errs.NewValueIsRequiredError("invoiceId")
	}
	if dueDate.IsZero() {
		return Invoice{}, errs.NewValueIsRequiredError("dueDate")
	}

	return Invoice{
		id:          id,
		baseRate:    baseRate,
		adjustments: adjustments,
		total:       total,
		dueDate:     dueDate,
		generatedAt: generatedAt,
	}, nil
}

// ID returns the invoice identifier, e.g. "INV-JD-25001-ATLMIA-WMT-DVFM-001-483920".
func (i Invoice) ID() string {
	return i.id
}

// BaseRate returns the agreed rate before adjustments.
func (i Invoice) BaseRate() float64 {
	return i.baseRate
}

// Adjustments returns the broker's rate corrections.
func (i Invoice) Adjustments() Adjustments {
	return i.adjustments
}

// Total returns the computed amount due.
func (i Invoice) Total() float64 {
	return i.total
}

// DueDate returns the payment deadline (net-30 from submission).
func (i Invoice) DueDate() time.Time {
	return i.dueDate
}

// GeneratedAt returns the invoice creation timestamp.
func (i Invoice) GeneratedAt() time.Time {
	return i.generatedAt
}
