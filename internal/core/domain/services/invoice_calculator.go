package services

import (
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/pkg/errs"
)

// paymentTermDays is the net payment term applied to every invoice.
const paymentTermDays = 30

// InvoiceCalculator is a domain service that derives the invoice for an
// approved submission. All invoice arithmetic lives here so the aggregate
// only stores finished amounts.
type InvoiceCalculator struct{}

// NewInvoiceCalculator creates a new InvoiceCalculator instance.
func NewInvoiceCalculator() InvoiceCalculator {
	return InvoiceCalculator{}
}

// Compute returns the amount due. An adjusted rate, when present, replaces
// the base rate entirely; additional charges add and deductions subtract.
func (c InvoiceCalculator) Compute(baseRate float64, adjustments bol.Adjustments) float64 {
	rate := baseRate
	if adjustments.Rate != nil {
		rate = *adjustments.Rate
	}

	total := rate
	for _, charge := range adjustments.AdditionalCharges {
		total += charge.Amount
	}
	for _, deduction := range adjustments.Deductions {
		total -= deduction.Amount
	}
	return total
}

// DueDate returns the payment deadline: net-30 in calendar days from the
// submission timestamp.
func (c InvoiceCalculator) DueDate(submittedAt time.Time) time.Time {
	return submittedAt.AddDate(0, 0, paymentTermDays)
}

// BuildInvoice derives the full invoice for a submission. The invoice id
// embeds the load identifier plus a time-derived 6-digit suffix so that
// ids stay unique even if a load is ever re-billed.
func (c InvoiceCalculator) BuildInvoice(
	submission *bol.Submission, baseRate float64, adjustments bol.Adjustments, now time.Time,
) (bol.Invoice, error) {
	if err := submission.Validate(); err != nil {
		return bol.Invoice{}, err
	}
	if baseRate < 0 {
		return bol.Invoice{}, errs.NewValueIsInvalidError("baseRate")
	}

	invoiceID := fmt.Sprintf("INV-%s-%06d",
		submission.LoadIdentifierID(), now.UnixMilli()%1_000_000)

	return bol.NewInvoice(
		invoiceID,
		baseRate,
		adjustments,
		c.Compute(baseRate, adjustments),
		c.DueDate(submission.SubmittedAt()),
		now,
	)
}
