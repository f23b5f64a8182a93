package bol

import (
	"fmt"

	"freightflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a BOL submission.
//
// State transitions:
//
//	Submitted ──> BrokerReview ──> BrokerApproved ──> InvoiceGenerated ──> InvoiceSent ──> Completed
//	                   │
//	                   └──> Rejected (terminal)
//
// Statuses are rank-ordered; a submission's observed statuses always form a
// subsequence of the stage list above, or end at Rejected. No transition
// ever regresses.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Submitted is the logical entry state. Submissions advance to
	// BrokerReview within the same atomic create, so Submitted is never
	// observable on a persisted record.
	Submitted

	// BrokerReview means the submission is waiting for the broker's decision.
	BrokerReview

	// BrokerApproved means the broker accepted the paperwork.
	BrokerApproved

	// InvoiceGenerated means the invoice has been computed and attached.
	InvoiceGenerated

	// InvoiceSent means the invoice notification went to the shipper/vendor.
	InvoiceSent

	// Completed is the successful terminal state.
	Completed

	// Rejected is the terminal state for refused paperwork, reachable from
	// BrokerReview only.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Submitted:        "submitted",
		BrokerReview:     "broker_review",
		BrokerApproved:   "broker_approved",
		InvoiceGenerated: "invoice_generated",
		InvoiceSent:      "invoice_sent",
		Completed:        "completed",
		Rejected:         "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Submitted:        "submitted",
		BrokerReview:     "broker_review",
		BrokerApproved:   "broker_approved",
		InvoiceGenerated: "invoice_generated",
		InvoiceSent:      "invoice_sent",
		Completed:        "completed",
		Rejected:         "rejected",
	}
}

// Validate checks that the Status value is one of the defined stages.
// Used when reconstructing submissions from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "broker_review".
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString resolves a wire name back to a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// Approve transitions BrokerReview to BrokerApproved.
func (s Status) Approve() (Status, error) {
	if s != BrokerReview {
		return 0, transitionError(s, BrokerApproved)
	}
	return BrokerApproved, nil
}

// GenerateInvoice transitions BrokerApproved to InvoiceGenerated.
func (s Status) GenerateInvoice() (Status, error) {
	if s != BrokerApproved {
		return 0, transitionError(s, InvoiceGenerated)
	}
	return InvoiceGenerated, nil
}

// SendInvoice transitions InvoiceGenerated to InvoiceSent.
func (s Status) SendInvoice() (Status, error) {
	if s != InvoiceGenerated {
		return 0, transitionError(s, InvoiceSent)
	}
	return InvoiceSent, nil
}

// Complete transitions InvoiceSent to Completed.
func (s Status) Complete() (Status, error) {
	if s != InvoiceSent {
		return 0, transitionError(s, Completed)
	}
	return Completed, nil
}

// Reject transitions BrokerReview to the terminal Rejected state.
// Rejection is not reachable from later stages: once an invoice exists the
// submission can only complete.
func (s Status) Reject() (Status, error) {
	if s != BrokerReview {
		return 0, transitionError(s, Rejected)
	}
	return Rejected, nil
}

func transitionError(from, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("cannot transition from %s to %s", from, to))
}
