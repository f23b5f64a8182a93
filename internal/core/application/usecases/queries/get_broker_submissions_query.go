// Package queries contains read-only operations that project workflow state
// for the API. Query handlers read the database directly instead of going
// through the aggregates, per CQRS.
package queries

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrGetBrokerSubmissionsQueryIsNotConstructed = errors.New(
		"GetBrokerSubmissionsQuery must be created via NewGetBrokerSubmissionsQuery constructor",
	)
	ErrBrokerIDIsRequired = errors.New("broker id is required")
)

// GetBrokerSubmissionsQuery retrieves the review queue for one broker:
// every submission the broker owns, newest first.
type GetBrokerSubmissionsQuery struct {
	brokerID string

	guard guard.ConstructorGuard
}

// NewGetBrokerSubmissionsQuery creates a query for a broker's submissions.
func NewGetBrokerSubmissionsQuery(brokerID string) (GetBrokerSubmissionsQuery, error) {
	if brokerID == "" {
		return GetBrokerSubmissionsQuery{}, ErrBrokerIDIsRequired
	}

	return GetBrokerSubmissionsQuery{
		brokerID: brokerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBrokerSubmissionsQuery) Validate() error {
	return q.guard.Validate(ErrGetBrokerSubmissionsQueryIsNotConstructed)
}

// BrokerID returns the broker whose queue is requested.
func (q GetBrokerSubmissionsQuery) BrokerID() string {
	return q.brokerID
}

// GetBrokerSubmissionsQueryResponse is one row of the broker's review
// queue. Raw signature payloads are redacted to presence booleans.
type GetBrokerSubmissionsQueryResponse struct {
	ID               kernel.UUID
	LoadIdentifierID string
	DriverName       string
	ShipperName      string
	Status           string
	SubmittedAt      time.Time

	HasDriverSignature   bool
	HasReceiverSignature bool

	InvoiceID    *string
	InvoiceTotal *float64
}
