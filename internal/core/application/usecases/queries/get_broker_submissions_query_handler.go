package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
)

// GetBrokerSubmissionsQueryHandler retrieves a broker's review queue from
// the database.
type GetBrokerSubmissionsQueryHandler struct {
	db *gorm.DB
}

// NewGetBrokerSubmissionsQueryHandler creates a handler for broker queue
// queries.
func NewGetBrokerSubmissionsQueryHandler(db *gorm.DB) GetBrokerSubmissionsQueryHandler {
	return GetBrokerSubmissionsQueryHandler{db: db}
}

// Handle executes the query, newest submissions first.
func (h GetBrokerSubmissionsQueryHandler) Handle(
	ctx context.Context,
	query GetBrokerSubmissionsQuery,
) ([]GetBrokerSubmissionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	submissions := make([]GetBrokerSubmissionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			load_identifier_id,
			driver_name,
			shipper_name,
			status,
			submitted_at,
			bol_driver_signature <> '',
			bol_receiver_signature <> '',
			invoice_id,
			invoice_total
		FROM bol_submissions
		WHERE broker_id = ?
		ORDER BY submitted_at DESC
	`, query.BrokerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetBrokerSubmissionsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.LoadIdentifierID,
			&resp.DriverName,
			&resp.ShipperName,
			&status,
			&resp.SubmittedAt,
			&resp.HasDriverSignature,
			&resp.HasReceiverSignature,
			&resp.InvoiceID,
			&resp.InvoiceTotal,
		)
		if err != nil {
			return nil, err
		}

		submissionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = submissionID
		resp.Status = bol.Status(status).String()
		submissions = append(submissions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return submissions, nil
}
