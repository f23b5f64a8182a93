package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// GetSubmissionQueryHandler retrieves one submission's detail view from the
// database.
type GetSubmissionQueryHandler struct {
	db *gorm.DB
}

// NewGetSubmissionQueryHandler creates a handler for submission detail
// queries.
func NewGetSubmissionQueryHandler(db *gorm.DB) GetSubmissionQueryHandler {
	return GetSubmissionQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when the
// submission does not exist.
func (h GetSubmissionQueryHandler) Handle(
	ctx context.Context,
	query GetSubmissionQuery,
) (GetSubmissionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSubmissionQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			load_id,
			load_identifier_id,
			driver_id,
			driver_name,
			broker_id,
			broker_name,
			shipper_id,
			shipper_name,
			shipper_email,
			bol_number,
			bol_pro_number,
			bol_delivery_date,
			bol_delivery_time,
			bol_receiver_name,
			bol_driver_signature <> '',
			bol_receiver_signature <> '',
			bol_pickup_photos,
			bol_delivery_photos,
			bol_seal_numbers,
			bol_weight,
			bol_pieces,
			bol_damages,
			bol_notes,
			status,
			review_notes,
			invoice_id,
			invoice_total,
			invoice_due_date,
			submitted_at,
			broker_review_at,
			approved_at,
			invoice_sent_at,
			completed_at,
			rejected_at
		FROM bol_submissions
		WHERE id = ?
	`, query.SubmissionID().Bytes()).Row()

	var resp GetSubmissionQueryResponse
	var id uuid.UUID
	var status int
	var pickupPhotos, deliveryPhotos, sealNumbers, damages pq.StringArray

	err := row.Scan(
		&id,
		&resp.LoadID,
		&resp.LoadIdentifierID,
		&resp.DriverID,
		&resp.DriverName,
		&resp.BrokerID,
		&resp.BrokerName,
		&resp.ShipperID,
		&resp.ShipperName,
		&resp.ShipperEmail,
		&resp.BOLNumber,
		&resp.PRONumber,
		&resp.DeliveryDate,
		&resp.DeliveryTime,
		&resp.ReceiverName,
		&resp.HasDriverSignature,
		&resp.HasReceiverSignature,
		&pickupPhotos,
		&deliveryPhotos,
		&sealNumbers,
		&resp.Weight,
		&resp.Pieces,
		&damages,
		&resp.Notes,
		&status,
		&resp.ReviewNotes,
		&resp.InvoiceID,
		&resp.InvoiceTotal,
		&resp.InvoiceDueDate,
		&resp.SubmittedAt,
		&resp.BrokerReviewAt,
		&resp.ApprovedAt,
		&resp.InvoiceSentAt,
		&resp.CompletedAt,
		&resp.RejectedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetSubmissionQueryResponse{}, errs.NewObjectNotFoundError(
				"submission", query.SubmissionID().String())
		}
		return GetSubmissionQueryResponse{}, err
	}

	submissionID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetSubmissionQueryResponse{}, err
	}

	resp.ID = submissionID
	resp.Status = bol.Status(status).String()
	resp.PickupPhotos = []string(pickupPhotos)
	resp.DeliveryPhotos = []string(deliveryPhotos)
	resp.SealNumbers = []string(sealNumbers)
	resp.Damages = []string(damages)

	return resp, nil
}
