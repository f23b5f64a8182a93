// Package submissionrepo provides data transfer objects and mapping functions
// for BOL submission persistence. It handles the conversion between the
// submission aggregate and its relational representation, including the
// embedded delivery facts and the optional invoice.
package submissionrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
)

// SubmissionDTO represents the database structure for persisting submission
// aggregates. Indexed by broker and status to serve the review dashboard.
type SubmissionDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	LoadID           string `gorm:"index"`
	LoadIdentifierID string `gorm:"index"`

	DriverID   string `gorm:"index"`
	DriverName string

	BrokerID   string `gorm:"index"`
	BrokerName string

	ShipperID    string
	ShipperName  string
	ShipperEmail string

	BOLData BOLDataDTO `gorm:"embedded;embeddedPrefix:bol_"`

	Status      int `gorm:"index"`
	ReviewNotes string

	// Invoice columns are null until invoice generation. Adjustments are
	// stored as a jsonb document.
	InvoiceID          *string
	InvoiceBaseRate    *float64
	InvoiceAdjustments *bol.Adjustments `gorm:"serializer:json;type:jsonb"`
	InvoiceTotal       *float64
	InvoiceDueDate     *time.Time
	InvoiceGeneratedAt *time.Time

	SubmittedAt    time.Time
	BrokerReviewAt time.Time
	ApprovedAt     *time.Time
	InvoiceSentAt  *time.Time
	CompletedAt    *time.Time
	RejectedAt     *time.Time
}

// TableName specifies the database table name for submission entities.
func (SubmissionDTO) TableName() string {
	return "bol_submissions"
}

// BOLDataDTO represents the embedded delivery facts within the submission
// table. Photo, seal and damage lists are stored as postgres text arrays.
type BOLDataDTO struct {
	Number       string `gorm:"column:number"`
	ProNumber    string
	DeliveryDate string
	DeliveryTime string
	ReceiverName string

	DriverSignature   string
	ReceiverSignature string

	PickupPhotos   pq.StringArray `gorm:"type:text[]"`
	DeliveryPhotos pq.StringArray `gorm:"type:text[]"`
	SealNumbers    pq.StringArray `gorm:"type:text[]"`

	Weight  string
	Pieces  int
	Damages pq.StringArray `gorm:"type:text[]"`
	Notes   string
}

// fromDomain converts a submission aggregate to its database representation.
func fromDomain(aggregate *bol.Submission) SubmissionDTO {
	data := aggregate.BOLData()

	dto := SubmissionDTO{
		ID:               aggregate.ID().Bytes(),
		LoadID:           aggregate.LoadID(),
		LoadIdentifierID: aggregate.LoadIdentifierID(),
		DriverID:         aggregate.DriverID(),
		DriverName:       aggregate.DriverName(),
		BrokerID:         aggregate.BrokerID(),
		BrokerName:       aggregate.BrokerName(),
		ShipperID:        aggregate.ShipperID(),
		ShipperName:      aggregate.ShipperName(),
		ShipperEmail:     aggregate.ShipperEmail(),
		BOLData: BOLDataDTO{
			Number:            data.BOLNumber,
			ProNumber:         data.PRONumber,
			DeliveryDate:      data.DeliveryDate,
			DeliveryTime:      data.DeliveryTime,
			ReceiverName:      data.ReceiverName,
			DriverSignature:   data.DriverSignature,
			ReceiverSignature: data.ReceiverSignature,
			PickupPhotos:      pq.StringArray(data.PickupPhotos),
			DeliveryPhotos:    pq.StringArray(data.DeliveryPhotos),
			SealNumbers:       pq.StringArray(data.SealNumbers),
			Weight:            data.Weight,
			Pieces:            data.Pieces,
			Damages:           pq.StringArray(data.Damages),
			Notes:             data.Notes,
		},
		Status:         int(aggregate.Status()),
		ReviewNotes:    aggregate.ReviewNotes(),
		SubmittedAt:    aggregate.SubmittedAt(),
		BrokerReviewAt: aggregate.BrokerReviewAt(),
		ApprovedAt:     aggregate.ApprovedAt(),
		InvoiceSentAt:  aggregate.InvoiceSentAt(),
		CompletedAt:    aggregate.CompletedAt(),
		RejectedAt:     aggregate.RejectedAt(),
	}

	if invoice := aggregate.Invoice(); invoice != nil {
		invoiceID := invoice.ID()
		baseRate := invoice.BaseRate()
		adjustments := invoice.Adjustments()
		total := invoice.Total()
		dueDate := invoice.DueDate()
		generatedAt := invoice.GeneratedAt()

		dto.InvoiceID = &invoiceID
		dto.InvoiceBaseRate = &baseRate
		dto.InvoiceAdjustments = &adjustments
		dto.InvoiceTotal = &total
		dto.InvoiceDueDate = &dueDate
		dto.InvoiceGeneratedAt = &generatedAt
	}

	return dto
}

// toDomain converts a database DTO back to a submission aggregate.
func toDomain(dto SubmissionDTO) (*bol.Submission, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var invoice *bol.Invoice
	if dto.InvoiceID != nil {
		var adjustments bol.Adjustments
		if dto.InvoiceAdjustments != nil {
			adjustments = *dto.InvoiceAdjustments
		}

		restored, invErr := bol.NewInvoice(
			*dto.InvoiceID,
			derefFloat(dto.InvoiceBaseRate),
			adjustments,
			derefFloat(dto.InvoiceTotal),
			derefTime(dto.InvoiceDueDate),
			derefTime(dto.InvoiceGeneratedAt),
		)
		if invErr != nil {
			return nil, invErr
		}
		invoice = &restored
	}

	return bol.RestoreSubmission(bol.RestoreSubmissionParams{
		ID:               id,
		LoadID:           dto.LoadID,
		LoadIdentifierID: dto.LoadIdentifierID,
		DriverID:         dto.DriverID,
		DriverName:       dto.DriverName,
		BrokerID:         dto.BrokerID,
		BrokerName:       dto.BrokerName,
		ShipperID:        dto.ShipperID,
		ShipperName:      dto.ShipperName,
		ShipperEmail:     dto.ShipperEmail,
		BOLData: bol.BOLData{
			BOLNumber:         dto.BOLData.Number,
			PRONumber:         dto.BOLData.ProNumber,
			DeliveryDate:      dto.BOLData.DeliveryDate,
			DeliveryTime:      dto.BOLData.DeliveryTime,
			ReceiverName:      dto.BOLData.ReceiverName,
			DriverSignature:   dto.BOLData.DriverSignature,
			ReceiverSignature: dto.BOLData.ReceiverSignature,
			PickupPhotos:      []string(dto.BOLData.PickupPhotos),
			DeliveryPhotos:    []string(dto.BOLData.DeliveryPhotos),
			SealNumbers:       []string(dto.BOLData.SealNumbers),
			Weight:            dto.BOLData.Weight,
			Pieces:            dto.BOLData.Pieces,
			Damages:           []string(dto.BOLData.Damages),
			Notes:             dto.BOLData.Notes,
		},
		Status:         bol.Status(dto.Status),
		ReviewNotes:    dto.ReviewNotes,
		Invoice:        invoice,
		SubmittedAt:    dto.SubmittedAt,
		BrokerReviewAt: dto.BrokerReviewAt,
		ApprovedAt:     dto.ApprovedAt,
		InvoiceSentAt:  dto.InvoiceSentAt,
		CompletedAt:    dto.CompletedAt,
		RejectedAt:     dto.RejectedAt,
	})
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefTime(v *time.Time) time.Time {
	if v == nil {
		return time.Time{}
	}
	return *v
}
