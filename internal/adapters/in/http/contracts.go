package http

import (
	"errors"
	"net/http"
	"time"

	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/loadid"
	"freightflow/internal/pkg/errs"
)

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GenerateLoadIdentifiersRequest carries the load facts identifier
// generation is derived from. Every field is optional.
type GenerateLoadIdentifiersRequest struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	PickupDate     string  `json:"pickupDate"`
	EquipmentType  string  `json:"equipmentType"`
	LoadType       string  `json:"loadType"`
	WeightClass    string  `json:"weightClass"`
	WeightLbs      float64 `json:"weightLbs"`
	Commodity      string  `json:"commodity"`
	BrokerInitials string  `json:"brokerInitials"`
	BrokerName     string  `json:"brokerName"`
	ShipperName    string  `json:"shipperName"`
	IsHazmat       bool    `json:"isHazmat"`
	IsExpedited    bool    `json:"isExpedited"`
	IsRefrigerated bool    `json:"isRefrigerated"`
	IsOversized    bool    `json:"isOversized"`
}

func (r GenerateLoadIdentifiersRequest) toData() loadid.LoadIdentificationData {
	data := loadid.LoadIdentificationData{
		Origin:         r.Origin,
		Destination:    r.Destination,
		EquipmentType:  r.EquipmentType,
		LoadType:       r.LoadType,
		WeightClass:    r.WeightClass,
		WeightLbs:      r.WeightLbs,
		Commodity:      r.Commodity,
		BrokerInitials: r.BrokerInitials,
		BrokerName:     r.BrokerName,
		ShipperName:    r.ShipperName,
		IsHazmat:       r.IsHazmat,
		IsExpedited:    r.IsExpedited,
		IsRefrigerated: r.IsRefrigerated,
		IsOversized:    r.IsOversized,
	}

	if r.PickupDate != "" {
		if pickup, err := time.Parse("2006-01-02", r.PickupDate); err == nil {
			data.PickupDate = pickup
		}
	}

	return data
}

// GenerateLoadIdentifiersResponse is the full identifier set for a load.
type GenerateLoadIdentifiersResponse struct {
	LoadID         string `json:"loadId"`
	ShortID        string `json:"shortId"`
	TrackingNumber string `json:"trackingNumber"`
	BOLNumber      string `json:"bolNumber"`
	PRONumber      string `json:"proNumber"`

	BrokerReference  string `json:"brokerReference"`
	ShipperReference string `json:"shipperReference"`
	VendorReference  string `json:"vendorReference"`

	RouteCode       string `json:"routeCode"`
	LaneCode        string `json:"laneCode"`
	EquipmentCode   string `json:"equipmentCode"`
	ServiceCode     string `json:"serviceCode"`
	WeightClassCode string `json:"weightClassCode"`
	DateCode        string `json:"dateCode"`
	CheckDigit      int    `json:"checkDigit"`

	GeneratedAt time.Time `json:"generatedAt"`
	Version     string    `json:"version"`
}

func newGenerateLoadIdentifiersResponse(ids loadid.GeneratedLoadIdentifiers) GenerateLoadIdentifiersResponse {
	return GenerateLoadIdentifiersResponse{
		LoadID:           ids.LoadID,
		ShortID:          ids.ShortID,
		TrackingNumber:   ids.TrackingNumber,
		BOLNumber:        ids.BOLNumber,
		PRONumber:        ids.PRONumber,
		BrokerReference:  ids.BrokerReference,
		ShipperReference: ids.ShipperReference,
		VendorReference:  ids.VendorReference,
		RouteCode:        ids.RouteCode,
		LaneCode:         ids.LaneCode,
		EquipmentCode:    ids.EquipmentCode,
		ServiceCode:      ids.ServiceCode,
		WeightClassCode:  ids.WeightClassCode,
		DateCode:         ids.DateCode,
		CheckDigit:       ids.CheckDigit,
		GeneratedAt:      ids.GeneratedAt,
		Version:          ids.Version,
	}
}

// BOLDataRequest carries the delivery facts the driver captured at the dock.
type BOLDataRequest struct {
	BOLNumber    string `json:"bolNumber"`
	PRONumber    string `json:"proNumber"`
	DeliveryDate string `json:"deliveryDate"`
	DeliveryTime string `json:"deliveryTime"`
	ReceiverName string `json:"receiverName"`

	DriverSignature   string `json:"driverSignature"`
	ReceiverSignature string `json:"receiverSignature"`

	PickupPhotos   []string `json:"pickupPhotos"`
	DeliveryPhotos []string `json:"deliveryPhotos"`
	SealNumbers    []string `json:"sealNumbers"`

	Weight  string   `json:"weight"`
	Pieces  int      `json:"pieces"`
	Damages []string `json:"damages"`
	Notes   string   `json:"notes"`
}

func (r BOLDataRequest) toBOLData() bol.BOLData {
	return bol.BOLData{
		BOLNumber:         r.BOLNumber,
		PRONumber:         r.PRONumber,
		DeliveryDate:      r.DeliveryDate,
		DeliveryTime:      r.DeliveryTime,
		ReceiverName:      r.ReceiverName,
		DriverSignature:   r.DriverSignature,
		ReceiverSignature: r.ReceiverSignature,
		PickupPhotos:      r.PickupPhotos,
		DeliveryPhotos:    r.DeliveryPhotos,
		SealNumbers:       r.SealNumbers,
		Weight:            r.Weight,
		Pieces:            r.Pieces,
		Damages:           r.Damages,
		Notes:             r.Notes,
	}
}

// SubmitBOLRequest is the driver's paperwork submission.
type SubmitBOLRequest struct {
	LoadID           string `json:"loadId"`
	LoadIdentifierID string `json:"loadIdentifierId"`

	DriverID      string `json:"driverId"`
	DriverName    string `json:"driverName"`
	DriverContact string `json:"driverContact"`

	BrokerID      string `json:"brokerId"`
	BrokerName    string `json:"brokerName"`
	BrokerContact string `json:"brokerContact"`

	ShipperID    string `json:"shipperId"`
	ShipperName  string `json:"shipperName"`
	ShipperEmail string `json:"shipperEmail"`

	BOLData BOLDataRequest `json:"bolData"`
}

// SubmitBOLResponse returns the id of the newly created submission.
type SubmitBOLResponse struct {
	SubmissionID string `json:"submissionId"`
}

// ReviewBOLRequest is the broker's decision on a submission.
type ReviewBOLRequest struct {
	BrokerID    string `json:"brokerId"`
	Approved    bool   `json:"approved"`
	ReviewNotes string `json:"reviewNotes"`

	BaseRate    float64          `json:"baseRate"`
	Adjustments *bol.Adjustments `json:"adjustments"`
	BillTo      string           `json:"billTo"`

	DriverContact string `json:"driverContact"`
}

// ReviewBOLResponse reports the outcome of the review decision.
type ReviewBOLResponse struct {
	Status    string  `json:"status"`
	InvoiceID *string `json:"invoiceId,omitempty"`
}

// SubmissionSummary is one row of a broker's review queue.
type SubmissionSummary struct {
	ID               string    `json:"id"`
	LoadIdentifierID string    `json:"loadIdentifierId"`
	DriverName       string    `json:"driverName"`
	ShipperName      string    `json:"shipperName"`
	Status           string    `json:"status"`
	SubmittedAt      time.Time `json:"submittedAt"`

	HasDriverSignature   bool `json:"hasDriverSignature"`
	HasReceiverSignature bool `json:"hasReceiverSignature"`

	InvoiceID    *string  `json:"invoiceId,omitempty"`
	InvoiceTotal *float64 `json:"invoiceTotal,omitempty"`
}

func newSubmissionSummary(row queries.GetBrokerSubmissionsQueryResponse) SubmissionSummary {
	return SubmissionSummary{
		ID:                   row.ID.String(),
		LoadIdentifierID:     row.LoadIdentifierID,
		DriverName:           row.DriverName,
		ShipperName:          row.ShipperName,
		Status:               row.Status,
		SubmittedAt:          row.SubmittedAt,
		HasDriverSignature:   row.HasDriverSignature,
		HasReceiverSignature: row.HasReceiverSignature,
		InvoiceID:            row.InvoiceID,
		InvoiceTotal:         row.InvoiceTotal,
	}
}

// SubmissionDetail is the full broker-facing view of one submission. Raw
// signature payloads are redacted to presence booleans.
type SubmissionDetail struct {
	ID               string `json:"id"`
	LoadID           string `json:"loadId"`
	LoadIdentifierID string `json:"loadIdentifierId"`

	DriverID   string `json:"driverId"`
	DriverName string `json:"driverName"`
	BrokerID   string `json:"brokerId"`
	BrokerName string `json:"brokerName"`

	ShipperID    string `json:"shipperId"`
	ShipperName  string `json:"shipperName"`
	ShipperEmail string `json:"shipperEmail"`

	BOLNumber    string `json:"bolNumber"`
	PRONumber    string `json:"proNumber"`
	DeliveryDate string `json:"deliveryDate"`
	DeliveryTime string `json:"deliveryTime"`
	ReceiverName string `json:"receiverName"`

	HasDriverSignature   bool `json:"hasDriverSignature"`
	HasReceiverSignature bool `json:"hasReceiverSignature"`

	PickupPhotos   []string `json:"pickupPhotos"`
	DeliveryPhotos []string `json:"deliveryPhotos"`
	SealNumbers    []string `json:"sealNumbers"`
	Weight         string   `json:"weight"`
	Pieces         int      `json:"pieces"`
	Damages        []string `json:"damages"`
	Notes          string   `json:"notes"`

	Status      string `json:"status"`
	ReviewNotes string `json:"reviewNotes"`

	InvoiceID      *string    `json:"invoiceId,omitempty"`
	InvoiceTotal   *float64   `json:"invoiceTotal,omitempty"`
	InvoiceDueDate *time.Time `json:"invoiceDueDate,omitempty"`

	SubmittedAt    time.Time  `json:"submittedAt"`
	BrokerReviewAt time.Time  `json:"brokerReviewAt"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
	InvoiceSentAt  *time.Time `json:"invoiceSentAt,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	RejectedAt     *time.Time `json:"rejectedAt,omitempty"`
}

func newSubmissionDetail(row queries.GetSubmissionQueryResponse) SubmissionDetail {
	return SubmissionDetail{
		ID:                   row.ID.String(),
		LoadID:               row.LoadID,
		LoadIdentifierID:     row.LoadIdentifierID,
		DriverID:             row.DriverID,
		DriverName:           row.DriverName,
		BrokerID:             row.BrokerID,
		BrokerName:           row.BrokerName,
		ShipperID:            row.ShipperID,
		ShipperName:          row.ShipperName,
		ShipperEmail:         row.ShipperEmail,
		BOLNumber:            row.BOLNumber,
		PRONumber:            row.PRONumber,
		DeliveryDate:         row.DeliveryDate,
		DeliveryTime:         row.DeliveryTime,
		ReceiverName:         row.ReceiverName,
		HasDriverSignature:   row.HasDriverSignature,
		HasReceiverSignature: row.HasReceiverSignature,
		PickupPhotos:         row.PickupPhotos,
		DeliveryPhotos:       row.DeliveryPhotos,
		SealNumbers:          row.SealNumbers,
		Weight:               row.Weight,
		Pieces:               row.Pieces,
		Damages:              row.Damages,
		Notes:                row.Notes,
		Status:               row.Status,
		ReviewNotes:          row.ReviewNotes,
		InvoiceID:            row.InvoiceID,
		InvoiceTotal:         row.InvoiceTotal,
		InvoiceDueDate:       row.InvoiceDueDate,
		SubmittedAt:          row.SubmittedAt,
		BrokerReviewAt:       row.BrokerReviewAt,
		ApprovedAt:           row.ApprovedAt,
		InvoiceSentAt:        row.InvoiceSentAt,
		CompletedAt:          row.CompletedAt,
		RejectedAt:           row.RejectedAt,
	}
}

// NotificationView is one row of the notification log.
type NotificationView struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submissionId"`

	Type          string `json:"type"`
	RecipientID   string `json:"recipientId"`
	RecipientRole string `json:"recipientRole"`
	RecipientName string `json:"recipientName"`

	Channels []string `json:"channels"`
	Message  string   `json:"message"`
	Urgency  string   `json:"urgency"`

	Status   string `json:"status"`
	Attempts int    `json:"attempts"`

	CreatedAt time.Time  `json:"createdAt"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
}

func newNotificationView(row queries.GetNotificationsQueryResponse) NotificationView {
	return NotificationView{
		ID:            row.ID.String(),
		SubmissionID:  row.SubmissionID.String(),
		Type:          row.Type,
		RecipientID:   row.RecipientID,
		RecipientRole: row.RecipientRole,
		RecipientName: row.RecipientName,
		Channels:      row.Channels,
		Message:       row.Message,
		Urgency:       row.Urgency,
		Status:        row.Status,
		Attempts:      row.Attempts,
		CreatedAt:     row.CreatedAt,
		SentAt:        row.SentAt,
	}
}

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvariantViolation):
		return http.StatusConflict
	case errors.Is(err, errs.ErrGatewayFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(err error) (int, Error) {
	code := statusFor(err)
	return code, Error{Code: code, Message: err.Error()}
}
