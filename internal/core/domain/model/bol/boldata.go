package bol

// BOLData holds the delivery facts captured by the driver at the dock.
// It is a value object copied into the submission at creation and never
// modified afterwards. Signature fields carry raw captured payloads; they
// are redacted to presence booleans in broker-facing projections.
type BOLData struct {
	BOLNumber    string
	PRONumber    string
	DeliveryDate string
	DeliveryTime string
	ReceiverName string

	DriverSignature   string
	ReceiverSignature string

	PickupPhotos   []string
	DeliveryPhotos []string
	SealNumbers    []string

	Weight  string
	Pieces  int
	Damages []string
	Notes   string
}

// IsEmpty reports whether the payload carries no delivery facts at all.
// Submissions require at least a BOL number or a delivery date.
func (d BOLData) IsEmpty() bool {
	return d.BOLNumber == "" && d.DeliveryDate == ""
}

// HasDriverSignature reports presence of the driver signature payload.
func (d BOLData) HasDriverSignature() bool {
	return d.DriverSignature != ""
}

// HasReceiverSignature reports presence of the receiver signature payload.
func (d BOLData) HasReceiverSignature() bool {
	return d.ReceiverSignature != ""
}
