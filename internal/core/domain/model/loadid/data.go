package loadid

import "time"

// LoadIdentificationData carries the shipment attributes that feed identifier
// generation. It is assembled once per load and passed by value; zero values
// for optional fields degrade to documented fallback codes instead of
// failing generation.
type LoadIdentificationData struct {
	// Origin and Destination are "City, ST" location strings.
	Origin      string
	Destination string

	// PickupDate drives the date code. A zero time falls back to the
	// generation timestamp.
	PickupDate time.Time

	// EquipmentType is the trailer description, e.g. "Dry Van".
	EquipmentType string

	// LoadType is one of FTL, LTL, Partial, Expedited, Hazmat.
	LoadType string

	// WeightClass is an explicit class (Light, Medium, Heavy, Overweight).
	// When empty, WeightLbs buckets the load; when both are missing the
	// class defaults to Medium.
	WeightClass string
	WeightLbs   float64

	Commodity string

	// BrokerInitials identify the managing broker, normalized to at most
	// three uppercase letters.
	BrokerInitials string
	BrokerName     string

	ShipperName string

	// Service flags appended to the service code.
	IsHazmat       bool
	IsExpedited    bool
	IsRefrigerated bool
	IsOversized    bool
}

// GeneratedLoadIdentifiers is the full identifier set derived from one
// LoadIdentificationData. It is immutable once produced and owned by the
// load that requested it.
type GeneratedLoadIdentifiers struct {
	LoadID         string
	ShortID        string
	TrackingNumber string
	BOLNumber      string
	PRONumber      string

	BrokerReference  string
	ShipperReference string
	VendorReference  string

	RouteCode       string
	LaneCode        string
	EquipmentCode   string
	ServiceCode     string
	WeightClassCode string
	DateCode        string
	CheckDigit      int

	GeneratedAt time.Time
	Version     string
}
