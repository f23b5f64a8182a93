package loadid

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"freightflow/internal/pkg/errs"
)

// loadIDPattern is the structural shape of a primary load identifier:
// broker initials, date code, route, shipper code, equipment combo, sequence.
var loadIDPattern = regexp.MustCompile(`^[A-Z]{2,3}-\d{5}-[A-Z]{6}-[A-Z]{2,3}-[A-Z]{2,4}-\d{3}$`)

// ParsedLoadID holds the components recovered from a primary identifier.
// IsValid is false when the input does not match the structural pattern;
// all other fields are empty in that case.
type ParsedLoadID struct {
	IsValid        bool
	BrokerInitials string
	DateCode       string
	RouteCode      string
	ShipperCode    string
	EquipmentCode  string
	Sequence       string
}

// Validate reports whether loadID matches the structural identifier pattern.
func Validate(loadID string) bool {
	return loadIDPattern.MatchString(loadID)
}

// Parse splits a primary identifier into its components. For any generated
// identifier, Parse recovers exactly the broker initials, date code, route,
// shipper code, equipment code, and sequence that produced it.
func Parse(loadID string) ParsedLoadID {
	if !Validate(loadID) {
		return ParsedLoadID{}
	}

	parts := strings.Split(loadID, "-")

	return ParsedLoadID{
		IsValid:        true,
		BrokerInitials: parts[0],
		DateCode:       parts[1],
		RouteCode:      parts[2],
		ShipperCode:    parts[3],
		EquipmentCode:  parts[4][:2],
		Sequence:       parts[5],
	}
}

// DecodeDateCode reconstructs the pickup date from a 5-digit date code
// (2-digit year + day of year). Years are interpreted in the 2000s.
func DecodeDateCode(code string) (time.Time, error) {
	if len(code) != 5 {
		return time.Time{}, errs.NewValueIsInvalidError("dateCode")
	}

	year, err := strconv.Atoi(code[:2])
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("dateCode", err)
	}

	dayOfYear, err := strconv.Atoi(code[2:])
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("dateCode", err)
	}

	if dayOfYear < 1 || dayOfYear > 366 {
		return time.Time{}, errs.NewValueIsInvalidError("dateCode day of year")
	}

	return time.Date(2000+year, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, dayOfYear-1), nil
}
