package loadid

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Version identifies the codec revision embedded in generated identifier sets.
const Version = "1.0"

// Generate derives the full identifier set for a load. It is deterministic
// for a given (data, seq, now) triple and never fails: unresolvable inputs
// degrade to fallback codes so generation cannot block the workflow.
//
// seq is an externally coordinated monotonic sequence number; now supplies
// the generation timestamp.
func Generate(data LoadIdentificationData, seq int, now time.Time) GeneratedLoadIdentifiers {
	pickup := data.PickupDate
	if pickup.IsZero() {
		pickup = now
	}

	broker := brokerCode(data.BrokerInitials, data.BrokerName)
	originCode := locationCode(data.Origin)
	destCode := locationCode(data.Destination)
	shipper := shipperCode(data.ShipperName)
	equipment := equipmentCode(data.EquipmentType)
	loadType := loadTypeCode(data.LoadType)
	weightClass := weightClassCode(data.WeightClass, data.WeightLbs)
	service := serviceCode(data)
	dateCode := encodeDateCode(pickup)

	routeCode := originCode + destCode
	loadID := fmt.Sprintf("%s-%s-%s-%s-%s%s%s-%03d",
		broker, dateCode, routeCode, shipper, equipment, loadType, weightClass, seq%1000)

	ts := strconv.FormatInt(now.Unix(), 10)

	return GeneratedLoadIdentifiers{
		LoadID:         loadID,
		ShortID:        fmt.Sprintf("%s-%s-%s-%03d", broker, dateCode, routeCode, seq%1000),
		TrackingNumber: "TR" + hashCode(loadID+ts, 8),
		BOLNumber:      "BOL" + now.Format("20060102") + hashCode(loadID+"BOL", 4),
		PRONumber:      "PRO" + broker + fmt.Sprintf("%04d", rollingHash(loadID+"PRO")%10000),

		BrokerReference:  broker + "-" + hashCode(loadID+broker, 6),
		ShipperReference: shipper + "-" + hashCode(loadID+data.ShipperName, 6),
		VendorReference:  shipper + "-" + hashCode(loadID+data.ShipperName+"VENDOR", 6),

		RouteCode:       routeCode,
		LaneCode:        originCode + "-" + destCode,
		EquipmentCode:   equipment,
		ServiceCode:     service,
		WeightClassCode: weightClass,
		DateCode:        dateCode,
		CheckDigit:      CheckDigit(loadID),

		GeneratedAt: now,
		Version:     Version,
	}
}

// SequenceKey returns the shared counter key for a load: one counter per
// broker per pickup day, so sequences stay dense within a broker's daily
// postings and identical across process instances.
func SequenceKey(data LoadIdentificationData, now time.Time) string {
	pickup := data.PickupDate
	if pickup.IsZero() {
		pickup = now
	}
	return "loadid:seq:" + brokerCode(data.BrokerInitials, data.BrokerName) + ":" + encodeDateCode(pickup)
}

// CheckDigit computes the position-weighted checksum of an identifier:
// sum(byte * (position+1)) mod 10. It catches most single-character
// transcription errors and is not an integrity guarantee.
func CheckDigit(id string) int {
	sum := 0
	for i := 0; i < len(id); i++ {
		sum += int(id[i]) * (i + 1)
	}
	return sum % 10
}

// encodeDateCode renders a pickup date as 2-digit year plus zero-padded
// day of year, e.g. 2025-01-05 -> "25005".
func encodeDateCode(t time.Time) string {
	return fmt.Sprintf("%02d%03d", t.Year()%100, t.YearDay())
}

// locationCode resolves a "City, ST" location to a three-letter code.
// Resolution order: exact table lookup, partial city-name match, derived
// code from city and state letters, then a stripped alphabetic prefix.
// It always produces three letters.
func locationCode(location string) string {
	normalized := strings.ToUpper(strings.TrimSpace(location))
	if code, ok := locationCodes[normalized]; ok {
		return code
	}

	city, state := splitCityState(normalized)
	if city != "" {
		for _, key := range sortedKeys(locationCodes) {
			keyCity, _ := splitCityState(key)
			if strings.Contains(keyCity, city) || strings.Contains(city, keyCity) {
				return locationCodes[key]
			}
		}
	}

	if cityLetters := letters(city, 2); len(cityLetters) == 2 {
		if stateLetters := letters(state, 1); len(stateLetters) == 1 {
			return cityLetters + stateLetters
		}
	}

	return padCode(letters(normalized, 3), 3)
}

// splitCityState breaks "CITY, ST" into its parts. A missing comma leaves
// the state empty.
func splitCityState(s string) (string, string) {
	city, state, found := strings.Cut(s, ",")
	if !found {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(city), strings.TrimSpace(state)
}

func equipmentCode(equipment string) string {
	if code, ok := equipmentCodes[strings.ToUpper(strings.TrimSpace(equipment))]; ok {
		return code
	}
	return fallbackEquipmentCode
}

func loadTypeCode(loadType string) string {
	if code, ok := loadTypeCodes[strings.ToUpper(strings.TrimSpace(loadType))]; ok {
		return code
	}
	return fallbackLoadTypeCode
}

// weightClassCode resolves an explicit class first, then buckets a numeric
// weight, and defaults to Medium when neither is given.
func weightClassCode(class string, weightLbs float64) string {
	if code, ok := weightClassCodes[strings.ToUpper(strings.TrimSpace(class))]; ok {
		return code
	}

	if weightLbs > 0 {
		switch {
		case weightLbs < lightWeightMaxLbs:
			return "L"
		case weightLbs < mediumWeightMaxLbs:
			return "M"
		case weightLbs < heavyWeightMaxLbs:
			return "H"
		default:
			return "O"
		}
	}

	return "M"
}

// serviceCode concatenates one letter per active service flag, in a fixed
// order, and falls back to "S" (standard) when no flag applies.
func serviceCode(data LoadIdentificationData) string {
	var b strings.Builder
	if data.IsHazmat {
		b.WriteByte('H')
	}
	if data.IsExpedited {
		b.WriteByte('E')
	}
	if data.IsRefrigerated {
		b.WriteByte('R')
	}
	if data.IsOversized {
		b.WriteByte('O')
	}
	if b.Len() == 0 {
		return "S"
	}
	return b.String()
}

// brokerCode normalizes broker initials to 2-3 uppercase letters, deriving
// them from the broker name when initials are absent.
func brokerCode(initials, name string) string {
	code := letters(initials, 3)
	if code == "" {
		for _, word := range strings.Fields(name) {
			if letter := letters(word, 1); letter != "" {
				code += letter
			}
			if len(code) == 3 {
				break
			}
		}
	}
	return padCode(code, 2)
}

// shipperCode resolves a company name to a 2-3 letter abbreviation: known
// company table first, then first letters of the first two words, then a
// truncated prefix.
func shipperCode(name string) string {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for _, key := range sortedKeys(shipperCodes) {
		if strings.Contains(normalized, key) {
			return shipperCodes[key]
		}
	}

	words := strings.Fields(normalized)
	if len(words) >= 2 {
		code := letters(words[0], 1) + letters(words[1], 1)
		if len(code) == 2 {
			return code
		}
	}

	return padCode(letters(normalized, 3), 2)
}

// letters returns up to max uppercase letters from s, dropping every other
// character.
func letters(s string, max int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == max {
				break
			}
		}
	}
	return b.String()
}

// padCode right-pads a code with 'X' up to min characters so the identifier
// always matches the structural pattern.
func padCode(code string, min int) string {
	for len(code) < min {
		code += "X"
	}
	return code
}

// rollingHash is a small deterministic non-cryptographic hash (djb2) used
// for human-facing secondary reference numbers. It is not collision-proof;
// anything needing true uniqueness uses the sequence counter or a UUID.
func rollingHash(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

// hashCode renders a rolling hash as an n-character uppercase base-36 code,
// left-padded with zeros.
func hashCode(s string, n int) string {
	code := strings.ToUpper(strconv.FormatUint(uint64(rollingHash(s)), 36))
	for len(code) < n {
		code = "0" + code
	}
	return code[:n]
}

// sortedKeys returns map keys in a stable order so partial matching is
// deterministic across runs.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
