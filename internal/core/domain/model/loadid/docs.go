// Package loadid implements the structured load identifier codec.
//
// A primary load identifier encodes broker, pickup date, route, shipper,
// equipment, load type, weight class, and a per-day sequence into a single
// human-readable string:
//
//	JD-25001-ATLMIA-WMT-DVFM-001
//	│  │     │      │   │    └ sequence (3 digits)
//	│  │     │      │   └ equipment + load type + weight class
//	│  │     │      └ shipper code
//	│  │     └ origin + destination codes
//	│  └ date code (2-digit year + day of year)
//	└ broker initials
//
// Generation is pure apart from the caller-supplied sequence number and
// timestamp, and it never fails: any unresolvable input degrades to a
// fallback code so identifier generation can never block the BOL workflow.
// Parse recovers the encoded components from a valid identifier; the check
// digit is a transcription-error aid, not an integrity guarantee.
package loadid
