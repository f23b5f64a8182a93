package loadid

import "strings"

// locationCodes maps "CITY, ST" to the three-letter code used in route
// segments. Major freight markets only; everything else derives a code.
var locationCodes = map[string]string{
	"ATLANTA, GA":        "ATL",
	"MIAMI, FL":          "MIA",
	"CHICAGO, IL":        "CHI",
	"DALLAS, TX":         "DFW",
	"HOUSTON, TX":        "HOU",
	"NEW YORK, NY":       "NYC",
	"SEATTLE, WA":        "SEA",
	"LOS ANGELES, CA":    "LAX",
	"PHOENIX, AZ":        "PHX",
	"DENVER, CO":         "DEN",
	"MEMPHIS, TN":        "MEM",
	"NASHVILLE, TN":      "BNA",
	"CHARLOTTE, NC":      "CLT",
	"COLUMBUS, OH":       "CMH",
	"DETROIT, MI":        "DTW",
	"INDIANAPOLIS, IN":   "IND",
	"KANSAS CITY, MO":    "MCI",
	"ST. LOUIS, MO":      "STL",
	"MINNEAPOLIS, MN":    "MSP",
	"PORTLAND, OR":       "PDX",
	"SALT LAKE CITY, UT": "SLC",
	"LAS VEGAS, NV":      "LAS",
	"SAN FRANCISCO, CA":  "SFO",
	"SAN DIEGO, CA":      "SAN",
	"SAN ANTONIO, TX":    "SAT",
	"AUSTIN, TX":         "AUS",
	"EL PASO, TX":        "ELP",
	"JACKSONVILLE, FL":   "JAX",
	"ORLANDO, FL":        "MCO",
	"TAMPA, FL":          "TPA",
	"NEW ORLEANS, LA":    "MSY",
	"BALTIMORE, MD":      "BWI",
	"PHILADELPHIA, PA":   "PHL",
	"PITTSBURGH, PA":     "PIT",
	"BOSTON, MA":         "BOS",
	"CINCINNATI, OH":     "CVG",
	"CLEVELAND, OH":      "CLE",
	"MILWAUKEE, WI":      "MKE",
	"OKLAHOMA CITY, OK":  "OKC",
	"ALBUQUERQUE, NM":    "ABQ",
	"BOISE, ID":          "BOI",
	"OMAHA, NE":          "OMA",
	"LOUISVILLE, KY":     "SDF",
	"RICHMOND, VA":       "RIC",
	"SAVANNAH, GA":       "SAV",
	"BIRMINGHAM, AL":     "BHM",
	"LITTLE ROCK, AR":    "LIT",
	"TUCSON, AZ":         "TUS",
	"FRESNO, CA":         "FAT",
	"SACRAMENTO, CA":     "SMF",
	"SPOKANE, WA":        "GEG",
	"BUFFALO, NY":        "BUF",
	"LAREDO, TX":         "LRD",
}

// equipmentCodes maps trailer descriptions to two-letter codes.
// Unknown equipment falls back to "GE" (general equipment).
var equipmentCodes = map[string]string{
	"DRY VAN":      "DV",
	"VAN":          "DV",
	"REFRIGERATED": "RF",
	"REEFER":       "RF",
	"FLATBED":      "FB",
	"STEP DECK":    "SD",
	"STEPDECK":     "SD",
	"LOWBOY":       "LB",
	"POWER ONLY":   "PO",
	"BOX TRUCK":    "BT",
	"TANKER":       "TK",
	"CONESTOGA":    "CG",
	"HOTSHOT":      "HS",
	"CONTAINER":    "CN",
	"AUTO CARRIER": "AC",
	"DUMP":         "DP",
}

const fallbackEquipmentCode = "GE"

// loadTypeCodes maps load types to their single-letter code. FTL is the
// default when the type is missing or unknown.
var loadTypeCodes = map[string]string{
	"FTL":       "F",
	"LTL":       "L",
	"PARTIAL":   "P",
	"EXPEDITED": "E",
	"HAZMAT":    "H",
}

const fallbackLoadTypeCode = "F"

// shipperCodes maps known company names to interoffice abbreviations.
// Matching is by substring so "Walmart Distribution" resolves to WMT.
var shipperCodes = map[string]string{
	"WALMART":        "WMT",
	"AMAZON":         "AMZ",
	"HOME DEPOT":     "HD",
	"TARGET":         "TGT",
	"COSTCO":         "CST",
	"KROGER":         "KRG",
	"LOWES":          "LOW",
	"LOWE'S":         "LOW",
	"FEDEX":          "FDX",
	"UPS":            "UPS",
	"SYSCO":          "SYY",
	"PEPSICO":        "PEP",
	"COCA-COLA":      "KO",
	"COCA COLA":      "KO",
	"PROCTER":        "PG",
	"NESTLE":         "NSE",
	"GENERAL MILLS":  "GIS",
	"TYSON":          "TSN",
	"DOLLAR GENERAL": "DG",
	"WALGREENS":      "WAG",
	"CVS":            "CVS",
	"ALDI":           "ALD",
	"IKEA":           "IKE",
	"BEST BUY":       "BBY",
	"WAYFAIR":        "WAY",
}

// weightClassCodes maps explicit weight classes to their letter.
var weightClassCodes = map[string]string{
	"LIGHT":      "L",
	"MEDIUM":     "M",
	"HEAVY":      "H",
	"OVERWEIGHT": "O",
}

// weightClassDescriptions is the reverse mapping used for display.
var weightClassDescriptions = map[string]string{
	"L": "Light (Under 20,000 lbs)",
	"M": "Medium (20,000 - 40,000 lbs)",
	"H": "Heavy (40,000 - 60,000 lbs)",
	"O": "Overweight (Over 60,000 lbs)",
}

// Weight thresholds in pounds for deriving a class from a numeric weight.
const (
	lightWeightMaxLbs  = 20000
	mediumWeightMaxLbs = 40000
	heavyWeightMaxLbs  = 60000
)

// WeightClassDescription returns the human-readable range for a weight class
// code, or "Unknown" for an unrecognized code.
func WeightClassDescription(code string) string {
	if desc, ok := weightClassDescriptions[strings.ToUpper(code)]; ok {
		return desc
	}
	return "Unknown"
}
