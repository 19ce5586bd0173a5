package directory

import "strings"

// Display names for US state and Canadian province/territory codes.
// Unknown codes intentionally pass through unmapped (the raw code is shown),
// matching how the site has always rendered stray region values.
var stateNames = map[string]string{
	// --- US states + DC ---
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming", "DC": "District of Columbia",

	// --- Canadian provinces + territories ---
	"AB": "Alberta", "BC": "British Columbia", "SK": "Saskatchewan",
	"MB": "Manitoba", "ON": "Ontario", "QC": "Quebec", "NB": "New Brunswick",
	"NS": "Nova Scotia", "PE": "Prince Edward Island", "NL": "Newfoundland and Labrador",
	"YT": "Yukon", "NT": "Northwest Territories", "NU": "Nunavut",
}

var canadianProvinces = map[string]bool{
	"AB": true, "BC": true, "SK": true, "MB": true, "ON": true, "QC": true,
	"NB": true, "NS": true, "PE": true, "NL": true, "YT": true, "NT": true,
	"NU": true,
}

// StateName resolves a region code to its display name, falling back to the
// raw code for unknown values.
func StateName(code string) string {
	if name, ok := stateNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// StateSlug builds the URL slug for a state page: "can-on", "usa-ca".
// Codes not in the Canadian table default to the usa prefix.
func StateSlug(code string) string {
	prefix := "usa"
	if canadianProvinces[strings.ToUpper(code)] {
		prefix = "can"
	}
	return prefix + "-" + strings.ToLower(code)
}
