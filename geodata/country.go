package geodata

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const regionalIndicatorA = 0x1F1E6

// CountryName returns the English name of an ISO 3166-1 alpha-2 code, or the
// code itself when it cannot be resolved.
func CountryName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	name := display.English.Regions().Name(region)
	if name == "" || name == "Unknown Region" {
		return code
	}
	return name
}

// FlagEmoji maps a two-letter country code onto the regional indicator
// symbols, which render as the country flag. Anything else yields "".
func FlagEmoji(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(regionalIndicatorA + (r - 'A'))
	}
	return b.String()
}
