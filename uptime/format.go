package uptime

import (
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/stakestar/avaxtracker/avascan"
	"github.com/stakestar/avaxtracker/geodata"
	"github.com/stakestar/avaxtracker/utils"
)

// ExpirationLayout renders expirations as e.g. "May 1, 2024 10:00 UTC".
const ExpirationLayout = "January 2, 2006 15:04 UTC"

var expirationLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// FormatUptime turns an upstream average in [0,1] into a percentage with two decimals.
func FormatUptime(avg float64) float64 {
	return utils.Round(avg*100, 2)
}

// FormatStake converts nAVAX into AVAX with two decimals.
func FormatStake(amount avascan.Amount) Number {
	if !amount.Valid {
		return UnknownNumber()
	}
	return KnownNumber(utils.DivRound(amount.Value, units.Avax, 2))
}

// ParseExpiration parses an ISO-8601 timestamp. A trailing Z or an explicit
// offset is honoured; timestamps without a zone are taken as UTC.
func ParseExpiration(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range expirationLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized timestamp %q", raw)
}

func FormatExpiration(raw string) string {
	t, err := ParseExpiration(raw)
	if err != nil {
		return Unknown
	}
	return t.Format(ExpirationLayout)
}

// FormatExpiresIn describes the expiration relative to now, "" when unparseable.
func FormatExpiresIn(raw string, now time.Time) string {
	t, err := ParseExpiration(raw)
	if err != nil {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatLocation joins city and country, substituting Unknown for missing
// parts, and appends the flag of countryCode when withFlag is set.
func FormatLocation(city, country, countryCode string, withFlag bool) string {
	if city == "" {
		city = Unknown
	}
	if country == "" {
		country = Unknown
	}
	location := city + ", " + country
	if withFlag {
		if flag := geodata.FlagEmoji(countryCode); flag != "" {
			location += " " + flag
		}
	}
	return location
}
