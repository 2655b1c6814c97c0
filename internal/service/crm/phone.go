package crm

import (
	"strings"

	"github.com/ttacon/libphonenumber"
)

// DefaultPhoneRegion is assumed for numbers without a country prefix.
const DefaultPhoneRegion = "US"

// NormalizePhone returns raw in E.164 form when it parses as a valid number,
// otherwise the trimmed input.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	num, err := libphonenumber.Parse(raw, DefaultPhoneRegion)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return raw
	}
	return libphonenumber.Format(num, libphonenumber.E164)
}
