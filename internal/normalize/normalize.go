// Package normalize turns raw query-string values into typed, bounded inputs.
// Nothing here returns an error: malformed input degrades to the default or to absent.
package normalize

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
)

const (
	DefaultLimit = 25
	// MaxOffset bounds offsets so offset+limit stays far from int overflow.
	MaxOffset  = math.MaxInt32
	dateLayout = "2006-01-02"
)

var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
}

// Date returns raw as a YYYY-MM-DD calendar date, or "" when it cannot be parsed.
func Date(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayout)
		}
	}
	return ""
}

// Int parses raw, falling back to def, and clamps the result to [min, max].
func Int(raw string, def, min, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Mode maps raw onto a known transport mode. Unknown values mean all modes.
func Mode(raw string) domain.Mode {
	switch domain.Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case domain.ModeAir:
		return domain.ModeAir
	case domain.ModeOcean:
		return domain.ModeOcean
	default:
		return domain.ModeAll
	}
}

// Text trims raw and collapses runs of whitespace to a single space.
func Text(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// HSCode keeps only the digits of raw.
func HSCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SearchRequest builds a unified search from query parameters. limit defaults to
// DefaultLimit and is clamped to [1, maxLimit]; offset is clamped to [0, MaxOffset].
func SearchRequest(values url.Values, maxLimit int) domain.SearchRequest {
	if maxLimit < 1 {
		maxLimit = DefaultLimit
	}
	def := DefaultLimit
	if def > maxLimit {
		def = maxLimit
	}

	req := domain.SearchRequest{
		Query: Text(values.Get("q")),
		Mode:  Mode(values.Get("mode")),
		Filters: domain.SearchFilters{
			DateFrom:           Date(values.Get("date_from")),
			DateTo:             Date(values.Get("date_to")),
			HSCode:             HSCode(values.Get("hs_code")),
			OriginCountry:      Text(values.Get("origin_country")),
			OriginCity:         Text(values.Get("origin_city")),
			DestinationCountry: Text(values.Get("destination_country")),
			DestinationCity:    Text(values.Get("destination_city")),
			Carrier:            Text(values.Get("carrier")),
		},
		Limit:  Int(values.Get("limit"), def, 1, maxLimit),
		Offset: Int(values.Get("offset"), 0, 0, MaxOffset),
	}

	// ISO dates compare lexically.
	f := &req.Filters
	if f.DateFrom != "" && f.DateTo != "" && f.DateFrom > f.DateTo {
		f.DateFrom, f.DateTo = f.DateTo, f.DateFrom
	}
	return req
}
