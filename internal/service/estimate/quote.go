package estimate

import (
	"fmt"
	"math"
	"strings"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
)

const (
	AirRatePerKg         = 4.25
	AirMinChargeableKg   = 45.0
	OceanRatePerBox      = 2150.0
	LaneSurchargePercent = 12.0
	FuelSurchargePercent = 8.0
)

// regions groups ISO country codes into trade regions for the lane surcharge.
var regions = map[string]string{
	"US": "north_america", "CA": "north_america", "MX": "north_america",
	"BR": "latin_america", "AR": "latin_america", "CL": "latin_america", "CO": "latin_america", "PE": "latin_america",
	"GB": "europe", "IE": "europe", "DE": "europe", "FR": "europe", "NL": "europe", "BE": "europe",
	"IT": "europe", "ES": "europe", "PT": "europe", "PL": "europe", "SE": "europe", "DK": "europe",
	"CN": "asia_pacific", "HK": "asia_pacific", "TW": "asia_pacific", "JP": "asia_pacific", "KR": "asia_pacific",
	"VN": "asia_pacific", "TH": "asia_pacific", "MY": "asia_pacific", "SG": "asia_pacific", "ID": "asia_pacific",
	"IN": "asia_pacific", "AU": "asia_pacific", "NZ": "asia_pacific", "PH": "asia_pacific", "BD": "asia_pacific",
	"AE": "middle_east_africa", "SA": "middle_east_africa", "TR": "middle_east_africa", "EG": "middle_east_africa",
	"ZA": "middle_east_africa", "NG": "middle_east_africa", "KE": "middle_east_africa", "MA": "middle_east_africa",
}

// Region returns the trade region of a country code, "other" when unknown and "" when empty.
func Region(country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return ""
	}
	if r, ok := regions[country]; ok {
		return r
	}
	return "other"
}

// Quote estimates freight plus duty and tax for a shipment. Unknown modes are quoted as ocean.
func Quote(in domain.QuoteInput) domain.FreightQuote {
	mode := in.Mode
	if mode != domain.ModeAir {
		mode = domain.ModeOcean
	}

	var notes []string
	var base float64
	if mode == domain.ModeAir {
		kg := math.Max(in.WeightKg, AirMinChargeableKg)
		base = kg * AirRatePerKg
		notes = append(notes, fmt.Sprintf("Air freight %.1f chargeable kg at $%.2f/kg.", kg, AirRatePerKg))
	} else {
		boxes := in.Containers
		if boxes < 1 {
			boxes = 1
		}
		base = float64(boxes) * OceanRatePerBox
		notes = append(notes, fmt.Sprintf("Ocean freight %d container(s) at $%.0f each.", boxes, OceanRatePerBox))
	}

	var lane float64
	origin, dest := Region(in.OriginCountry), Region(in.DestinationCountry)
	if origin != "" && dest != "" && origin != dest {
		lane = base * LaneSurchargePercent / 100
		notes = append(notes, fmt.Sprintf("Inter-region lane surcharge %.0f%%.", LaneSurchargePercent))
	}
	fuel := base * FuelSurchargePercent / 100
	notes = append(notes, fmt.Sprintf("Fuel surcharge %.0f%%.", FuelSurchargePercent))

	freight := round2(base + lane + fuel)
	tariff := Tariff(domain.TariffInput{
		HSCode:       in.HSCode,
		Incoterm:     in.Incoterm,
		CustomsValue: in.CustomsValue,
	})
	notes = append(notes, Disclaimer)

	return domain.FreightQuote{
		Mode:          mode,
		BaseFreight:   round2(base),
		LaneSurcharge: round2(lane),
		FuelSurcharge: round2(fuel),
		Freight:       freight,
		Tariff:        tariff,
		Total:         round2(freight + tariff.EstTotal),
		Currency:      "USD",
		Notes:         strings.Join(notes, " "),
	}
}
