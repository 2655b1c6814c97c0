// Package estimate holds the deterministic tariff and freight heuristics.
// Results are indicative only and never a customs or carrier determination.
package estimate

import (
	"fmt"
	"math"
	"strings"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/normalize"
)

const (
	// DefaultDutyRate applies to every chapter without an override.
	DefaultDutyRate = 3.0
	// BaseTaxRate is the flat tax percentage before the DDP multiplier.
	BaseTaxRate   = 1.0
	ddpMultiplier = 1.5

	Disclaimer = "Non-binding estimate based on static heuristics; not a customs ruling or carrier quote."
)

// dutyOverrides are duty percentages keyed by HS chapter.
var dutyOverrides = map[string]float64{
	"84": 1.5,
	"85": 2.5,
	"61": 12,
	"62": 12,
	"64": 10,
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Chapter returns the two-digit HS chapter of code, or "" when there are fewer than two digits.
func Chapter(code string) string {
	digits := normalize.HSCode(code)
	if len(digits) < 2 {
		return ""
	}
	return digits[:2]
}

// DutyRate returns the duty percentage for an HS code.
func DutyRate(code string) float64 {
	if rate, ok := dutyOverrides[Chapter(code)]; ok {
		return rate
	}
	return DefaultDutyRate
}

// IsDDP reports whether incoterm is Delivered Duty Paid.
func IsDDP(incoterm string) bool {
	return strings.EqualFold(strings.TrimSpace(incoterm), "DDP")
}

// Tariff estimates duty and tax on a customs value.
func Tariff(in domain.TariffInput) domain.TariffEstimate {
	chapter := Chapter(in.HSCode)
	duty := DutyRate(in.HSCode)
	tax := BaseTaxRate

	var notes []string
	if _, ok := dutyOverrides[chapter]; ok {
		notes = append(notes, fmt.Sprintf("HS chapter %s duty rate %.1f%% applied.", chapter, duty))
	} else if chapter != "" {
		notes = append(notes, fmt.Sprintf("No override for HS chapter %s; default duty rate %.1f%% applied.", chapter, duty))
	} else {
		notes = append(notes, fmt.Sprintf("HS code missing or too short; default duty rate %.1f%% applied.", duty))
	}
	if IsDDP(in.Incoterm) {
		tax *= ddpMultiplier
		notes = append(notes, fmt.Sprintf("DDP incoterm: tax multiplied by %.1f.", ddpMultiplier))
	}
	notes = append(notes, Disclaimer)

	value := in.CustomsValue
	if value < 0 {
		value = 0
	}
	estDuty := round2(value * duty / 100)
	// DDP scales the cent-rounded base tax so the ratio holds on the reported amounts.
	estTax := round2(value * BaseTaxRate / 100)
	if IsDDP(in.Incoterm) {
		estTax = round2(estTax * ddpMultiplier)
	}

	return domain.TariffEstimate{
		HSCode:   normalize.HSCode(in.HSCode),
		Chapter:  chapter,
		DutyRate: duty,
		TaxRate:  tax,
		EstDuty:  estDuty,
		EstTax:   estTax,
		EstTotal: round2(estDuty + estTax),
		Notes:    strings.Join(notes, " "),
	}
}
