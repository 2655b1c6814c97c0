package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
)

const topN = 5

// Count is a ranked value.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Aggregates summarize the sampled shipments of one company.
type Aggregates struct {
	TotalShipments   int            `json:"total_shipments"`
	SampledShipments int            `json:"sampled_shipments"`
	LatestShipment   string         `json:"latest_shipment,omitempty"`
	Modes            map[string]int `json:"modes"`
	TopLanes         []Count        `json:"top_lanes"`
	TopCarriers      []Count        `json:"top_carriers"`
	TopHSChapters    []Count        `json:"top_hs_chapters"`
}

func place(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}

// Lane renders origin to destination, or "" when either end is unknown.
func Lane(s domain.Shipment) string {
	from := place(s.OriginCity, s.OriginCountry)
	to := place(s.DestinationCity, s.DestinationCountry)
	if from == "" || to == "" {
		return ""
	}
	return fmt.Sprintf("%s -> %s", from, to)
}

func ranked(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for name, n := range counts {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

// Aggregate computes the aggregates of rows out of total matching shipments.
func Aggregate(rows []domain.Shipment, total int) Aggregates {
	modes := map[string]int{}
	lanes := map[string]int{}
	carriers := map[string]int{}
	chapters := map[string]int{}

	agg := Aggregates{TotalShipments: total, SampledShipments: len(rows)}
	for _, s := range rows {
		if s.Mode != "" {
			modes[string(s.Mode)]++
		}
		if lane := Lane(s); lane != "" {
			lanes[lane]++
		}
		if c := strings.TrimSpace(s.Carrier); c != "" {
			carriers[c]++
		}
		if len(s.HSCode) >= 2 {
			chapters[s.HSCode[:2]]++
		}
		if s.ShipmentDate > agg.LatestShipment {
			agg.LatestShipment = s.ShipmentDate
		}
	}
	agg.Modes = modes
	agg.TopLanes = ranked(lanes)
	agg.TopCarriers = ranked(carriers)
	agg.TopHSChapters = ranked(chapters)
	return agg
}

// dominantMode is the most frequent mode, "" with no data.
func (a Aggregates) dominantMode() string {
	best, n := "", 0
	for _, m := range []string{string(domain.ModeOcean), string(domain.ModeAir)} {
		if a.Modes[m] > n {
			best, n = m, a.Modes[m]
		}
	}
	return best
}

// HeuristicSummary builds a summary and opportunities from the aggregates alone.
func HeuristicSummary(company string, a Aggregates) (string, []string) {
	if a.TotalShipments == 0 {
		return fmt.Sprintf("No shipment records found for %s.", company),
			[]string{"Verify the company name or search by a known trading alias."}
	}

	parts := []string{fmt.Sprintf("%s has %d recorded shipments", company, a.TotalShipments)}
	if a.LatestShipment != "" {
		parts[0] += fmt.Sprintf(", the latest on %s", a.LatestShipment)
	}
	if mode := a.dominantMode(); mode != "" {
		parts = append(parts, fmt.Sprintf("Most sampled shipments move by %s", mode))
	}
	if len(a.TopLanes) > 0 {
		parts = append(parts, fmt.Sprintf("The busiest lane is %s", a.TopLanes[0].Name))
	}
	if len(a.TopCarriers) > 0 {
		parts = append(parts, fmt.Sprintf("%s is the most used carrier", a.TopCarriers[0].Name))
	}

	var opportunities []string
	if len(a.TopLanes) > 0 {
		opportunities = append(opportunities, fmt.Sprintf("Quote recurring capacity on %s.", a.TopLanes[0].Name))
	}
	if a.Modes[string(domain.ModeAir)] > 0 && a.Modes[string(domain.ModeOcean)] > 0 {
		opportunities = append(opportunities, "Offer air-to-ocean conversion for non-urgent cargo.")
	}
	if len(a.TopCarriers) > 1 {
		opportunities = append(opportunities, "Consolidate volume currently split across several carriers.")
	}
	if len(opportunities) == 0 {
		opportunities = append(opportunities, "Reach out with a lane review based on recent shipments.")
	}
	return strings.Join(parts, ". ") + ".", opportunities
}
