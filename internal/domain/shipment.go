package domain

// Mode is the transport mode of a shipment record.
type Mode string

const (
	ModeAll   Mode = "all"
	ModeAir   Mode = "air"
	ModeOcean Mode = "ocean"
)

// Shipment is a read-only row of the unified shipments view.
type Shipment struct {
	ID                 string  `json:"id"`
	Mode               Mode    `json:"mode"`
	CompanyName        string  `json:"company_name"`
	OriginCountry      string  `json:"origin_country,omitempty"`
	OriginCity         string  `json:"origin_city,omitempty"`
	DestinationCountry string  `json:"destination_country,omitempty"`
	DestinationCity    string  `json:"destination_city,omitempty"`
	HSCode             string  `json:"hs_code,omitempty"`
	Carrier            string  `json:"carrier,omitempty"`
	VesselName         string  `json:"vessel_name,omitempty"`
	BOLNumber          string  `json:"bol_number,omitempty"`
	WeightKg           float64 `json:"weight_kg,omitempty"`
	ContainerCount     int     `json:"container_count,omitempty"`
	ShipmentDate       string  `json:"shipment_date,omitempty"`
	Score              float64 `json:"score,omitempty"`
}

// SearchFilters narrows a unified search. Empty fields are not applied.
type SearchFilters struct {
	DateFrom           string `json:"date_from,omitempty"`
	DateTo             string `json:"date_to,omitempty"`
	HSCode             string `json:"hs_code,omitempty"`
	OriginCountry      string `json:"origin_country,omitempty"`
	OriginCity         string `json:"origin_city,omitempty"`
	DestinationCountry string `json:"destination_country,omitempty"`
	DestinationCity    string `json:"destination_city,omitempty"`
	Carrier            string `json:"carrier,omitempty"`
}

// SearchRequest is a normalized unified search.
type SearchRequest struct {
	Query   string
	Mode    Mode
	Filters SearchFilters
	Limit   int
	Offset  int
}
