package domain

// TariffInput is the input of a duty and tax estimate.
type TariffInput struct {
	HSCode       string  `json:"hs_code"`
	Incoterm     string  `json:"incoterm"`
	CustomsValue float64 `json:"customs_value"`
}

// TariffEstimate is a non-binding duty and tax estimate. Rates are percentages.
type TariffEstimate struct {
	HSCode   string  `json:"hs_code"`
	Chapter  string  `json:"chapter,omitempty"`
	DutyRate float64 `json:"duty_rate"`
	TaxRate  float64 `json:"tax_rate"`
	EstDuty  float64 `json:"est_duty"`
	EstTax   float64 `json:"est_tax"`
	EstTotal float64 `json:"est_total"`
	Notes    string  `json:"notes"`
}

// QuoteInput is the input of a freight quote.
type QuoteInput struct {
	Mode               Mode    `json:"mode"`
	WeightKg           float64 `json:"weight_kg"`
	Containers         int     `json:"containers"`
	OriginCountry      string  `json:"origin_country"`
	DestinationCountry string  `json:"destination_country"`
	Incoterm           string  `json:"incoterm"`
	HSCode             string  `json:"hs_code"`
	CustomsValue       float64 `json:"customs_value"`
}

// FreightQuote is a non-binding freight and landed-cost quote in USD.
type FreightQuote struct {
	Mode          Mode           `json:"mode"`
	BaseFreight   float64        `json:"base_freight"`
	LaneSurcharge float64        `json:"lane_surcharge"`
	FuelSurcharge float64        `json:"fuel_surcharge"`
	Freight       float64        `json:"freight"`
	Tariff        TariffEstimate `json:"tariff"`
	Total         float64        `json:"total"`
	Currency      string         `json:"currency"`
	Notes         string         `json:"notes"`
}
