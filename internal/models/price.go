package models

// PriceLineItem is one itemized on-road charge
type PriceLineItem struct {
	Label  string `json:"label"`
	Amount Money  `json:"amount"`
}

// PriceBreakup represents the ex-showroom to on-road price build-up
type PriceBreakup struct {
	Variant    string          `json:"variant"`
	Region     string          `json:"region"`
	FuelType   string          `json:"fuel_type"`
	ExShowroom Money           `json:"ex_showroom"`
	Items      []PriceLineItem `json:"items"`
	OnRoad     Money           `json:"on_road"`
}
