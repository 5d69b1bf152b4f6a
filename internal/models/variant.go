package models

// Variant is a catalog trim as supplied by the content service
type Variant struct {
	Name             string `json:"name"`
	Price            Money  `json:"price"`
	FuelType         string `json:"fuel_type"`
	TransmissionType string `json:"transmission_type"`
}

// MatchTier records which resolution rule produced a variant
type MatchTier string

const (
	MatchExact    MatchTier = "exact"
	MatchPartial  MatchTier = "partial"
	MatchFallback MatchTier = "fallback"
)

// VariantMatch is the result of resolving a URL slug against a variant list
type VariantMatch struct {
	Variant Variant   `json:"variant"`
	Tier    MatchTier `json:"tier"`
}
