package pricing

import (
	"strings"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/shopspring/decimal"
)

const (
	LabelRoadTax      = "Road tax (RTO)"
	LabelRegistration = "Registration"
	LabelInsurance    = "Insurance"
	LabelFASTag       = "FASTag"
	LabelTCS          = "TCS"
)

// Policy computes the itemized charges added on top of the ex-showroom price.
// Implementations decide the rules per region and fuel type.
type Policy interface {
	Charges(region, fuelType string, exShowroom models.Money) []models.PriceLineItem
}

// Breakup builds the on-road price for a variant registered in region
func Breakup(policy Policy, v models.Variant, region string) models.PriceBreakup {
	items := policy.Charges(region, v.FuelType, v.Price)

	total := v.Price
	for _, item := range items {
		total += item.Amount
	}

	return models.PriceBreakup{
		Variant:    v.Name,
		Region:     region,
		FuelType:   v.FuelType,
		ExShowroom: v.Price,
		Items:      items,
		OnRoad:     total,
	}
}

// percentOf returns pct% of amount rounded half-up to whole rupees
func percentOf(amount models.Money, pct decimal.Decimal) models.Money {
	v := decimal.NewFromInt(int64(amount)).Mul(pct).Div(decimal.NewFromInt(100)).Round(0)
	return models.Money(v.IntPart())
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
