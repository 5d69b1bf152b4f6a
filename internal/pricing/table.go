package pricing

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

//go:embed policy.toml
var embeddedPolicy []byte

// DefaultRegion is used when a region has no entry of its own
const DefaultRegion = "default"

type regionRates struct {
	FallbackRoadTax float64            `toml:"fallback_road_tax"`
	RoadTax         map[string]float64 `toml:"road_tax"`
}

type policyFile struct {
	RegistrationFee  int64                  `toml:"registration_fee"`
	FASTagFee        int64                  `toml:"fastag_fee"`
	InsurancePercent float64                `toml:"insurance_percent"`
	TCSPercent       float64                `toml:"tcs_percent"`
	TCSThreshold     int64                  `toml:"tcs_threshold"`
	Regions          map[string]regionRates `toml:"regions"`
}

// TablePolicy is a Policy driven by a static rate table
type TablePolicy struct {
	registrationFee  models.Money
	fastagFee        models.Money
	insurancePercent decimal.Decimal
	tcsPercent       decimal.Decimal
	tcsThreshold     models.Money
	regions          map[string]regionRates
}

// LoadPolicy parses a TOML rate table. A "default" region is required.
func LoadPolicy(r io.Reader) (*TablePolicy, error) {
	var f policyFile
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse tax policy: %w", err)
	}

	regions := make(map[string]regionRates, len(f.Regions))
	for name, rates := range f.Regions {
		fuels := make(map[string]float64, len(rates.RoadTax))
		for fuel, pct := range rates.RoadTax {
			if pct < 0 {
				return nil, fmt.Errorf("negative road tax for %s/%s", name, fuel)
			}
			fuels[normalizeKey(fuel)] = pct
		}
		rates.RoadTax = fuels
		regions[normalizeKey(name)] = rates
	}
	if _, ok := regions[DefaultRegion]; !ok {
		return nil, fmt.Errorf("tax policy has no %q region", DefaultRegion)
	}

	return &TablePolicy{
		registrationFee:  models.Money(f.RegistrationFee),
		fastagFee:        models.Money(f.FASTagFee),
		insurancePercent: decimal.NewFromFloat(f.InsurancePercent),
		tcsPercent:       decimal.NewFromFloat(f.TCSPercent),
		tcsThreshold:     models.Money(f.TCSThreshold),
		regions:          regions,
	}, nil
}

// DefaultPolicy returns the built-in table
func DefaultPolicy() (*TablePolicy, error) {
	return LoadPolicy(bytes.NewReader(embeddedPolicy))
}

// LoadPolicyFile reads a table from disk, or the built-in one when path is empty
func LoadPolicyFile(path string) (*TablePolicy, error) {
	if path == "" {
		return DefaultPolicy()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tax policy: %w", err)
	}
	defer f.Close()
	return LoadPolicy(f)
}

// RoadTaxPercent returns the rate applied for a region and fuel type
func (p *TablePolicy) RoadTaxPercent(region, fuelType string) float64 {
	rates, ok := p.regions[normalizeKey(region)]
	if !ok {
		rates = p.regions[DefaultRegion]
	}
	if pct, ok := rates.RoadTax[normalizeKey(fuelType)]; ok {
		return pct
	}
	return rates.FallbackRoadTax
}

// Charges implements Policy
func (p *TablePolicy) Charges(region, fuelType string, exShowroom models.Money) []models.PriceLineItem {
	roadTax := decimal.NewFromFloat(p.RoadTaxPercent(region, fuelType))

	items := []models.PriceLineItem{
		{Label: LabelRoadTax, Amount: percentOf(exShowroom, roadTax)},
		{Label: LabelRegistration, Amount: p.registrationFee},
		{Label: LabelInsurance, Amount: percentOf(exShowroom, p.insurancePercent)},
		{Label: LabelFASTag, Amount: p.fastagFee},
	}
	if p.tcsThreshold > 0 && exShowroom > p.tcsThreshold {
		items = append(items, models.PriceLineItem{
			Label:  LabelTCS,
			Amount: percentOf(exShowroom, p.tcsPercent),
		})
	}
	return items
}
