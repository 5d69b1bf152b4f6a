package repository

import (
	"context"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

// demoCatalog backs the in-memory store when no database is configured
var demoCatalog = map[[2]string][]models.Variant{
	{"maruti-suzuki", "swift"}: {
		{Name: "LXi", Price: 649000, FuelType: "petrol", TransmissionType: "manual"},
		{Name: "VXi", Price: 729000, FuelType: "petrol", TransmissionType: "manual"},
		{Name: "VXi AMT", Price: 779000, FuelType: "petrol", TransmissionType: "automatic"},
		{Name: "VXi CNG", Price: 819000, FuelType: "cng", TransmissionType: "manual"},
		{Name: "ZXi", Price: 829000, FuelType: "petrol", TransmissionType: "manual"},
		{Name: "ZXi Plus (O)", Price: 899000, FuelType: "petrol", TransmissionType: "manual"},
	},
	{"hyundai", "creta"}: {
		{Name: "E", Price: 1100000, FuelType: "petrol", TransmissionType: "manual"},
		{Name: "S (O)", Price: 1450000, FuelType: "petrol", TransmissionType: "manual"},
		{Name: "SX (O) Turbo DCT", Price: 2015000, FuelType: "petrol", TransmissionType: "automatic"},
		{Name: "SX Tech Diesel AT", Price: 1930000, FuelType: "diesel", TransmissionType: "automatic"},
	},
	{"tata", "nexon-ev"}: {
		{Name: "Creative Plus MR", Price: 1249000, FuelType: "electric", TransmissionType: "automatic"},
		{Name: "Empowered Plus LR", Price: 1729000, FuelType: "electric", TransmissionType: "automatic"},
	},
}

// SeedDemo loads the demo catalog into repo
func SeedDemo(ctx context.Context, repo CatalogRepository) error {
	for key, variants := range demoCatalog {
		if err := repo.ReplaceVariants(ctx, key[0], key[1], variants); err != nil {
			return err
		}
	}
	return nil
}
