package geo

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/pelletier/go-toml/v2"
)

//go:embed cities.toml
var embeddedCities []byte

var (
	citiesOnce sync.Once
	cities     []models.GeoPoint
	citiesErr  error
)

type cityTable struct {
	Cities []models.GeoPoint `toml:"city"`
}

// LoadCities parses a TOML city table and rejects duplicate or empty slugs
func LoadCities(r io.Reader) ([]models.GeoPoint, error) {
	var table cityTable
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to parse city table: %w", err)
	}

	seen := make(map[string]bool, len(table.Cities))
	for _, c := range table.Cities {
		if c.Slug == "" {
			return nil, fmt.Errorf("city %q has no slug", c.Name)
		}
		if seen[c.Slug] {
			return nil, fmt.Errorf("duplicate city slug: %s", c.Slug)
		}
		seen[c.Slug] = true
	}

	return table.Cities, nil
}

// Cities returns a copy of the built-in reference table
func Cities() ([]models.GeoPoint, error) {
	citiesOnce.Do(func() {
		cities, citiesErr = LoadCities(bytes.NewReader(embeddedCities))
	})
	if citiesErr != nil {
		return nil, citiesErr
	}
	out := make([]models.GeoPoint, len(cities))
	copy(out, cities)
	return out, nil
}

// Lookup finds a city by slug in the built-in table
func Lookup(slug string) (models.GeoPoint, bool) {
	all, err := Cities()
	if err != nil {
		return models.GeoPoint{}, false
	}
	return find(all, slug)
}
