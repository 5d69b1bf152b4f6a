package models

// GeoPoint is a named city in the reference table
type GeoPoint struct {
	Name         string  `json:"name" toml:"name"`
	Slug         string  `json:"slug" toml:"slug"`
	LatitudeDeg  float64 `json:"latitude" toml:"lat"`
	LongitudeDeg float64 `json:"longitude" toml:"lng"`
	Region       string  `json:"region" toml:"region"`
}

// NearbyCity pairs a point with its distance from the query city
type NearbyCity struct {
	GeoPoint
	DistanceKm float64 `json:"distance_km"`
}
