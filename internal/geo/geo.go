package geo

import (
	"math"
	"sort"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

const earthRadiusKm = 6371.0

// FallbackSlugs are served, in this order, when the query city is unknown
var FallbackSlugs = []string{
	"mumbai",
	"delhi",
	"bangalore",
	"hyderabad",
	"chennai",
	"kolkata",
	"pune",
	"ahmedabad",
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm returns the Haversine great-circle distance between two points
func DistanceKm(a, b models.GeoPoint) float64 {
	lat1 := toRadians(a.LatitudeDeg)
	lat2 := toRadians(b.LatitudeDeg)
	dLat := lat2 - lat1
	dLng := toRadians(b.LongitudeDeg - a.LongitudeDeg)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// NearestCities returns up to maxResults points within radiusKm of the
// city identified by querySlug, closest first. An unknown slug yields the
// metro fallback list instead.
func NearestCities(all []models.GeoPoint, querySlug string, radiusKm float64, maxResults int) []models.GeoPoint {
	nearby := NearestWithDistance(all, querySlug, radiusKm, maxResults)
	out := make([]models.GeoPoint, len(nearby))
	for i, n := range nearby {
		out[i] = n.GeoPoint
	}
	return out
}

// NearestWithDistance is NearestCities keeping the computed distances.
// Fallback entries carry a zero distance since there is no origin to measure from.
func NearestWithDistance(all []models.GeoPoint, querySlug string, radiusKm float64, maxResults int) []models.NearbyCity {
	if len(all) == 0 || maxResults <= 0 {
		return []models.NearbyCity{}
	}

	origin, ok := find(all, querySlug)
	if !ok {
		return fallback(all, maxResults)
	}

	candidates := make([]models.NearbyCity, 0, len(all))
	for _, p := range all {
		if p.Slug == origin.Slug {
			continue
		}
		d := DistanceKm(origin, p)
		if d <= radiusKm {
			candidates = append(candidates, models.NearbyCity{GeoPoint: p, DistanceKm: d})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	return candidates
}

func find(all []models.GeoPoint, slug string) (models.GeoPoint, bool) {
	for _, p := range all {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.GeoPoint{}, false
}

func fallback(all []models.GeoPoint, maxResults int) []models.NearbyCity {
	out := make([]models.NearbyCity, 0, maxResults)
	for _, slug := range FallbackSlugs {
		if len(out) == maxResults {
			break
		}
		if p, ok := find(all, slug); ok {
			out = append(out, models.NearbyCity{GeoPoint: p})
		}
	}
	return out
}
