package service

import (
	"fmt"
	"strings"

	"github.com/KarimF430/Assad-motors-sub000/internal/geo"
	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

// NearbyCities lists reference cities around slug. Unknown slugs get the
// metro fallback list rather than an error.
func (s *Service) NearbyCities(slug string, radiusKm float64, limit int) ([]models.NearbyCity, error) {
	if radiusKm <= 0 || radiusKm > MaxRadiusKm {
		return nil, fmt.Errorf("%w: radius must be within (0, %.0f] km", ErrInvalidInput, MaxRadiusKm)
	}
	if limit < 1 || limit > MaxLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxLimit)
	}

	slug = strings.ToLower(strings.TrimSpace(slug))
	if _, ok := s.city(slug); !ok {
		s.log.Debugf("Unknown city %q, serving metro fallback", slug)
	}
	return geo.NearestWithDistance(s.cities, slug, radiusKm, limit), nil
}

func (s *Service) city(slug string) (models.GeoPoint, bool) {
	for _, c := range s.cities {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.GeoPoint{}, false
}
