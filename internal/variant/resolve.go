package variant

import (
	"strings"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

type candidate struct {
	variant   models.Variant
	canonical string
}

// matcher picks a variant for the canonical query, or reports no match
type matcher struct {
	tier  models.MatchTier
	match func(query string, candidates []candidate) (models.Variant, bool)
}

// tiers are evaluated in order; the first success wins
var tiers = []matcher{
	{tier: models.MatchExact, match: exactMatch},
	{tier: models.MatchPartial, match: partialMatch},
	{tier: models.MatchFallback, match: cheapestMatch},
}

// Resolve finds the variant a URL slug fragment refers to. It only reports
// false when variants is empty.
func Resolve(variants []models.Variant, urlSlugFragment string) (models.VariantMatch, bool) {
	if len(variants) == 0 {
		return models.VariantMatch{}, false
	}

	query := Canonicalize(urlSlugFragment)
	candidates := make([]candidate, len(variants))
	for i, v := range variants {
		candidates[i] = candidate{variant: v, canonical: Canonicalize(v.Name)}
	}

	for _, m := range tiers {
		if v, ok := m.match(query, candidates); ok {
			return models.VariantMatch{Variant: v, Tier: m.tier}, true
		}
	}
	return models.VariantMatch{}, false
}

func exactMatch(query string, candidates []candidate) (models.Variant, bool) {
	for _, c := range candidates {
		if c.canonical == query {
			return c.variant, true
		}
	}
	return models.Variant{}, false
}

// partialMatch accepts containment in either direction. Empty keys never
// match, otherwise they would be contained in everything.
func partialMatch(query string, candidates []candidate) (models.Variant, bool) {
	if query == "" {
		return models.Variant{}, false
	}
	for _, c := range candidates {
		if c.canonical == "" {
			continue
		}
		if strings.Contains(query, c.canonical) || strings.Contains(c.canonical, query) {
			return c.variant, true
		}
	}
	return models.Variant{}, false
}

func cheapestMatch(_ string, candidates []candidate) (models.Variant, bool) {
	if len(candidates) == 0 {
		return models.Variant{}, false
	}
	best := candidates[0].variant
	for _, c := range candidates[1:] {
		if c.variant.Price < best.Price {
			best = c.variant
		}
	}
	return best, true
}
