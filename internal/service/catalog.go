package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/KarimF430/Assad-motors-sub000/internal/pricing"
	"github.com/KarimF430/Assad-motors-sub000/internal/repository"
	"github.com/KarimF430/Assad-motors-sub000/internal/variant"
)

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Service) variants(ctx context.Context, brand, model string) ([]models.Variant, error) {
	variants, err := s.catalog.Variants(ctx, normalizeName(brand), normalizeName(model))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, brand, model)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load variants: %w", err)
	}
	return variants, nil
}

// ResolveVariant maps a URL slug to one of the model's variants
func (s *Service) ResolveVariant(ctx context.Context, brand, model, slug string) (models.VariantMatch, error) {
	variants, err := s.variants(ctx, brand, model)
	if err != nil {
		return models.VariantMatch{}, err
	}

	match, ok := variant.Resolve(variants, slug)
	if !ok {
		return models.VariantMatch{}, fmt.Errorf("%w: %s %s has no variants", ErrNotFound, brand, model)
	}
	if match.Tier != models.MatchExact {
		s.log.Infof("Variant slug %q for %s %s resolved via %s match to %q",
			slug, brand, model, match.Tier, match.Variant.Name)
	}
	return match, nil
}

// OnRoadPrice resolves a variant and prices it for the region of citySlug.
// An unknown city is priced with the default region.
func (s *Service) OnRoadPrice(ctx context.Context, brand, model, slug, citySlug string) (models.PriceBreakup, error) {
	match, err := s.ResolveVariant(ctx, brand, model, slug)
	if err != nil {
		return models.PriceBreakup{}, err
	}

	region := pricing.DefaultRegion
	if c, ok := s.city(normalizeName(citySlug)); ok {
		region = c.Region
	}
	return pricing.Breakup(s.policy, match.Variant, region), nil
}

// ReplaceVariants validates and stores a model's variant list on behalf of actor
func (s *Service) ReplaceVariants(ctx context.Context, actor, brand, model string, variants []models.Variant) error {
	brand, model = normalizeName(brand), normalizeName(model)
	if brand == "" || model == "" {
		return fmt.Errorf("%w: brand and model are required", ErrInvalidInput)
	}
	if len(variants) == 0 {
		return fmt.Errorf("%w: at least one variant is required", ErrInvalidInput)
	}
	for _, v := range variants {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("%w: variant name is required", ErrInvalidInput)
		}
		if v.Price <= 0 {
			return fmt.Errorf("%w: variant %q needs a positive price", ErrInvalidInput, v.Name)
		}
		if variant.Canonicalize(v.Name) == "" {
			return fmt.Errorf("%w: variant %q has no usable characters", ErrInvalidInput, v.Name)
		}
	}

	if err := s.catalog.ReplaceVariants(ctx, brand, model, variants); err != nil {
		return fmt.Errorf("failed to store variants: %w", err)
	}

	s.log.WithField("actor", actor).Infof("Catalog updated for %s %s: %d variants", brand, model, len(variants))
	return nil
}
