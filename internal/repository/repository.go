package repository

import (
	"context"
	"errors"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

// ErrNotFound is returned when a brand/model has no catalog entry
var ErrNotFound = errors.New("catalog entry not found")

// CatalogRepository supplies variant lists per brand and model
type CatalogRepository interface {
	Variants(ctx context.Context, brand, model string) ([]models.Variant, error)
	ReplaceVariants(ctx context.Context, brand, model string, variants []models.Variant) error
}
