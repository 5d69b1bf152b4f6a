package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

// MemoryCatalog is an in-memory implementation of CatalogRepository.
type MemoryCatalog struct {
	mu   sync.RWMutex
	data map[string][]models.Variant
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{data: make(map[string][]models.Variant)}
}

func catalogKey(brand, model string) string {
	return strings.ToLower(brand) + "/" + strings.ToLower(model)
}

// Variants returns a copy of the stored variants.
func (m *MemoryCatalog) Variants(_ context.Context, brand, model string) ([]models.Variant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.data[catalogKey(brand, model)]
	if !ok || len(stored) == 0 {
		return nil, fmt.Errorf("%s %s: %w", brand, model, ErrNotFound)
	}
	out := make([]models.Variant, len(stored))
	copy(out, stored)
	return out, nil
}

// ReplaceVariants stores a copy of variants.
func (m *MemoryCatalog) ReplaceVariants(_ context.Context, brand, model string, variants []models.Variant) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]models.Variant, len(variants))
	copy(stored, variants)
	m.data[catalogKey(brand, model)] = stored
	return nil
}
