package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
)

// PostgresCatalog reads variants from the catalog.variants table
type PostgresCatalog struct {
	db *sql.DB
}

// NewPostgresCatalog initializes a new Postgres-backed catalog
func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

// Variants returns the variants of a model in catalog order
func (r *PostgresCatalog) Variants(ctx context.Context, brand, model string) ([]models.Variant, error) {
	query := `
		SELECT name, price, fuel_type, transmission_type
		FROM catalog.variants
		WHERE brand = $1 AND model = $2
		ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query, brand, model)
	if err != nil {
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	var variants []models.Variant
	for rows.Next() {
		var v models.Variant
		if err := rows.Scan(&v.Name, &v.Price, &v.FuelType, &v.TransmissionType); err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read variants: %w", err)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("%s %s: %w", brand, model, ErrNotFound)
	}
	return variants, nil
}

// ReplaceVariants swaps the variant list of a model in one transaction
func (r *PostgresCatalog) ReplaceVariants(ctx context.Context, brand, model string, variants []models.Variant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM catalog.variants WHERE brand = $1 AND model = $2`,
		brand, model); err != nil {
		return fmt.Errorf("failed to delete variants: %w", err)
	}

	insert := `
		INSERT INTO catalog.variants (brand, model, position, name, price, fuel_type, transmission_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, v := range variants {
		if _, err := tx.ExecContext(ctx, insert,
			brand, model, i, v.Name, v.Price, v.FuelType, v.TransmissionType); err != nil {
			return fmt.Errorf("failed to insert variant %q: %w", v.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit variants: %w", err)
	}
	return nil
}
