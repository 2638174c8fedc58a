package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"brandstudio/internal/domain"
	"brandstudio/internal/infra"
	"brandstudio/internal/sqlinline"
)

// BrandRepositoryPG persists the singleton brand profile in PostgreSQL.
type BrandRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewBrandRepository constructs a brand repository over the given executor.
func NewBrandRepository(sql infra.SQLExecutor) *BrandRepositoryPG {
	return &BrandRepositoryPG{sql: sql}
}

// Save creates or updates the single profile row. The read-then-write is not
// atomic against concurrent writers; the system assumes a single active
// client per store, so the last writer wins.
func (r *BrandRepositoryPG) Save(ctx context.Context, brand *domain.BrandProfile) error {
	styles, err := json.Marshal(nonNilStyles(brand.SavedStyles))
	if err != nil {
		return fmt.Errorf("marshal saved styles: %w", err)
	}

	var existingID string
	err = r.sql.QueryRow(ctx, sqlinline.QSelectBrandID).Scan(&existingID)
	switch {
	case err == nil:
		_, err = r.sql.Exec(ctx, sqlinline.QUpdateBrand, existingID,
			brand.Name, brand.Logo, brand.Summary, nonNil(brand.Colors),
			brand.Typography, brand.VisualStyle,
			nonNil(brand.ExpertReferences), nonNil(brand.ProductReferences),
			nonNil(brand.References), nonNil(brand.Gallery), styles)
		return err
	case infra.IsNoRows(err):
		_, err = r.sql.Exec(ctx, sqlinline.QInsertBrand,
			brand.Name, brand.Logo, brand.Summary, nonNil(brand.Colors),
			brand.Typography, brand.VisualStyle,
			nonNil(brand.ExpertReferences), nonNil(brand.ProductReferences),
			nonNil(brand.References), nonNil(brand.Gallery), styles)
		return err
	default:
		return err
	}
}

// Get returns the stored profile with its styles normalized, or nil when no
// profile has been saved yet.
func (r *BrandRepositoryPG) Get(ctx context.Context) (*domain.BrandProfile, error) {
	var (
		brand  domain.BrandProfile
		styles []byte
	)
	err := r.sql.QueryRow(ctx, sqlinline.QSelectBrand).Scan(
		&brand.Name, &brand.Logo, &brand.Summary, &brand.Colors,
		&brand.Typography, &brand.VisualStyle,
		&brand.ExpertReferences, &brand.ProductReferences,
		&brand.References, &brand.Gallery, &styles)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(styles) > 0 {
		if err := json.Unmarshal(styles, &brand.SavedStyles); err != nil {
			return nil, fmt.Errorf("unmarshal saved styles: %w", err)
		}
	}
	brand.SavedStyles = domain.NormalizeStyles(brand.SavedStyles)
	return &brand, nil
}

// Clear removes the profile row.
func (r *BrandRepositoryPG) Clear(ctx context.Context) error {
	_, err := r.sql.Exec(ctx, sqlinline.QDeleteBrand)
	return err
}

var _ domain.BrandRepository = (*BrandRepositoryPG)(nil)

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilStyles(styles []domain.VisualStyle) []domain.VisualStyle {
	if styles == nil {
		return []domain.VisualStyle{}
	}
	return styles
}
