package repo

import (
	"context"

	"brandstudio/internal/infra"
	"brandstudio/internal/sqlinline"
)

// Store groups the repositories that share one database.
type Store struct {
	Brands *BrandRepositoryPG
	Arts   *ArtRepositoryPG

	sql infra.SQLExecutor
}

// NewStore wires both repositories over one executor.
func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{
		Brands: NewBrandRepository(sql),
		Arts:   NewArtRepository(sql),
		sql:    sql,
	}
}

// EnsureSchema creates the tables when missing. Used as the startup probe:
// a failure means the store is unreachable.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		sqlinline.QEnsureBrandTable,
		sqlinline.QEnsureArtTable,
		sqlinline.QEnsureIntegrationTokensTable,
	}
	for _, stmt := range statements {
		if _, err := s.sql.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll wipes history first, then the brand profile. Destructive and not
// reversible.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.Arts.Clear(ctx); err != nil {
		return err
	}
	return s.Brands.Clear(ctx)
}
