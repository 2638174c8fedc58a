package repo

import (
	"context"

	"brandstudio/internal/domain"
	"brandstudio/internal/infra"
	"brandstudio/internal/sqlinline"
)

// ArtRepositoryPG persists generation history in PostgreSQL.
type ArtRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewArtRepository constructs an art repository over the given executor.
func NewArtRepository(sql infra.SQLExecutor) *ArtRepositoryPG {
	return &ArtRepositoryPG{sql: sql}
}

// Save upserts the record by ID, then trims the history so only the newest
// domain.HistoryLimit entries survive. Re-saving the same ID is idempotent.
func (r *ArtRepositoryPG) Save(ctx context.Context, art *domain.GeneratedArt) error {
	_, err := r.sql.Exec(ctx, sqlinline.QUpsertArt,
		art.ID, nonNil(art.URLs), art.Prompt, art.Description,
		art.Timestamp, art.IsRejected, art.StyleName)
	if err != nil {
		return err
	}
	_, err = r.sql.Exec(ctx, sqlinline.QTrimArtHistory, domain.HistoryLimit)
	return err
}

// List returns all history entries, most recent first.
func (r *ArtRepositoryPG) List(ctx context.Context) ([]domain.GeneratedArt, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectArtHistory)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.GeneratedArt
	for rows.Next() {
		var art domain.GeneratedArt
		if err := rows.Scan(&art.ID, &art.URLs, &art.Prompt, &art.Description,
			&art.Timestamp, &art.IsRejected, &art.StyleName); err != nil {
			return nil, err
		}
		history = append(history, art)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// Delete removes one entry. Deleting an unknown ID is not an error.
func (r *ArtRepositoryPG) Delete(ctx context.Context, id string) error {
	_, err := r.sql.Exec(ctx, sqlinline.QDeleteArt, id)
	return err
}

// Clear removes every history entry.
func (r *ArtRepositoryPG) Clear(ctx context.Context) error {
	_, err := r.sql.Exec(ctx, sqlinline.QClearArtHistory)
	return err
}

var _ domain.ArtRepository = (*ArtRepositoryPG)(nil)
