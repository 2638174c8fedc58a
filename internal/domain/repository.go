package domain

import "context"

// BrandRepository persists the singleton brand profile.
type BrandRepository interface {
	Save(ctx context.Context, brand *BrandProfile) error
	// Get returns nil when no profile has been saved yet; that is a normal
	// empty state, not an error.
	Get(ctx context.Context) (*BrandProfile, error)
	Clear(ctx context.Context) error
}

// ArtRepository persists generation history.
type ArtRepository interface {
	// Save upserts by art ID and trims the history to HistoryLimit entries,
	// oldest first.
	Save(ctx context.Context, art *GeneratedArt) error
	// List returns all entries ordered by timestamp descending.
	List(ctx context.Context) ([]GeneratedArt, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
