// Package backup serializes the full brand+history state to a
// self-contained JSON document and restores it.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"brandstudio/internal/domain"
)

// Envelope is the interchange document: the complete state plus the export
// timestamp (epoch milliseconds). Versionless by design of the format.
type Envelope struct {
	Brand      *domain.BrandProfile  `json:"brand"`
	History    []domain.GeneratedArt `json:"history"`
	ExportDate int64                 `json:"exportDate"`
}

// Service drives the persistence gateway to export and import envelopes.
type Service struct {
	brands domain.BrandRepository
	arts   domain.ArtRepository
	now    func() time.Time
	logger zerolog.Logger
}

// Options allows overriding the clock in tests.
type Options struct {
	Now    func() time.Time
	Logger *zerolog.Logger
}

func NewService(brands domain.BrandRepository, arts domain.ArtRepository, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := zerolog.New(io.Discard)
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Service{brands: brands, arts: arts, now: now, logger: logger}
}

// Export assembles the current state into a JSON document.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	brand, err := s.brands.Get(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.arts.List(ctx)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []domain.GeneratedArt{}
	}

	envelope := Envelope{
		Brand:      brand,
		History:    history,
		ExportDate: s.now().UnixMilli(),
	}
	return json.Marshal(envelope)
}

// Import restores state from an exported document. The brand is required
// and is written before any history entry; history entries are upserted one
// by one, so a mid-import failure leaves earlier entries committed. The
// parsed state is returned for the caller to adopt.
func (s *Service) Import(ctx context.Context, data []byte) (*Envelope, error) {
	var envelope Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}
	if envelope.Brand == nil {
		return nil, fmt.Errorf("%w: missing brand", domain.ErrInvalidBackup)
	}

	envelope.Brand.SavedStyles = domain.NormalizeStyles(envelope.Brand.SavedStyles)
	if err := s.brands.Save(ctx, envelope.Brand); err != nil {
		return nil, err
	}

	for i := range envelope.History {
		if err := s.arts.Save(ctx, &envelope.History[i]); err != nil {
			return nil, fmt.Errorf("import history entry %s: %w", envelope.History[i].ID, err)
		}
	}
	if envelope.History == nil {
		envelope.History = []domain.GeneratedArt{}
	}

	s.logger.Info().
		Int("history", len(envelope.History)).
		Msg("backup: import complete")
	return &envelope, nil
}
