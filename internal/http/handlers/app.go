package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"brandstudio/internal/artgen"
	"brandstudio/internal/backup"
	"brandstudio/internal/domain"
)

// ArtGenerator is the slice of the generation pipeline the handlers call.
type ArtGenerator interface {
	ScanDNA(ctx context.Context, image string) (*domain.ScannedDNA, error)
	Generate(ctx context.Context, params artgen.GenerateParams) (*artgen.GenerateResult, error)
}

// KeyStore persists third-party API keys.
type KeyStore interface {
	GeminiAPIKey(ctx context.Context) (string, error)
	SetGeminiAPIKey(ctx context.Context, key string) error
}

type App struct {
	Brands    domain.BrandRepository
	Arts      domain.ArtRepository
	Generator ArtGenerator
	Backup    *backup.Service
	Keys      KeyStore // nil when no key store is configured
	EnvKeySet bool     // a Gemini key was supplied via the environment
	Logger    zerolog.Logger
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// fail maps domain sentinels onto HTTP statuses; anything unrecognized is an
// internal error and gets logged.
func (a *App) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidPrompt),
		errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrInvalidStyle),
		errors.Is(err, domain.ErrInvalidBackup):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrDuplicateStyle):
		a.error(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		a.error(w, http.StatusTooManyRequests, "rate_limited", "generation service quota exhausted, retry later")
	case errors.Is(err, domain.ErrGenerationFailed), errors.Is(err, domain.ErrParseFailure):
		a.error(w, http.StatusBadGateway, "generation_failed", err.Error())
	default:
		a.Logger.Error().Err(err).Msg("handlers: unexpected error")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
