package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"brandstudio/internal/artgen"
	"brandstudio/internal/domain"
	"brandstudio/internal/middleware"
)

type scanRequest struct {
	Image string `json:"image"`
}

// DNAScan extracts the visual DNA of one reference image.
func (a *App) DNAScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Image) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "image is required")
		return
	}
	dna, err := a.Generator.ScanDNA(r.Context(), req.Image)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, dna)
}

type generateRequest struct {
	Prompt          string   `json:"prompt"`
	AspectRatio     string   `json:"aspectRatio"`
	ReferenceImages []string `json:"referenceImages"`
	StyleName       string   `json:"styleName"`
	ImpactMode      *bool    `json:"impactMode"`
	Watermark       bool     `json:"watermark"`
}

const defaultAspectRatio = "1:1"

// ArtGenerate runs the generation pipeline with the stored brand as context
// and persists the accepted result.
func (a *App) ArtGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	brand, err := a.Brands.Get(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}

	params := artgen.GenerateParams{
		Prompt:       req.Prompt,
		AspectRatio:  req.AspectRatio,
		BrandContext: artgen.BrandContextFrom(brand),
		StyleName:    req.StyleName,
		Watermark:    req.Watermark,
		Locale:       middleware.LocaleFromContext(r.Context()),
	}
	if params.AspectRatio == "" {
		params.AspectRatio = defaultAspectRatio
	}
	if brand != nil {
		params.DNA = brand.ScannedDNA
		params.WatermarkText = brand.Name
		params.ImpactMode = brand.UseLaunchImpact
	}
	if req.ImpactMode != nil {
		params.ImpactMode = *req.ImpactMode
	}

	refs := req.ReferenceImages
	if len(refs) == 0 && req.StyleName != "" && brand != nil {
		for _, style := range brand.SavedStyles {
			if strings.EqualFold(strings.TrimSpace(style.Name), strings.TrimSpace(req.StyleName)) {
				refs = style.Images
				if style.DNA != nil {
					params.DNA = style.DNA
				}
				break
			}
		}
	}
	params.ReferenceImages = refs

	result, err := a.Generator.Generate(r.Context(), params)
	if err != nil {
		a.fail(w, err)
		return
	}

	art := artgen.NewArt(params, result)
	if err := a.Arts.Save(r.Context(), art); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusCreated, art)
}

// ArtSave upserts a history entry; the client uses it to flag rejections or
// amend captions.
func (a *App) ArtSave(w http.ResponseWriter, r *http.Request) {
	var art domain.GeneratedArt
	if err := json.NewDecoder(r.Body).Decode(&art); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(art.ID) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id is required")
		return
	}
	if art.Timestamp == 0 {
		art.Timestamp = time.Now().UnixMilli()
	}
	if err := a.Arts.Save(r.Context(), &art); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, art)
}

// ArtList returns the history, newest first.
func (a *App) ArtList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Arts.List(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	if items == nil {
		items = []domain.GeneratedArt{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// ArtDelete removes a single history entry.
func (a *App) ArtDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id required")
		return
	}
	if err := a.Arts.Delete(r.Context(), id); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ArtClear empties the history, keeping the brand profile.
func (a *App) ArtClear(w http.ResponseWriter, r *http.Request) {
	if err := a.Arts.Clear(r.Context()); err != nil {
		a.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DataReset wipes everything: history first, then the brand profile, so an
// interrupted reset never leaves history pointing at a deleted brand.
func (a *App) DataReset(w http.ResponseWriter, r *http.Request) {
	if err := a.Arts.Clear(r.Context()); err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Brands.Clear(r.Context()); err != nil {
		a.fail(w, err)
		return
	}
	a.Logger.Info().Msg("handlers: all data cleared")
	w.WriteHeader(http.StatusNoContent)
}
