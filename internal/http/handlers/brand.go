package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"brandstudio/internal/domain"
)

// BrandGet returns the stored brand profile.
func (a *App) BrandGet(w http.ResponseWriter, r *http.Request) {
	brand, err := a.Brands.Get(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	if brand == nil {
		a.error(w, http.StatusNotFound, "not_found", "no brand profile saved")
		return
	}
	a.json(w, http.StatusOK, brand)
}

// BrandSave replaces the singleton brand profile.
func (a *App) BrandSave(w http.ResponseWriter, r *http.Request) {
	var brand domain.BrandProfile
	if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	brand.SavedStyles = domain.NormalizeStyles(brand.SavedStyles)
	if err := a.Brands.Save(r.Context(), &brand); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, brand)
}

// StyleCreate appends a saved style to the profile. Names are unique per
// profile, case-insensitively.
func (a *App) StyleCreate(w http.ResponseWriter, r *http.Request) {
	var style domain.VisualStyle
	if err := json.NewDecoder(r.Body).Decode(&style); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	brand, err := a.Brands.Get(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	if brand == nil {
		a.error(w, http.StatusNotFound, "not_found", "no brand profile saved")
		return
	}
	if style.ID == "" {
		style.ID = uuid.NewString()
	}
	if err := brand.AddStyle(style); err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Brands.Save(r.Context(), brand); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusCreated, brand.SavedStyles[len(brand.SavedStyles)-1])
}
