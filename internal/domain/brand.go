package domain

import "strings"

// ScannedDNA is the derived visual analysis of a reference image: dominant
// colors, typography notes, recurring graphic elements and a narrative
// summary. It is produced by the generation pipeline and never hand-edited.
type ScannedDNA struct {
	Colors      []string `json:"colors"`
	Typography  string   `json:"typography"`
	Elements    []string `json:"elements"`
	Description string   `json:"description"`
}

// VisualStyle is a named, reusable style definition built from one or more
// reference images. Image is the legacy single-image field kept for backups
// written before Images existed; NormalizeStyle migrates it.
type VisualStyle struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Images []string    `json:"images"`
	Image  string      `json:"image,omitempty"`
	DNA    *ScannedDNA `json:"dna,omitempty"`
}

// BrandProfile is the singleton record describing a business identity. At
// most one profile exists in the store at any time.
type BrandProfile struct {
	Name              string        `json:"name"`
	Logo              string        `json:"logo"`
	Summary           string        `json:"summary"`
	Colors            []string      `json:"colors"`
	Typography        string        `json:"typography"`
	VisualStyle       string        `json:"visualStyle"`
	ExpertReferences  []string      `json:"expertReferences"`
	ProductReferences []string      `json:"productReferences"`
	References        []string      `json:"references"`
	Gallery           []string      `json:"gallery"`
	ScannedDNA        *ScannedDNA   `json:"scannedDNA,omitempty"`
	UseLaunchImpact   bool          `json:"useLaunchImpact,omitempty"`
	SavedStyles       []VisualStyle `json:"savedStyles"`
}

// NormalizeStyle migrates a legacy single-image style to the multi-image
// shape. Idempotent: an already-normalized style is returned unchanged.
func NormalizeStyle(style VisualStyle) VisualStyle {
	if len(style.Images) == 0 && style.Image != "" {
		style.Images = []string{style.Image}
	}
	return style
}

// NormalizeStyles normalizes every style in place. Applied once at load
// boundaries (store reads, backup imports) so nothing downstream branches on
// the legacy shape.
func NormalizeStyles(styles []VisualStyle) []VisualStyle {
	for i := range styles {
		styles[i] = NormalizeStyle(styles[i])
	}
	return styles
}

// PrimaryImage returns the representative image for a style: the first entry
// of Images, the legacy Image field, or empty.
func PrimaryImage(style VisualStyle) string {
	if len(style.Images) > 0 {
		return style.Images[0]
	}
	return style.Image
}

// AddStyle appends a style to the profile. Style names are unique within a
// profile, compared case-insensitively.
func (b *BrandProfile) AddStyle(style VisualStyle) error {
	name := strings.TrimSpace(style.Name)
	if name == "" {
		return ErrInvalidStyle
	}
	if len(style.Images) == 0 && style.Image == "" {
		return ErrInvalidStyle
	}
	for _, existing := range b.SavedStyles {
		if strings.EqualFold(strings.TrimSpace(existing.Name), name) {
			return ErrDuplicateStyle
		}
	}
	b.SavedStyles = append(b.SavedStyles, NormalizeStyle(style))
	return nil
}
