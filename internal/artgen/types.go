package artgen

import "brandstudio/internal/domain"

// GenerateParams describes one art generation request as composed by the
// calling collaborator.
type GenerateParams struct {
	Prompt          string
	AspectRatio     string
	BrandContext    string
	ReferenceImages []string
	ImpactMode      bool
	DNA             *domain.ScannedDNA
	Watermark       bool
	WatermarkText   string
	StyleName       string
	Locale          string
}

// GenerateResult is the transient outcome of one generation. The pipeline
// does not store it; the collaborator decides whether to persist.
type GenerateResult struct {
	ImageURLs   []string
	Description string
}
