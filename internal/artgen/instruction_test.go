package artgen

import (
	"strings"
	"testing"

	"brandstudio/internal/domain"
)

func TestBuildInstruction(t *testing.T) {
	params := GenerateParams{
		Prompt:       "bolo de chocolate",
		AspectRatio:  "1:1",
		BrandContext: "Artisanal cake shop, warm and familiar tone",
		ImpactMode:   true,
		DNA: &domain.ScannedDNA{
			Colors:      []string{"#8B4513", "#FFD700"},
			Description: "rustic, handcrafted look",
		},
		Watermark:     true,
		WatermarkText: "Jana's Cakes",
	}

	got := BuildInstruction(params)

	checks := []string{
		"BRANDING: Artisanal cake shop",
		"--- VISUAL DNA ---",
		"Colors: #8B4513, #FFD700",
		"Style: rustic, handcrafted look",
		"--- IMPACT MODE ---",
		`Subtly include the watermark "Jana's Cakes".`,
		"OBJECTIVE: bolo de chocolate",
		"FORMAT: 1:1",
	}
	for _, expect := range checks {
		if !strings.Contains(got, expect) {
			t.Fatalf("instruction missing %q:\n%s", expect, got)
		}
	}
	if strings.Contains(got, "Do NOT add any watermark") {
		t.Fatalf("both watermark directives present:\n%s", got)
	}
}

func TestBuildInstructionWatermarkDirectivesAreExclusive(t *testing.T) {
	base := GenerateParams{Prompt: "promo", AspectRatio: "9:16"}

	without := BuildInstruction(base)
	if !strings.Contains(without, "Do NOT add any watermark.") {
		t.Fatalf("exclusion directive missing:\n%s", without)
	}
	if strings.Contains(without, "Subtly include the watermark") {
		t.Fatalf("inclusion directive present without watermark:\n%s", without)
	}

	base.Watermark = true
	with := BuildInstruction(base)
	if !strings.Contains(with, `Subtly include the watermark "brand watermark".`) {
		t.Fatalf("inclusion directive missing:\n%s", with)
	}
	if strings.Contains(with, "Do NOT add any watermark") {
		t.Fatalf("exclusion directive present with watermark:\n%s", with)
	}
}

func TestBrandContextFrom(t *testing.T) {
	if got := BrandContextFrom(nil); got != "" {
		t.Fatalf("nil profile context = %q, want empty", got)
	}

	brand := &domain.BrandProfile{
		Name:       "Jana's Cakes",
		Summary:    "artisanal confectionery",
		Colors:     []string{"#8B4513", "#FFD700"},
		Typography: "elegant serif",
	}
	got := BrandContextFrom(brand)
	for _, expect := range []string{
		"Business: Jana's Cakes",
		"About: artisanal confectionery",
		"Palette: #8B4513, #FFD700",
		"Typography: elegant serif",
	} {
		if !strings.Contains(got, expect) {
			t.Fatalf("context missing %q:\n%s", expect, got)
		}
	}
	if strings.Contains(got, "Visual style:") {
		t.Fatalf("empty field rendered:\n%s", got)
	}
}

func TestBuildInstructionOmitsImpactAndDNAWhenAbsent(t *testing.T) {
	got := BuildInstruction(GenerateParams{Prompt: "new product", AspectRatio: "4:3"})
	if strings.Contains(got, "IMPACT MODE") {
		t.Fatalf("impact directive present when disabled:\n%s", got)
	}
	if strings.Contains(got, "VISUAL DNA") {
		t.Fatalf("dna block present without dna:\n%s", got)
	}
}
