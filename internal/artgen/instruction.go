package artgen

import (
	"fmt"
	"strings"

	"brandstudio/internal/domain"
)

// BuildInstruction composes the single text block sent alongside reference
// images: brand context, visual DNA summary, the optional impact directive
// and exactly one watermark directive (inclusion or exclusion, never both).
func BuildInstruction(params GenerateParams) string {
	var b strings.Builder
	b.WriteString("Create a polished marketing image for a small business.")

	if brand := strings.TrimSpace(params.BrandContext); brand != "" {
		b.WriteString("\nBRANDING: " + brand)
	}

	if dna := params.DNA; dna != nil {
		b.WriteString("\n--- VISUAL DNA ---")
		if len(dna.Colors) > 0 {
			b.WriteString("\nColors: " + strings.Join(dna.Colors, ", "))
		}
		if desc := strings.TrimSpace(dna.Description); desc != "" {
			b.WriteString("\nStyle: " + desc)
		}
	}

	if params.ImpactMode {
		b.WriteString("\n--- IMPACT MODE ---")
		b.WriteString("\nBold 3D arrows, vibrant badges, heavy display typography.")
	}

	b.WriteString("\nRULES: " + watermarkDirective(params) + " Use only real, correctly spelled words.")
	b.WriteString("\nOBJECTIVE: " + strings.TrimSpace(params.Prompt))
	if aspect := strings.TrimSpace(params.AspectRatio); aspect != "" {
		b.WriteString("\nFORMAT: " + aspect)
	}
	return b.String()
}

// BrandContextFrom flattens the stored profile into the branding line of the
// instruction block. A nil profile yields no branding line.
func BrandContextFrom(brand *domain.BrandProfile) string {
	if brand == nil {
		return ""
	}
	var fields []string
	if v := strings.TrimSpace(brand.Name); v != "" {
		fields = append(fields, "Business: "+v)
	}
	if v := strings.TrimSpace(brand.Summary); v != "" {
		fields = append(fields, "About: "+v)
	}
	if len(brand.Colors) > 0 {
		fields = append(fields, "Palette: "+strings.Join(brand.Colors, ", "))
	}
	if v := strings.TrimSpace(brand.Typography); v != "" {
		fields = append(fields, "Typography: "+v)
	}
	if v := strings.TrimSpace(brand.VisualStyle); v != "" {
		fields = append(fields, "Visual style: "+v)
	}
	return strings.Join(fields, ". ")
}

func watermarkDirective(params GenerateParams) string {
	if !params.Watermark {
		return "Do NOT add any watermark."
	}
	tag := strings.TrimSpace(params.WatermarkText)
	if tag == "" {
		tag = "brand watermark"
	}
	return fmt.Sprintf("Subtly include the watermark %q.", tag)
}

func captionInstruction(prompt, locale string) string {
	instruction := fmt.Sprintf("Write a short, irresistible social media caption for the post: %q.", strings.TrimSpace(prompt))
	if locale = strings.TrimSpace(locale); locale != "" {
		instruction += fmt.Sprintf(" Write it in the %q locale language.", locale)
	}
	return instruction
}

const dnaPrompt = `Analyze this reference image and extract its "Visual DNA".
Return strictly a JSON object with:
- colors: list of up to 5 predominant hex color strings.
- typography: description of the fonts.
- elements: graphic elements (shadows, textures, icons).
- description: summary of the visual narrative.`
