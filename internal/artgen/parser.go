package artgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"brandstudio/internal/domain"
	"brandstudio/internal/providers/genai"
)

const defaultTypography = "default"

// dnaPayload keeps every field loosely typed so a response with wrong-typed
// fields coerces to defaults instead of failing the whole scan.
type dnaPayload struct {
	Colors      json.RawMessage `json:"colors"`
	Typography  json.RawMessage `json:"typography"`
	Elements    json.RawMessage `json:"elements"`
	Description json.RawMessage `json:"description"`
}

// ParseDNA coerces raw model output into a ScannedDNA. Markdown code fences
// and surrounding whitespace are tolerated; malformed JSON is a parse
// failure, missing or wrong-typed fields are not.
func ParseDNA(raw string) (*domain.ScannedDNA, error) {
	cleaned := trimCodeFence(raw)
	if cleaned == "" {
		cleaned = "{}"
	}

	var payload dnaPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: dna response is not valid JSON: %v", domain.ErrParseFailure, err)
	}

	dna := &domain.ScannedDNA{
		Colors:      stringList(payload.Colors),
		Typography:  stringValue(payload.Typography, defaultTypography),
		Elements:    stringList(payload.Elements),
		Description: stringValue(payload.Description, ""),
	}
	return dna, nil
}

// FirstInlineImage returns the first inline image payload of the response as
// a data URL. The second return is false when no candidate carried one.
func FirstInlineImage(resp *genai.Response) (string, bool) {
	for _, part := range resp.Parts() {
		if part.InlineData == nil || part.InlineData.Data == "" {
			continue
		}
		mime := part.InlineData.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		return "data:" + mime + ";base64," + part.InlineData.Data, true
	}
	return "", false
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}

func stringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || list == nil {
		return []string{}
	}
	return list
}

func stringValue(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 {
		return fallback
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
