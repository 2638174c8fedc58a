package artgen

import (
	"errors"
	"reflect"
	"testing"

	"brandstudio/internal/domain"
	"brandstudio/internal/providers/genai"
)

const dnaJSON = `{"colors":["#112233","#445566"],"typography":"bold serif","elements":["shadows","icons"],"description":"clean and modern"}`

func TestParseDNAPlainAndFencedAreIdentical(t *testing.T) {
	plain, err := ParseDNA(dnaJSON)
	if err != nil {
		t.Fatalf("ParseDNA(plain) returned error: %v", err)
	}
	fenced, err := ParseDNA("  \n```json\n" + dnaJSON + "\n```  \n")
	if err != nil {
		t.Fatalf("ParseDNA(fenced) returned error: %v", err)
	}
	if !reflect.DeepEqual(plain, fenced) {
		t.Fatalf("fenced parse differs: %+v vs %+v", fenced, plain)
	}
	if plain.Typography != "bold serif" || len(plain.Colors) != 2 {
		t.Fatalf("unexpected dna: %+v", plain)
	}
}

func TestParseDNADefensiveDefaults(t *testing.T) {
	dna, err := ParseDNA(`{"colors":"not a list","elements":42}`)
	if err != nil {
		t.Fatalf("ParseDNA returned error: %v", err)
	}
	if len(dna.Colors) != 0 || len(dna.Elements) != 0 {
		t.Fatalf("wrong-typed fields not coerced to empty lists: %+v", dna)
	}
	if dna.Typography != defaultTypography {
		t.Fatalf("Typography = %q, want %q", dna.Typography, defaultTypography)
	}
	if dna.Description != "" {
		t.Fatalf("Description = %q, want empty", dna.Description)
	}
}

func TestParseDNAEmptyResponse(t *testing.T) {
	dna, err := ParseDNA("")
	if err != nil {
		t.Fatalf("ParseDNA returned error: %v", err)
	}
	if len(dna.Colors) != 0 || dna.Typography != defaultTypography {
		t.Fatalf("unexpected dna for empty input: %+v", dna)
	}
}

func TestParseDNAMalformedJSONIsParseFailure(t *testing.T) {
	_, err := ParseDNA("the model rambled instead of answering")
	if !errors.Is(err, domain.ErrParseFailure) {
		t.Fatalf("err = %v, want ErrParseFailure", err)
	}
}

func TestFirstInlineImage(t *testing.T) {
	resp := &genai.Response{Candidates: []genai.Candidate{{
		Content: genai.Content{Parts: []genai.Part{
			{Text: "here you go"},
			{InlineData: &genai.InlineData{MIMEType: "image/png", Data: "QUJD"}},
			{InlineData: &genai.InlineData{MIMEType: "image/jpeg", Data: "ZZZZ"}},
		}},
	}}}

	url, ok := FirstInlineImage(resp)
	if !ok {
		t.Fatal("FirstInlineImage found nothing")
	}
	if url != "data:image/png;base64,QUJD" {
		t.Fatalf("url = %q", url)
	}
}

func TestFirstInlineImageMissing(t *testing.T) {
	resp := &genai.Response{Candidates: []genai.Candidate{{
		Content: genai.Content{Parts: []genai.Part{{Text: "no image today"}}},
	}}}
	if _, ok := FirstInlineImage(resp); ok {
		t.Fatal("FirstInlineImage = true, want false")
	}
}
