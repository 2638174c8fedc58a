package artgen

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"brandstudio/internal/dataurl"
	"brandstudio/internal/domain"
	"brandstudio/internal/providers/genai"
)

// ContentCaller is the slice of the Gemini client the pipeline needs.
type ContentCaller interface {
	GenerateContent(ctx context.Context, model string, parts []genai.Part, cfg *genai.GenerationConfig) (*genai.Response, error)
	ImageModel() string
	TextModel() string
	VisionModel() string
}

// Options tunes the pipeline's retry policy.
type Options struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Logger       *zerolog.Logger
}

// Service is the generation pipeline: it scans visual DNA from reference
// images and generates branded art with captions. It owns no state and never
// persists what it produces.
type Service struct {
	client       ContentCaller
	maxAttempts  int
	initialDelay time.Duration
	logger       zerolog.Logger
}

// NewService wires a pipeline over the given content caller.
func NewService(client ContentCaller, opts Options) *Service {
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = genai.DefaultMaxAttempts
	}
	initialDelay := opts.InitialDelay
	if initialDelay <= 0 {
		initialDelay = genai.DefaultInitialDelay
	}
	logger := zerolog.New(io.Discard)
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Service{
		client:       client,
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
		logger:       logger,
	}
}

// ScanDNA analyzes a reference image and extracts its visual DNA. The image
// must be a decodable data URL; that is validated before any network call.
func (s *Service) ScanDNA(ctx context.Context, image string) (*domain.ScannedDNA, error) {
	parsed := dataurl.Decode(image)
	if parsed == nil {
		return nil, fmt.Errorf("%w: reference image is not a data URL", domain.ErrInvalidImage)
	}

	parts := []genai.Part{
		{InlineData: &genai.InlineData{MIMEType: parsed.MIMEType, Data: parsed.Data}},
		{Text: dnaPrompt},
	}
	cfg := &genai.GenerationConfig{ResponseMIMEType: "application/json"}

	resp, err := genai.Retry(ctx, s.maxAttempts, s.initialDelay, func(ctx context.Context) (*genai.Response, error) {
		return s.client.GenerateContent(ctx, s.client.VisionModel(), parts, cfg)
	})
	if err != nil {
		return nil, mapServiceError(err)
	}

	dna, err := ParseDNA(resp.Text())
	if err != nil {
		return nil, err
	}
	s.logger.Debug().
		Int("colors", len(dna.Colors)).
		Int("elements", len(dna.Elements)).
		Msg("artgen: dna scan complete")
	return dna, nil
}

// Generate produces one branded image and a caption. Invalid reference
// images are skipped; an empty caption is acceptable, an empty image result
// is not. The image step always completes before the caption step begins.
func (s *Service) Generate(ctx context.Context, params GenerateParams) (*GenerateResult, error) {
	if strings.TrimSpace(params.Prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", domain.ErrInvalidPrompt)
	}

	instruction := BuildInstruction(params)
	var parts []genai.Part
	for _, ref := range params.ReferenceImages {
		parsed := dataurl.Decode(ref)
		if parsed == nil {
			s.logger.Warn().Msg("artgen: skipping undecodable reference image")
			continue
		}
		parts = append(parts, genai.Part{InlineData: &genai.InlineData{MIMEType: parsed.MIMEType, Data: parsed.Data}})
	}
	parts = append(parts, genai.Part{Text: instruction})
	cfg := &genai.GenerationConfig{ImageConfig: &genai.ImageConfig{AspectRatio: params.AspectRatio}}

	resp, err := genai.Retry(ctx, s.maxAttempts, s.initialDelay, func(ctx context.Context) (*genai.Response, error) {
		return s.client.GenerateContent(ctx, s.client.ImageModel(), parts, cfg)
	})
	if err != nil {
		return nil, mapServiceError(err)
	}

	url, ok := FirstInlineImage(resp)
	if !ok {
		return nil, fmt.Errorf("%w: service produced no image", domain.ErrGenerationFailed)
	}

	return &GenerateResult{
		ImageURLs:   []string{url},
		Description: s.caption(ctx, params),
	}, nil
}

// NewArt assembles the persistable record for an accepted generation.
func NewArt(params GenerateParams, result *GenerateResult) *domain.GeneratedArt {
	return &domain.GeneratedArt{
		ID:          uuid.NewString(),
		URLs:        result.ImageURLs,
		Prompt:      strings.TrimSpace(params.Prompt),
		Description: result.Description,
		Timestamp:   time.Now().UnixMilli(),
		StyleName:   params.StyleName,
	}
}

// caption is best effort: a failure yields an empty caption, never a failed
// generation.
func (s *Service) caption(ctx context.Context, params GenerateParams) string {
	parts := []genai.Part{{Text: captionInstruction(params.Prompt, params.Locale)}}
	resp, err := s.client.GenerateContent(ctx, s.client.TextModel(), parts, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("artgen: caption generation failed")
		return ""
	}
	return resp.Text()
}

func mapServiceError(err error) error {
	if genai.IsRateLimit(err) {
		return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}
	return err
}
