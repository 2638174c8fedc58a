// Package genai is a lightweight facade over the Gemini generateContent API.
// Providers compose ordered content parts (text and inline images) and decode
// either inline image payloads or text back out; nothing here knows about
// brands or art history.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	defaultImageModel  = "gemini-2.5-flash-image"
	defaultTextModel   = "gemini-3-flash-preview"
	defaultVisionModel = "gemini-3-pro-preview"
	defaultTimeout     = 60 * time.Second
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey      string
	BaseURL     string
	ImageModel  string
	TextModel   string
	VisionModel string
	HTTPClient  *http.Client
	Logger      *zerolog.Logger
}

// Client invokes the Gemini REST API over a reusable HTTP client.
type Client struct {
	apiKey      string
	baseURL     string
	imageModel  string
	textModel   string
	visionModel string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// Part is one ordered element of a request or response: either text or an
// inline base64 payload with its mime type.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries a base64-encoded blob.
type InlineData struct {
	MIMEType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

// Content groups parts under a role.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts,omitempty"`
}

// ImageConfig holds image-specific generation settings.
type ImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

// GenerationConfig tunes the response: structured-JSON output for analysis
// requests, target aspect ratio for image requests.
type GenerationConfig struct {
	ResponseMIMEType string       `json:"responseMimeType,omitempty"`
	ImageConfig      *ImageConfig `json:"imageConfig,omitempty"`
}

type generateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Candidate is one generated alternative.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// Response is the decoded generateContent payload.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Status  string `json:"status,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// APIError is a non-2xx reply from the service.
type APIError struct {
	StatusCode int
	Code       int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gemini status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gemini status %d", e.StatusCode)
}

// NewClient constructs a Gemini client with sane defaults. Callers may
// provide a nil HTTP client; a reusable one with a request timeout is
// created.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	logger := zerolog.New(io.Discard)
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Client{
		apiKey:      strings.TrimSpace(opts.APIKey),
		baseURL:     baseURL,
		imageModel:  orDefault(opts.ImageModel, defaultImageModel),
		textModel:   orDefault(opts.TextModel, defaultTextModel),
		visionModel: orDefault(opts.VisionModel, defaultVisionModel),
		httpClient:  httpClient,
		logger:      logger,
	}
}

// ImageModel returns the model used for image generation requests.
func (c *Client) ImageModel() string { return c.imageModel }

// TextModel returns the model used for plain text requests.
func (c *Client) TextModel() string { return c.textModel }

// VisionModel returns the model used for image analysis requests.
func (c *Client) VisionModel() string { return c.visionModel }

// HasCredentials reports whether an API key is configured.
func (c *Client) HasCredentials() bool { return c.apiKey != "" }

// GenerateContent posts the parts to the model and decodes the reply.
func (c *Client) GenerateContent(ctx context.Context, model string, parts []Part, cfg *GenerationConfig) (*Response, error) {
	payload := generateContentRequest{
		Contents:         []Content{{Role: "user", Parts: parts}},
		GenerationConfig: cfg,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.decodeError(resp)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	c.logger.Debug().
		Str("model", model).
		Dur("elapsed", time.Since(start)).
		Int("candidates", len(out.Candidates)).
		Msg("genai: generateContent ok")

	return &out, nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var decoded errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil {
		apiErr.Code = decoded.Error.Code
		apiErr.Status = decoded.Error.Status
		apiErr.Message = decoded.Error.Message
	}
	c.logger.Warn().
		Int("status", resp.StatusCode).
		Str("message", apiErr.Message).
		Msg("genai: generateContent failed")
	return apiErr
}

// Text returns the first non-empty text part across all candidates.
func (r *Response) Text() string {
	for _, cand := range r.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

// Parts flattens every part across all candidates, preserving order.
func (r *Response) Parts() []Part {
	var parts []Part
	for _, cand := range r.Candidates {
		parts = append(parts, cand.Content.Parts...)
	}
	return parts
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
