// Package dataurl converts images between raw bytes and the self-describing
// data-URL form (data:<mime>;base64,<payload>) used for inline transport.
package dataurl

import (
	"encoding/base64"
	"strings"
)

// Parsed holds the components of a decoded data URL.
type Parsed struct {
	MIMEType string
	Data     string // base64 payload, unchanged
}

// Encode wraps raw bytes in a data URL.
func Encode(data []byte, mimeType string) string {
	if strings.TrimSpace(mimeType) == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode splits a data URL into mime type and base64 payload. It returns nil
// when the input is absent or not in the expected form; callers treat nil as
// "not an image" and skip it.
func Decode(raw string) *Parsed {
	if raw == "" || !strings.HasPrefix(raw, "data:") {
		return nil
	}
	header, payload, ok := strings.Cut(raw, ",")
	if !ok || payload == "" {
		return nil
	}
	mimeType := strings.TrimPrefix(strings.SplitN(header, ";", 2)[0], "data:")
	if mimeType == "" {
		return nil
	}
	return &Parsed{MIMEType: mimeType, Data: payload}
}

// Bytes decodes the base64 payload of a parsed data URL.
func (p *Parsed) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(p.Data)
}
