package domain

// HistoryLimit caps the persisted art history. Saving past the cap evicts
// the oldest entries.
const HistoryLimit = 100

// GeneratedArt is one generation outcome. Immutable after creation except
// for IsRejected, which the collaborator sets when persisting feedback.
// Timestamp is epoch milliseconds.
type GeneratedArt struct {
	ID          string   `json:"id"`
	URLs        []string `json:"urls"`
	Prompt      string   `json:"prompt"`
	Description string   `json:"description,omitempty"`
	Timestamp   int64    `json:"timestamp"`
	IsRejected  bool     `json:"isRejected,omitempty"`
	StyleName   string   `json:"styleName,omitempty"`
}
