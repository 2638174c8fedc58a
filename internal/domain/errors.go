package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidPrompt    = errors.New("invalid prompt")
	ErrInvalidImage     = errors.New("invalid image")
	ErrRateLimited      = errors.New("rate limited")
	ErrGenerationFailed = errors.New("generation failed")
	ErrParseFailure     = errors.New("parse failure")
	ErrInvalidBackup    = errors.New("invalid backup")
	ErrInvalidStyle     = errors.New("invalid style")
	ErrDuplicateStyle   = errors.New("duplicate style name")
)
