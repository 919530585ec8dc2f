// Package extraction turns raw document text into structured question
// candidates via a pluggable LLM provider. Provider output is
// untrusted: callers must validate every candidate before persisting.
package extraction

import (
	"context"
	"fmt"

	"github.com/hortiexam/hortiexam/config"
	"github.com/rs/zerolog/log"
)

// Candidate is an unvalidated, not-yet-persisted question-shaped
// record. Difficulty 0 and nil Tags are filled with defaults at import.
type Candidate struct {
	Content    string   `json:"content"`
	Answer     string   `json:"answer"`
	Tags       []string `json:"tags,omitempty"`
	Difficulty int      `json:"difficulty,omitempty"`
}

// Provider is the strategy for one extraction vendor. Implementations
// own their request shape and response parsing.
type Provider interface {
	Name() string
	Extract(ctx context.Context, text, category string) ([]Candidate, error)
}

// NewProvider builds the provider selected in the config. An unknown
// identifier is a startup error, not a runtime one.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Extraction.Provider {
	case "", "none":
		log.Warn().Msg("No extraction provider configured; text extraction endpoints will be unavailable.")
		return &disabledProvider{}, nil
	case "gemini":
		return NewGeminiProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown extraction provider %q", cfg.Extraction.Provider)
	}
}
