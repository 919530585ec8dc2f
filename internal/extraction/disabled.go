package extraction

import (
	"context"

	"github.com/hortiexam/hortiexam/internal/apperr"
)

// disabledProvider is wired when no provider (or no API key) is
// configured. Every call fails as an external-service error so the
// import batch aborts before anything is inserted.
type disabledProvider struct{}

func (p *disabledProvider) Name() string { return "none" }

func (p *disabledProvider) Extract(ctx context.Context, text, category string) ([]Candidate, error) {
	return nil, apperr.ExternalServicef("text extraction is not configured")
}
