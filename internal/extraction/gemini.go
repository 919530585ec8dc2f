package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/hortiexam/hortiexam/config"
	"github.com/hortiexam/hortiexam/internal/apperr"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type geminiProvider struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

// NewGeminiProvider initializes the Gemini client. A missing API key
// is tolerated at startup (the provider degrades to non-functional)
// so the rest of the application keeps working without it.
func NewGeminiProvider(cfg *config.Config) (Provider, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Gemini extraction provider will be non-functional.")
		return &geminiProvider{cfg: cfg, model: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiProvider{model: model, cfg: cfg}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Extract(ctx context.Context, text, category string) ([]Candidate, error) {
	if p.model == nil {
		return nil, apperr.ExternalServicef("gemini client not initialized")
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(buildExtractionPrompt(text, category)))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during question extraction")
		return nil, apperr.ExternalServicef("gemini request failed: %v", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return nil, apperr.ExternalServicef("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return nil, apperr.ExternalServicef("gemini returned no text content")
	}

	candidates, err := parseCandidatePayload(fullResponseText)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", fullResponseText).Msg("Failed to parse candidates from Gemini response")
		return nil, apperr.ExternalServicef("could not parse gemini response: %v", err)
	}
	return candidates, nil
}

func buildExtractionPrompt(text, category string) string {
	var b strings.Builder
	b.WriteString("You are an assistant that extracts exam questions from raw document text.\n")
	b.WriteString("The document contains question/answer pairs, typically introduced by markers ")
	b.WriteString("such as \"Frage:\"/\"Question:\" and \"Lösung:\"/\"Solution:\".\n\n")
	b.WriteString(fmt.Sprintf("Target category: %s\n\n", category))
	b.WriteString("Return ONLY a JSON array, no prose and no markdown, where each element is:\n")
	b.WriteString(`{"content": "<question text>", "answer": "<answer text>", "tags": ["<optional>"], "difficulty": <1-5, optional>}`)
	b.WriteString("\n\nDocument text:\n---\n")
	b.WriteString(text)
	b.WriteString("\n---\n")
	return b.String()
}

// parseCandidatePayload unmarshals the provider output. Models tend to
// wrap the JSON in markdown code fences despite instructions, so those
// are stripped first.
func parseCandidatePayload(raw string) ([]Candidate, error) {
	cleaned := stripCodeFence(raw)
	var candidates []Candidate
	if err := json.Unmarshal([]byte(cleaned), &candidates); err != nil {
		return nil, fmt.Errorf("response is not a valid candidate array: %w", err)
	}
	return candidates, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx != -1 && strings.EqualFold(strings.TrimSpace(s[:idx]), "json") {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
